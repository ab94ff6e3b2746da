package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// renderer serializes a goldmark document tree back to Markdown.
// Blocks are rendered as slices of lines without trailing newlines;
// parents apply continuation prefixes line by line, so each nesting
// level contributes exactly one indentation unit.
type renderer struct {
	source []byte
	indent IndentUnit
}

// renderDocument renders the document root, joining sibling blocks
// with a single blank line and terminating with exactly one newline.
func (r *renderer) renderDocument(doc ast.Node) string {
	lines := r.renderBlocks(doc)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderBlocks renders the block children of parent, separated by one
// blank line.
func (r *renderer) renderBlocks(parent ast.Node) []string {
	var lines []string
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		block := r.renderBlock(child)
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	return lines
}

func (r *renderer) renderBlock(n ast.Node) []string {
	switch n := n.(type) {
	case *ast.Heading:
		return r.renderHeading(n)
	case *ast.Paragraph:
		return r.renderParagraph(n)
	case *ast.TextBlock:
		return r.renderParagraph(n)
	case *ast.Blockquote:
		return r.renderBlockquote(n)
	case *ast.List:
		return r.renderList(n)
	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(r.source))
		}
		return r.renderCodeBlock(n, info)
	case *ast.CodeBlock:
		// Indented code blocks are emitted fenced.
		return r.renderCodeBlock(n, "")
	case *ast.ThematicBreak:
		return []string{"---"}
	case *ast.HTMLBlock:
		return r.renderHTMLBlock(n)
	default:
		return r.renderRawLines(n)
	}
}

// renderHeading emits ATX headings. Setext headings are converted and
// their soft line breaks collapsed to spaces, since ATX content must
// fit on one line.
func (r *renderer) renderHeading(n *ast.Heading) []string {
	content := strings.ReplaceAll(r.renderInlines(n), "\n", " ")
	marker := strings.Repeat("#", n.Level)
	if content == "" {
		return []string{marker}
	}
	return []string{marker + " " + content}
}

func (r *renderer) renderParagraph(n ast.Node) []string {
	content := r.renderInlines(n)
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, escapeLineStart(trimTrailingSpace(line)))
	}
	return lines
}

// trimTrailingSpace drops trailing blanks but keeps the backslash of a
// hard line break, which the inline renderer appends before "\n".
func trimTrailingSpace(line string) string {
	if strings.HasSuffix(line, "\\") {
		return line
	}
	return strings.TrimRight(line, " \t")
}

func (r *renderer) renderBlockquote(n *ast.Blockquote) []string {
	inner := r.renderBlocks(n)
	lines := make([]string, 0, len(inner))
	for _, line := range inner {
		if line == "" {
			lines = append(lines, ">")
		} else {
			lines = append(lines, "> "+line)
		}
	}
	return lines
}

func (r *renderer) renderList(n *ast.List) []string {
	tight := listRendersTight(n)
	number := n.Start

	var lines []string
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		var marker string
		if n.IsOrdered() {
			marker = strconv.Itoa(number) + "."
			number++
		} else {
			marker = "-"
		}

		cont := r.continuationIndent(len(marker) + 1)
		for i, line := range r.renderListItem(item, tight) {
			switch {
			case i == 0 && line == "":
				lines = append(lines, marker)
			case i == 0:
				lines = append(lines, marker+" "+line)
			case line == "":
				lines = append(lines, "")
			default:
				lines = append(lines, cont+line)
			}
		}

		if !tight && item.NextSibling() != nil {
			lines = append(lines, "")
		}
	}
	return lines
}

// renderListItem renders the blocks of a single list item. Tight items
// stack their blocks without blank lines; loose items separate them.
func (r *renderer) renderListItem(item ast.Node, tight bool) []string {
	var lines []string
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		block := r.renderBlock(child)
		if len(block) == 0 {
			continue
		}
		if len(lines) > 0 && !tight {
			lines = append(lines, "")
		}
		lines = append(lines, block...)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// listRendersTight decides the emitted tightness. A list parsed tight
// stays tight. A loose list whose items each hold a single paragraph
// collapses to tight; any item with multiple blocks keeps the list
// loose so its internal blank lines survive.
func listRendersTight(n *ast.List) bool {
	if n.IsTight {
		return true
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		if item.ChildCount() != 1 {
			return false
		}
		switch item.FirstChild().(type) {
		case *ast.Paragraph, *ast.TextBlock:
		default:
			return false
		}
	}
	return true
}

// continuationIndent returns the prefix for continuation lines of a
// list item whose marker occupies markerWidth columns. The configured
// unit is widened to the marker width when it is narrower, since a
// shallower indent would re-parse outside the item and break the
// idempotence guarantee.
func (r *renderer) continuationIndent(markerWidth int) string {
	unit := r.indent.String()
	if r.indent.Style == IndentSpaces && len(unit) < markerWidth {
		return strings.Repeat(" ", markerWidth)
	}
	return unit
}

// renderCodeBlock emits a fenced code block, preserving content lines
// byte for byte. The fence is extended past any backtick run in the
// content; an info string containing a backtick switches to tildes.
func (r *renderer) renderCodeBlock(n ast.Node, info string) []string {
	content := r.blockLines(n)

	fenceChar := "`"
	if strings.Contains(info, "`") {
		fenceChar = "~"
	}

	fenceLen := 3
	for _, line := range content {
		if run := longestRun(line, fenceChar[0]); run >= fenceLen {
			fenceLen = run + 1
		}
	}
	fence := strings.Repeat(fenceChar, fenceLen)

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, fence+info)
	lines = append(lines, content...)
	lines = append(lines, fence)
	return lines
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

func (r *renderer) renderHTMLBlock(n *ast.HTMLBlock) []string {
	lines := r.blockLines(n)
	if n.HasClosure() {
		lines = append(lines, string(trimLineEnding(n.ClosureLine.Value(r.source))))
	}
	return lines
}

// renderRawLines is the fallback for block types without a dedicated
// renderer: their source lines pass through unchanged.
func (r *renderer) renderRawLines(n ast.Node) []string {
	return r.blockLines(n)
}

// blockLines returns the source lines covered by a block node, without
// line endings.
func (r *renderer) blockLines(n ast.Node) []string {
	segments := n.Lines()
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, string(trimLineEnding(seg.Value(r.source))))
	}
	return lines
}

func trimLineEnding(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
