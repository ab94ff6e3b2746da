package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

func (r *renderer) renderInlines(parent ast.Node) string {
	var b strings.Builder
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		r.renderInline(&b, child)
	}
	return b.String()
}

func (r *renderer) renderInline(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		b.WriteString(escapeText(string(n.Segment.Value(r.source))))
		switch {
		case n.HardLineBreak():
			b.WriteString("\\\n")
		case n.SoftLineBreak():
			b.WriteString("\n")
		}
	case *ast.String:
		b.WriteString(escapeText(string(n.Value)))
	case *ast.CodeSpan:
		r.renderCodeSpan(b, n)
	case *ast.Emphasis:
		delim := strings.Repeat("*", n.Level)
		b.WriteString(delim)
		b.WriteString(r.renderInlines(n))
		b.WriteString(delim)
	case *east.Strikethrough:
		b.WriteString("~~")
		b.WriteString(r.renderInlines(n))
		b.WriteString("~~")
	case *east.TaskCheckBox:
		if n.IsChecked {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
	case *ast.Link:
		b.WriteString("[")
		b.WriteString(r.renderInlines(n))
		b.WriteString("](")
		b.WriteString(linkDestination(string(n.Destination)))
		b.WriteString(linkTitle(string(n.Title)))
		b.WriteString(")")
	case *ast.Image:
		b.WriteString("![")
		b.WriteString(r.renderInlines(n))
		b.WriteString("](")
		b.WriteString(linkDestination(string(n.Destination)))
		b.WriteString(linkTitle(string(n.Title)))
		b.WriteString(")")
	case *ast.AutoLink:
		b.WriteString("<")
		b.Write(n.Label(r.source))
		b.WriteString(">")
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			if i > 0 {
				b.WriteString("\n")
			}
			seg := n.Segments.At(i)
			b.Write(trimLineEnding(seg.Value(r.source)))
		}
	default:
		b.WriteString(r.renderInlines(n))
	}
}

// renderCodeSpan emits a code span delimited by a backtick run longer
// than any run inside the content. Line endings inside the span become
// spaces, per CommonMark.
func (r *renderer) renderCodeSpan(b *strings.Builder, n *ast.CodeSpan) {
	var content strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			content.Write(t.Segment.Value(r.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				content.WriteString(" ")
			}
		}
	}
	text := strings.ReplaceAll(content.String(), "\n", " ")

	delim := strings.Repeat("`", longestRun(text, '`')+1)

	// A span starting or ending with a backtick needs space padding so
	// the delimiters stay unambiguous.
	pad := ""
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		pad = " "
	}

	b.WriteString(delim)
	b.WriteString(pad)
	b.WriteString(text)
	b.WriteString(pad)
	b.WriteString(delim)
}

// linkDestination wraps destinations containing whitespace in angle
// brackets so they survive a round trip.
func linkDestination(dest string) string {
	if strings.ContainsAny(dest, " \t") {
		return "<" + dest + ">"
	}
	return dest
}

func linkTitle(title string) string {
	if title == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

// inlineEscaper escapes the characters that could open inline markup
// when text is re-parsed. Escaping is position-independent and stable:
// an escaped character parses back to the same literal and is escaped
// identically on the next pass.
//
//nolint:gochecknoglobals // Read-only replacer.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeText(s string) string {
	return inlineEscaper.Replace(s)
}

// orderedMarkerPattern matches a line that would re-parse as an ordered
// list item marker.
//
//nolint:gochecknoglobals // Read-only pattern.
var orderedMarkerPattern = regexp.MustCompile(`^(\d{1,9})([.)])($| )`)

// escapeLineStart escapes paragraph line prefixes that would otherwise
// re-parse as block markup: bullet and ordered-list markers, ATX
// heading markers, blockquote markers, and setext underlines. Emphasis
// and other generated inline markup never produce these shapes (their
// delimiters are not followed by a space), so only literal text is
// affected.
func escapeLineStart(line string) string {
	if line == "" {
		return line
	}

	if m := orderedMarkerPattern.FindStringSubmatch(line); m != nil {
		return m[1] + `\` + line[len(m[1]):]
	}

	switch line[0] {
	case '-', '+':
		if len(line) == 1 || line[1] == ' ' {
			return `\` + line
		}
	case '>':
		return `\` + line
	case '#':
		trimmed := strings.TrimLeft(line, "#")
		if len(line)-len(trimmed) <= 6 && (trimmed == "" || trimmed[0] == ' ') {
			return `\` + line
		}
	}

	// A line of only dashes or equals signs would underline the line
	// above it (setext) or form a thematic break.
	if strings.Trim(line, "-") == "" || strings.Trim(line, "=") == "" {
		return `\` + line
	}

	return line
}
