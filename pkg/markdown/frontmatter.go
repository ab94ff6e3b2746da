package markdown

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// frontmatterOpen is the only delimiter recognized at byte 0. Documents
// using "+++" or other conventions are formatted as plain Markdown.
var frontmatterOpen = []byte("---\n")

// splitFrontmatter separates a leading YAML frontmatter block from the
// document body. The returned meta excludes both delimiter lines and is
// preserved verbatim by the formatter. A candidate block whose content
// is not valid YAML is treated as ordinary Markdown, matching how the
// parser would see it.
func splitFrontmatter(source []byte) (meta, body []byte, ok bool) {
	if !bytes.HasPrefix(source, frontmatterOpen) {
		return nil, source, false
	}

	rest := source[len(frontmatterOpen):]
	offset := 0
	for offset <= len(rest) {
		line, next := nextLine(rest, offset)
		if next < 0 {
			// Unterminated block: no closing delimiter before EOF.
			return nil, source, false
		}
		if isFrontmatterClose(line) {
			candidate := rest[:offset]
			if !validYAML(candidate) {
				return nil, source, false
			}
			return candidate, rest[next:], true
		}
		offset = next
	}
	return nil, source, false
}

// nextLine returns the line starting at offset (without its newline)
// and the offset of the following line, or -1 when no newline remains.
func nextLine(data []byte, offset int) ([]byte, int) {
	if offset >= len(data) {
		return nil, -1
	}
	idx := bytes.IndexByte(data[offset:], '\n')
	if idx < 0 {
		return nil, -1
	}
	return data[offset : offset+idx], offset + idx + 1
}

// isFrontmatterClose reports whether the line closes a frontmatter
// block. YAML documents end with "---" or "...".
func isFrontmatterClose(line []byte) bool {
	line = bytes.TrimRight(line, " \t\r")
	return bytes.Equal(line, []byte("---")) || bytes.Equal(line, []byte("..."))
}

// validYAML reports whether the candidate frontmatter content parses as
// YAML. The parsed document is discarded; content is emitted verbatim.
func validYAML(content []byte) bool {
	var node yaml.Node
	return yaml.Unmarshal(content, &node) == nil
}
