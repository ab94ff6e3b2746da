package markdown

import "strings"

// IndentStyle selects the character class used for one level of
// nested-list continuation indentation.
type IndentStyle uint8

const (
	// IndentSpaces indents with space characters.
	IndentSpaces IndentStyle = iota

	// IndentTab indents with a single tab character per level.
	IndentTab
)

// String returns the editorconfig-style name of the indent style.
func (s IndentStyle) String() string {
	if s == IndentTab {
		return "tab"
	}
	return "space"
}

// fallbackSpaceWidth is used when indent_style is space but no width
// was configured.
const fallbackSpaceWidth = 4

// IndentUnit is the whitespace string emitted for one nesting level.
// Width is meaningful only for IndentSpaces; for IndentTab it is stored
// but a single tab is emitted regardless.
type IndentUnit struct {
	Style IndentStyle
	Width int
}

// DefaultIndent is the formatter's built-in 2-space indentation, used
// when no configuration applies.
//
//nolint:gochecknoglobals // Read-only default value.
var DefaultIndent = IndentUnit{Style: IndentSpaces, Width: 2}

// Spaces returns a space-based indentation unit of the given width.
func Spaces(width int) IndentUnit {
	return IndentUnit{Style: IndentSpaces, Width: width}
}

// Tab returns a tab-based indentation unit. The width is retained for
// callers that inspect it but does not affect emission.
func Tab(width int) IndentUnit {
	return IndentUnit{Style: IndentTab, Width: width}
}

// String returns the literal whitespace for one indentation level.
func (u IndentUnit) String() string {
	if u.Style == IndentTab {
		return "\t"
	}
	width := u.Width
	if width <= 0 {
		width = fallbackSpaceWidth
	}
	return strings.Repeat(" ", width)
}

// BlockKind is the coarse category of a block node, used by spacing
// policies that only care about what follows the frontmatter.
type BlockKind uint8

const (
	// BlockNone means the document has no body content.
	BlockNone BlockKind = iota

	// BlockHeading is an ATX or setext heading of any level.
	BlockHeading

	// BlockParagraph is a paragraph or text block.
	BlockParagraph

	// BlockList is an ordered or unordered list.
	BlockList

	// BlockCode is a fenced or indented code block.
	BlockCode

	// BlockOther is any other block type.
	BlockOther
)

// SpacingPolicy decides how many blank lines separate a frontmatter
// block from the first body block.
type SpacingPolicy interface {
	// BlankLines returns the exact blank-line count to emit before a
	// body starting with the given block kind.
	BlankLines(next BlockKind) int
}

// FrontmatterSpacing is the spacing rule applied by the space-control
// extension: headings sit flush against the closing delimiter, every
// other block gets exactly one blank line.
type FrontmatterSpacing struct{}

// BlankLines implements SpacingPolicy.
func (FrontmatterSpacing) BlankLines(next BlockKind) int {
	if next == BlockHeading {
		return 0
	}
	return 1
}

// fixedSpacing always emits the same blank-line count. It is the host
// default when the frontmatter rule is not injected.
type fixedSpacing int

func (s fixedSpacing) BlankLines(BlockKind) int {
	return int(s)
}
