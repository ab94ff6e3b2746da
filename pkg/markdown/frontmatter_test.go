package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFrontmatterSpacing(t *testing.T) {
	opts := []Option{WithFrontmatterSpacing(FrontmatterSpacing{})}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading sits flush against frontmatter",
			input: "---\ntitle: Test\n---\n\n# Heading\n",
			want:  "---\ntitle: Test\n---\n# Heading\n",
		},
		{
			name:  "multiple blanks before heading collapse",
			input: "---\ntitle: Test\n---\n\n\n\n# Heading\n",
			want:  "---\ntitle: Test\n---\n# Heading\n",
		},
		{
			name:  "subheading sits flush too",
			input: "---\ntitle: Test\n---\n\n## Subheading\n",
			want:  "---\ntitle: Test\n---\n## Subheading\n",
		},
		{
			name:  "paragraph gets one blank line",
			input: "---\ntitle: Test\n---\nSome text.\n",
			want:  "---\ntitle: Test\n---\n\nSome text.\n",
		},
		{
			name:  "extra blanks before paragraph collapse to one",
			input: "---\ntitle: Test\n---\n\n\n\nSome text.\n",
			want:  "---\ntitle: Test\n---\n\nSome text.\n",
		},
		{
			name:  "list gets one blank line",
			input: "---\ntitle: Test\n---\n- Item 1\n- Item 2\n",
			want:  "---\ntitle: Test\n---\n\n- Item 1\n- Item 2\n",
		},
		{
			name:  "code block gets one blank line",
			input: "---\ntitle: Test\n---\n```\ncode\n```\n",
			want:  "---\ntitle: Test\n---\n\n```\ncode\n```\n",
		},
		{
			name:  "multiline frontmatter kept verbatim",
			input: "---\ntitle: Test\ntags:\n  - one\n  - two\n---\n\n# Heading\n",
			want:  "---\ntitle: Test\ntags:\n  - one\n  - two\n---\n# Heading\n",
		},
		{
			name:  "frontmatter only document",
			input: "---\ntitle: Test\n---\n",
			want:  "---\ntitle: Test\n---\n",
		},
		{
			name:  "dotted closer normalizes to dashes",
			input: "---\ntitle: Test\n...\n\n# Heading\n",
			want:  "---\ntitle: Test\n---\n# Heading\n",
		},
		{
			name:  "document without frontmatter unchanged",
			input: "# Heading\n\nSome text.\n",
			want:  "# Heading\n\nSome text.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(t, tt.input, opts...)
			assert.Equal(t, tt.want, got)
			requireStable(t, got, opts...)
		})
	}
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "simple block",
			input:    "---\ntitle: Test\n---\nbody\n",
			wantMeta: "title: Test\n",
			wantBody: "body\n",
			wantOK:   true,
		},
		{
			name:     "dotted closer",
			input:    "---\ntitle: Test\n...\nbody\n",
			wantMeta: "title: Test\n",
			wantBody: "body\n",
			wantOK:   true,
		},
		{
			name:   "missing opening delimiter",
			input:  "title: Test\n---\nbody\n",
			wantOK: false,
		},
		{
			name:   "unterminated block",
			input:  "---\ntitle: Test\n",
			wantOK: false,
		},
		{
			name:   "invalid yaml treated as markdown",
			input:  "---\n{broken\n---\nbody\n",
			wantOK: false,
		},
		{
			name:   "leading blank line disqualifies",
			input:  "\n---\ntitle: Test\n---\n",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, ok := splitFrontmatter([]byte(tt.input))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMeta, string(meta))
				assert.Equal(t, tt.wantBody, string(body))
			} else {
				assert.Equal(t, tt.input, string(body), "body falls back to the full source")
			}
		})
	}
}
