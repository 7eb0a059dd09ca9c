package parser

import "testing"

func TestNormalizeComments(t *testing.T) {
	tests := []struct {
		name   string
		blocks []string
		want   string
	}{
		{
			name:   "line comment",
			blocks: []string{"// Registered users."},
			want:   "Registered users.",
		},
		{
			name:   "block comment",
			blocks: []string{"/* Registered users. */"},
			want:   "Registered users.",
		},
		{
			name:   "jsdoc with paragraphs",
			blocks: []string{"/**\n * First paragraph\n * continues here.\n *\n * Second paragraph.\n */"},
			want:   "First paragraph continues here.\n\nSecond paragraph.",
		},
		{
			name:   "surrounding blank lines dropped",
			blocks: []string{"/*\n\n  Text.\n\n*/"},
			want:   "Text.",
		},
		{
			name:   "multiple blocks joined with a line break",
			blocks: []string{"// First.", "// Second."},
			want:   "First.\nSecond.",
		},
		{
			name:   "empty blocks produce nothing",
			blocks: []string{"//", "/* */"},
			want:   "",
		},
		{
			name:   "no blocks",
			blocks: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeComments(tt.blocks)
			if got != tt.want {
				t.Errorf("normalizeComments() = %q, want %q", got, tt.want)
			}
		})
	}
}
