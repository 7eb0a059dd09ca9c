package parser

import "strings"

// normalizeComments turns the raw leading comment blocks of a declaration
// or column into a single documentation string. Line, block, and JSDoc
// comments are treated uniformly: delimiters and per-line markers are
// stripped, lines are trimmed, surrounding blank lines are dropped, and the
// remaining lines are regrouped into paragraphs (a blank line forces a
// paragraph break). Blocks are joined with a line break. Returns "" when no
// usable text remains.
func normalizeComments(blocks []string) string {
	var parts []string
	for _, block := range blocks {
		if text := normalizeBlock(block); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func normalizeBlock(block string) string {
	text := strings.TrimSpace(block)
	switch {
	case strings.HasPrefix(text, "/**"):
		text = strings.TrimPrefix(text, "/**")
		text = strings.TrimSuffix(text, "*/")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "*")
		lines[i] = strings.TrimSpace(line)
	}

	// Drop leading and trailing blank lines.
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	lines = lines[start:end]

	// Regroup into paragraphs: consecutive non-blank lines join with a
	// single space, a blank line starts a new paragraph.
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range lines {
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}
