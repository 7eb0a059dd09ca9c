package drizzledoc

import (
	"context"

	"github.com/drizzledoc/drizzledoc/internal/parser"
)

// ExtractDir is a convenience function to extract the entity model from all
// schema files under root. Includes are glob patterns matched against file
// base names; nil selects the conventional *schema*.ts files.
func ExtractDir(ctx context.Context, root string, includes []string) (*Set, error) {
	extractor := parser.NewExtractor(DefaultRules())
	return extractor.ExtractDir(ctx, root, includes)
}

// ExtractFiles is a convenience function to extract the entity model from
// an explicit list of schema files.
func ExtractFiles(ctx context.Context, paths []string) *Set {
	extractor := parser.NewExtractor(DefaultRules())
	return extractor.ExtractFiles(ctx, paths)
}

// ExtractSource is a convenience function to extract the entity model from
// a single in-memory document.
func ExtractSource(ctx context.Context, path string, content []byte) *Set {
	extractor := parser.NewExtractor(DefaultRules())
	return extractor.ExtractSource(ctx, path, content)
}
