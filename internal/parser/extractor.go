package parser

import (
	"context"

	"github.com/drizzledoc/drizzledoc/internal/classify"
	"github.com/drizzledoc/drizzledoc/internal/discover"
	"github.com/drizzledoc/drizzledoc/internal/model"
	"github.com/drizzledoc/drizzledoc/internal/resolve"
)

// Extractor runs the full pipeline over a batch of documents: parse each
// file in turn, then resolve many-to-many junctions over the complete set.
// Documents are parsed strictly one at a time so only one syntax tree is
// alive at any point.
type Extractor struct {
	parser *Parser
}

// NewExtractor returns an Extractor using the given classification rules.
func NewExtractor(rules classify.Rules) *Extractor {
	return &Extractor{parser: New(rules)}
}

// ExtractFiles parses the given files in order and resolves junctions
// across the combined set. Unreadable or unparseable files contribute zero
// entities; the batch never fails.
func (x *Extractor) ExtractFiles(ctx context.Context, paths []string) *model.Set {
	set := &model.Set{}
	for _, path := range paths {
		set.Documents = append(set.Documents, x.parser.ParseFile(ctx, path))
	}
	// Junction resolution needs the complete entity set; it must not run
	// per document.
	resolve.ManyToMany(set)
	return set
}

// ExtractDir discovers schema files under root and extracts them.
func (x *Extractor) ExtractDir(ctx context.Context, root string, includes []string) (*model.Set, error) {
	files, err := discover.SchemaFiles(root, includes)
	if err != nil {
		return nil, err
	}
	return x.ExtractFiles(ctx, files), nil
}

// ExtractSource parses a single in-memory document and resolves junctions
// within it.
func (x *Extractor) ExtractSource(ctx context.Context, path string, content []byte) *model.Set {
	set := &model.Set{
		Documents: []*model.Document{x.parser.ParseSource(ctx, path, content)},
	}
	resolve.ManyToMany(set)
	return set
}
