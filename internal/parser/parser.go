// Package parser turns drizzle schema source documents into the normalized
// entity model. Declarations that do not match the recognized grammar subset
// are skipped; a document that cannot be parsed at all yields zero entities.
package parser

import (
	"context"
	"os"
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/ast"
	"github.com/drizzledoc/drizzledoc/internal/classify"
	"github.com/drizzledoc/drizzledoc/internal/logger"
	"github.com/drizzledoc/drizzledoc/internal/model"
)

// relationSuffix is the trailing marker of a relation declaration's
// identifier, e.g. usersRelations describes the users table.
const relationSuffix = "Relations"

// relationHelper is the callee name of a relation declaration.
const relationHelper = "relations"

// tableMarker must appear in a table-builder callee name.
const tableMarker = "Table"

// dialectPrefixes maps recognized callee prefixes to dialects.
var dialectPrefixes = []struct {
	prefix  string
	dialect model.Dialect
}{
	{"pg", model.DialectPostgres},
	{"mysql", model.DialectMySQL},
	{"sqlite", model.DialectSQLite},
}

// Parser parses source documents one at a time.
type Parser struct {
	rules classify.Rules
}

// New returns a Parser using the given classification rules.
func New(rules classify.Rules) *Parser {
	return &Parser{rules: rules}
}

// ParseFile reads and parses one source file. Read or parse failures are
// logged and produce an empty document rather than an error, so a bad file
// never aborts a batch.
func (p *Parser) ParseFile(ctx context.Context, path string) *model.Document {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Get().Debug("skipping unreadable document", "path", path, "error", err)
		return &model.Document{Path: path}
	}
	return p.ParseSource(ctx, path, content)
}

// ParseSource parses one source document already in memory.
func (p *Parser) ParseSource(ctx context.Context, path string, content []byte) *model.Document {
	doc := &model.Document{Path: path}

	file, err := ast.Parse(ctx, path, content)
	if err != nil {
		logger.Get().Debug("skipping unparseable document", "path", path, "error", err)
		return doc
	}

	// First pass: table declarations, in source order.
	for _, decl := range file.Decls {
		if entity := p.parseTableDecl(decl); entity != nil {
			doc.Entities = append(doc.Entities, entity)
		}
	}

	// Second pass: relation declarations attach to the entities above.
	for _, decl := range file.Decls {
		p.parseRelationDecl(decl, doc)
	}

	return doc
}

// tableDialect returns the dialect of a table-builder callee name, or false
// when the name is not a table builder.
func tableDialect(callee string) (model.Dialect, bool) {
	if callee == "" || !strings.Contains(callee, tableMarker) {
		return "", false
	}
	for _, d := range dialectPrefixes {
		if strings.HasPrefix(callee, d.prefix) {
			return d.dialect, true
		}
	}
	return "", false
}

// parseTableDecl converts an exported table-builder binding into an Entity.
// Returns nil for anything that does not match the expected shape.
func (p *Parser) parseTableDecl(decl *ast.Decl) *model.Entity {
	if !decl.Exported {
		return nil
	}
	call, ok := decl.Value.(*ast.Call)
	if !ok {
		return nil
	}
	dialect, ok := tableDialect(ast.CalleeName(call.Fun))
	if !ok {
		return nil
	}
	if len(call.Args) < 2 {
		return nil
	}
	name, ok := call.Args[0].(*ast.String)
	if !ok {
		return nil
	}
	columnMap, ok := ast.Unparen(call.Args[1]).(*ast.Object)
	if !ok {
		return nil
	}

	entity := &model.Entity{
		Name:      decl.Name,
		TableName: name.Value,
		Dialect:   dialect,
		Columns:   []*model.Column{},
		Comment:   normalizeComments(decl.Comments),
	}

	for _, entry := range columnMap.Entries {
		if col := p.parseColumn(entry); col != nil {
			entity.Columns = append(entity.Columns, col)
		}
	}
	entity.RecomputePrimaryKeys()

	if len(call.Args) >= 3 {
		p.parseTableExtras(call.Args[2], entity)
	}

	entity.Type = p.rules.Classify(entity)
	entity.AuditColumns = classify.DetectAuditColumns(entity.Columns)

	return entity
}
