package parser

import (
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/ast"
	"github.com/drizzledoc/drizzledoc/internal/model"
)

// selfHints mark a relation name as self-referencing. This is a name hint
// only; the related table is never compared against the owning table.
var selfHints = []string{"self", "parent", "child"}

// parseRelationDecl attaches the relations of a relation declaration to the
// matching entity in the document. Declarations that do not match the
// expected shape, or whose table has no entity here, are skipped.
func (p *Parser) parseRelationDecl(decl *ast.Decl, doc *model.Document) {
	call, ok := decl.Value.(*ast.Call)
	if !ok || ast.CalleeName(call.Fun) != relationHelper {
		return
	}
	if !strings.HasSuffix(decl.Name, relationSuffix) {
		return
	}
	tableIdent := strings.TrimSuffix(decl.Name, relationSuffix)
	if tableIdent == "" {
		return
	}

	var entity *model.Entity
	for _, e := range doc.Entities {
		if e.Name == tableIdent {
			entity = e
			break
		}
	}
	if entity == nil {
		return
	}

	if len(call.Args) < 2 {
		return
	}
	fn, ok := ast.Unparen(call.Args[1]).(*ast.Func)
	if !ok {
		return
	}
	mapping, ok := returnedValue(fn.Body).(*ast.Object)
	if !ok {
		return
	}

	for _, entry := range mapping.Entries {
		if rel := p.parseRelationEntry(entry); rel != nil {
			entity.Relations = append(entity.Relations, rel)
		}
	}
}

// returnedValue resolves a function body to the value it produces: the
// expression itself, a parenthesized expression, or the value of a single
// return statement inside a block.
func returnedValue(body ast.Node) ast.Node {
	body = ast.Unparen(body)
	block, ok := body.(*ast.Block)
	if !ok {
		return body
	}
	for _, stmt := range block.Stmts {
		if ret, ok := stmt.(*ast.Return); ok && ret.X != nil {
			return ast.Unparen(ret.X)
		}
	}
	return nil
}

// parseRelationEntry converts one mapping entry into a Relation. The callee
// must be the one or many helper; other callees drop the entry.
func (p *Parser) parseRelationEntry(entry ast.Entry) *model.Relation {
	call, ok := ast.Unparen(entry.Value).(*ast.Call)
	if !ok {
		return nil
	}

	var tentative model.RelationType
	switch ast.CalleeName(call.Fun) {
	case "one":
		tentative = model.RelationOneToOne
	case "many":
		tentative = model.RelationOneToMany
	default:
		return nil
	}

	if len(call.Args) < 1 {
		return nil
	}
	related := relatedTableName(call.Args[0])
	if related == "" {
		return nil
	}

	rel := &model.Relation{
		Name:         entry.Key,
		Type:         tentative,
		RelatedTable: related,
	}

	if len(call.Args) >= 2 {
		if opts, ok := ast.Unparen(call.Args[1]).(*ast.Object); ok {
			for _, opt := range opts.Entries {
				switch opt.Key {
				case "fields":
					rel.Fields = columnNameList(opt.Value)
				case "references":
					rel.References = columnNameList(opt.Value)
				case "relationName":
					if s, ok := ast.Unparen(opt.Value).(*ast.String); ok {
						rel.RelationName = s.Value
					}
				}
			}
		}
	}

	lowerName := strings.ToLower(rel.RelationName)
	for _, hint := range selfHints {
		if strings.Contains(lowerName, hint) {
			rel.IsSelfReferencing = true
			break
		}
	}

	rel.Type = p.refineRelationType(rel)
	return rel
}

// relatedTableName resolves the first helper argument to a table
// identifier: either a bare identifier or a zero-parameter function
// wrapping one.
func relatedTableName(arg ast.Node) string {
	switch v := ast.Unparen(arg).(type) {
	case *ast.Ident:
		return v.Name
	case *ast.Member:
		return v.Property
	case *ast.Func:
		if v.NumParams == 0 {
			return relatedTableName(v.Body)
		}
	}
	return ""
}

// columnNameList reads an ordered list of column names from bare
// identifiers or table.column member accesses.
func columnNameList(arg ast.Node) []string {
	arr, ok := ast.Unparen(arg).(*ast.Array)
	if !ok {
		return nil
	}
	var names []string
	for _, elem := range arr.Elems {
		if name := columnName(elem); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// refineRelationType applies the post-extraction cardinality rules: a
// junction-named target or key forces many-to-many, and a tentative
// one-to-one carrying both fields and references is the owning side of a
// foreign key, hence many-to-one.
func (p *Parser) refineRelationType(rel *model.Relation) model.RelationType {
	if p.rules.HasJunctionMarker(rel.RelatedTable) || p.rules.HasJunctionMarker(rel.Name) {
		return model.RelationManyToMany
	}
	if rel.Type == model.RelationOneToOne && len(rel.Fields) > 0 && len(rel.References) > 0 {
		return model.RelationManyToOne
	}
	return rel.Type
}
