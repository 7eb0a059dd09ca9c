package parser

import (
	"strconv"
	"strings"

	"github.com/drizzledoc/drizzledoc/internal/ast"
	"github.com/drizzledoc/drizzledoc/internal/model"
)

// parseColumn builds a Column from one entry of the column map. The entry
// value must be a call expression; anything else is skipped. The chain of
// modifier calls wrapping the type call is walked outermost-first, so when a
// modifier repeats, the innermost occurrence is the last applied and wins.
func (p *Parser) parseColumn(entry ast.Entry) *model.Column {
	call, ok := ast.Unparen(entry.Value).(*ast.Call)
	if !ok {
		return nil
	}

	col := &model.Column{
		Name:     entry.Key,
		Type:     "unknown",
		Nullable: true,
		Comment:  normalizeComments(entry.Comments),
	}

	cur := call
	for {
		member, chained := cur.Fun.(*ast.Member)
		var inner *ast.Call
		if chained {
			inner, _ = ast.Unparen(member.Object).(*ast.Call)
		}
		if !chained || inner == nil {
			// Innermost call constructs the type.
			col.Type = typeName(cur.Fun)
			if len(cur.Args) >= 2 {
				applyTypeOptions(col, cur.Args[1])
			}
			return col
		}
		applyModifier(col, member.Property, cur.Args)
		cur = inner
	}
}

// typeName recovers the base type name from the innermost call's callee.
func typeName(fun ast.Node) string {
	if name := ast.CalleeName(fun); name != "" {
		return name
	}
	return "unknown"
}

// applyModifier applies one recognized chained modifier to the column.
// Unrecognized modifiers are ignored and the walk continues.
func applyModifier(col *model.Column, name string, args []ast.Node) {
	switch name {
	case "notNull":
		col.Nullable = false
	case "primaryKey":
		col.PrimaryKey = true
	case "unique":
		col.Unique = true
	case "default":
		if len(args) >= 1 {
			value := literalText(args[0])
			col.DefaultValue = &value
		}
	case "defaultNow":
		value := model.DefaultNow
		col.DefaultValue = &value
	case "references":
		if ref := parseReference(args); ref != nil {
			col.References = ref
		}
	}
}

// literalText renders a default-value argument as text. String literals are
// unquoted; every other node keeps its source form.
func literalText(n ast.Node) string {
	switch v := ast.Unparen(n).(type) {
	case *ast.String:
		return v.Value
	case *ast.Number:
		return v.Text
	case *ast.Bool:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.Ident:
		return v.Name
	case *ast.Raw:
		return v.Text
	case *ast.Array:
		parts := make([]string, 0, len(v.Elems))
		for _, e := range v.Elems {
			parts = append(parts, literalText(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

// parseReference extracts a column reference from a references modifier. The
// first argument must be a zero-parameter function whose body is a member
// access of the form table.column; any other shape yields no reference. An
// optional second argument may carry onDelete/onUpdate actions.
func parseReference(args []ast.Node) *model.ColumnReference {
	if len(args) < 1 {
		return nil
	}
	fn, ok := ast.Unparen(args[0]).(*ast.Func)
	if !ok || fn.NumParams != 0 {
		return nil
	}
	member, ok := ast.Unparen(fn.Body).(*ast.Member)
	if !ok {
		return nil
	}
	table, ok := member.Object.(*ast.Ident)
	if !ok {
		return nil
	}

	ref := &model.ColumnReference{Table: table.Name, Column: member.Property}

	if len(args) >= 2 {
		if opts, ok := ast.Unparen(args[1]).(*ast.Object); ok {
			for _, entry := range opts.Entries {
				str, ok := ast.Unparen(entry.Value).(*ast.String)
				if !ok {
					continue
				}
				switch entry.Key {
				case "onDelete":
					ref.OnDelete = str.Value
				case "onUpdate":
					ref.OnUpdate = str.Value
				}
			}
		}
	}

	return ref
}

// applyTypeOptions reads the structural options map of a type call:
// length/precision/scale numeric refinements and the enum value list.
func applyTypeOptions(col *model.Column, arg ast.Node) {
	opts, ok := ast.Unparen(arg).(*ast.Object)
	if !ok {
		return
	}
	for _, entry := range opts.Entries {
		switch entry.Key {
		case "length":
			if v, ok := intValue(entry.Value); ok {
				col.Length = &v
			}
		case "precision":
			if v, ok := intValue(entry.Value); ok {
				col.Precision = &v
			}
		case "scale":
			if v, ok := intValue(entry.Value); ok {
				col.Scale = &v
			}
		case "enum":
			if arr, ok := ast.Unparen(entry.Value).(*ast.Array); ok {
				for _, elem := range arr.Elems {
					if s, ok := ast.Unparen(elem).(*ast.String); ok {
						col.EnumValues = append(col.EnumValues, s.Value)
					}
				}
			}
		}
	}
}

func intValue(n ast.Node) (int, bool) {
	num, ok := ast.Unparen(n).(*ast.Number)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(num.Text)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseTableExtras reads the optional third table-builder argument, a
// callback returning index/uniqueIndex/check builder calls either as an
// array or as an object. Unrecognized builders are skipped.
func (p *Parser) parseTableExtras(arg ast.Node, entity *model.Entity) {
	fn, ok := ast.Unparen(arg).(*ast.Func)
	if !ok {
		return
	}
	body := returnedValue(fn.Body)

	var elems []ast.Node
	switch v := body.(type) {
	case *ast.Array:
		elems = v.Elems
	case *ast.Object:
		for _, entry := range v.Entries {
			elems = append(elems, entry.Value)
		}
	default:
		return
	}

	for _, elem := range elems {
		call, ok := ast.Unparen(elem).(*ast.Call)
		if !ok {
			continue
		}
		p.parseTableExtra(call, entity)
	}
}

// parseTableExtra walks one index/check builder chain. The innermost call
// names the builder and carries the constraint name; .on(...) arguments name
// the covered columns.
func (p *Parser) parseTableExtra(call *ast.Call, entity *model.Entity) {
	var columns []string

	cur := call
	for {
		member, chained := cur.Fun.(*ast.Member)
		var inner *ast.Call
		if chained {
			inner, _ = ast.Unparen(member.Object).(*ast.Call)
		}
		if !chained || inner == nil {
			break
		}
		if member.Property == "on" {
			for _, a := range cur.Args {
				if name := columnName(a); name != "" {
					columns = append(columns, name)
				}
			}
		}
		cur = inner
	}

	builder := ast.CalleeName(cur.Fun)
	var name string
	if len(cur.Args) >= 1 {
		if s, ok := cur.Args[0].(*ast.String); ok {
			name = s.Value
		}
	}

	switch builder {
	case "index":
		entity.Indexes = append(entity.Indexes, &model.Index{Name: name, Columns: columns})
	case "uniqueIndex":
		entity.Indexes = append(entity.Indexes, &model.Index{Name: name, Columns: columns, Unique: true})
	case "check":
		entity.Checks = append(entity.Checks, &model.Check{Name: name})
	}
}

// columnName resolves a column mention that is either a bare identifier or
// a table.column member access.
func columnName(n ast.Node) string {
	switch v := ast.Unparen(n).(type) {
	case *ast.Ident:
		return v.Name
	case *ast.Member:
		return v.Property
	}
	return ""
}
