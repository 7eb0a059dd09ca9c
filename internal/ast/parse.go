package ast

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parse parses one TypeScript source document into a File. A fresh
// tree-sitter parser is created per call and the syntax tree is released
// before returning, so no parse state survives between documents.
func Parse(ctx context.Context, path string, content []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned no root node for %s", path)
	}

	file := &File{Path: path}
	c := &converter{src: content}

	// Walk top-level statements, carrying comment blocks forward onto the
	// next declaration statement.
	var pending []string
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Type() {
		case "comment":
			pending = append(pending, c.text(child))
		case "export_statement":
			if decl := c.declaration(child.ChildByFieldName("declaration"), true, pending); decl != nil {
				file.Decls = append(file.Decls, decl)
			}
			pending = nil
		case "lexical_declaration", "variable_declaration":
			if decl := c.declaration(child, false, pending); decl != nil {
				file.Decls = append(file.Decls, decl)
			}
			pending = nil
		default:
			pending = nil
		}
	}

	return file, nil
}

type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	return string(c.src[n.StartByte():n.EndByte()])
}

// declaration converts a lexical declaration statement into a Decl. Only the
// first declarator is considered; schema files bind one value per statement.
func (c *converter) declaration(n *sitter.Node, exported bool, comments []string) *Decl {
	if n == nil {
		return nil
	}
	if n.Type() != "lexical_declaration" && n.Type() != "variable_declaration" {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		name := child.ChildByFieldName("name")
		value := child.ChildByFieldName("value")
		if name == nil || value == nil || name.Type() != "identifier" {
			return nil
		}
		return &Decl{
			Name:     c.text(name),
			Exported: exported,
			Value:    c.convert(value),
			Comments: comments,
		}
	}
	return nil
}

// convert maps a tree-sitter node onto the subset grammar. Constructs the
// engine does not consume come back as Raw.
func (c *converter) convert(n *sitter.Node) Node {
	if n == nil {
		return &Raw{}
	}
	switch n.Type() {
	case "identifier", "property_identifier", "shorthand_property_identifier":
		return &Ident{Name: c.text(n)}
	case "string":
		return &String{Value: c.stringContent(n)}
	case "template_string":
		return c.templateString(n)
	case "number":
		return &Number{Text: c.text(n)}
	case "true":
		return &Bool{Value: true}
	case "false":
		return &Bool{Value: false}
	case "array":
		arr := &Array{}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			elem := n.NamedChild(i)
			if elem.Type() == "comment" {
				continue
			}
			arr.Elems = append(arr.Elems, c.convert(elem))
		}
		return arr
	case "object":
		return c.object(n)
	case "call_expression":
		call := &Call{Fun: c.convert(n.ChildByFieldName("function"))}
		if args := n.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				arg := args.NamedChild(i)
				if arg.Type() == "comment" {
					continue
				}
				call.Args = append(call.Args, c.convert(arg))
			}
		}
		return call
	case "member_expression":
		prop := n.ChildByFieldName("property")
		if prop == nil {
			return &Raw{Text: c.text(n)}
		}
		return &Member{
			Object:   c.convert(n.ChildByFieldName("object")),
			Property: c.text(prop),
		}
	case "arrow_function":
		fn := &Func{Body: c.convert(n.ChildByFieldName("body"))}
		if params := n.ChildByFieldName("parameters"); params != nil {
			fn.NumParams = int(params.NamedChildCount())
		} else if n.ChildByFieldName("parameter") != nil {
			fn.NumParams = 1
		}
		return fn
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return &Paren{X: c.convert(n.NamedChild(0))}
		}
		return &Raw{Text: c.text(n)}
	case "statement_block":
		block := &Block{}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			block.Stmts = append(block.Stmts, c.convert(n.NamedChild(i)))
		}
		return block
	case "return_statement":
		ret := &Return{}
		if n.NamedChildCount() > 0 {
			ret.X = c.convert(n.NamedChild(0))
		}
		return ret
	case "as_expression", "satisfies_expression", "non_null_expression":
		// Type-level wrappers; the runtime expression is the first child.
		if n.NamedChildCount() > 0 {
			return c.convert(n.NamedChild(0))
		}
		return &Raw{Text: c.text(n)}
	default:
		return &Raw{Text: c.text(n)}
	}
}

// object converts an object literal, attaching leading comments inside the
// literal to the entry that follows them.
func (c *converter) object(n *sitter.Node) Node {
	obj := &Object{}
	var pending []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "comment":
			pending = append(pending, c.text(child))
		case "pair":
			key := c.pairKey(child.ChildByFieldName("key"))
			value := child.ChildByFieldName("value")
			if key == "" || value == nil {
				pending = nil
				continue
			}
			obj.Entries = append(obj.Entries, Entry{
				Key:      key,
				Value:    c.convert(value),
				Comments: pending,
			})
			pending = nil
		case "shorthand_property_identifier":
			obj.Entries = append(obj.Entries, Entry{
				Key:      c.text(child),
				Value:    &Ident{Name: c.text(child)},
				Comments: pending,
			})
			pending = nil
		default:
			pending = nil
		}
	}
	return obj
}

func (c *converter) pairKey(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "property_identifier":
		return c.text(n)
	case "string":
		return c.stringContent(n)
	}
	return ""
}

// stringContent returns the inner text of a string literal.
func (c *converter) stringContent(n *sitter.Node) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "string_fragment" {
			return c.text(child)
		}
	}
	return strings.Trim(c.text(n), `"'`)
}

// templateString converts a template literal. Templates with substitutions
// fall outside the subset and come back as Raw.
func (c *converter) templateString(n *sitter.Node) Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "template_substitution" {
			return &Raw{Text: c.text(n)}
		}
	}
	return &String{Value: strings.Trim(c.text(n), "`")}
}
