// Package ast models the subset of the TypeScript grammar consumed by the
// schema engine as a tagged-variant node tree. Consumers dispatch on the
// concrete node type instead of probing node kinds.
package ast

// Node is implemented by every syntax node in the subset grammar.
type Node interface {
	node()
}

// Ident is a plain identifier.
type Ident struct {
	Name string
}

// String is a string literal or a template literal without substitutions.
type String struct {
	Value string
}

// Number is a numeric literal, kept as source text.
type Number struct {
	Text string
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// Array is an array literal.
type Array struct {
	Elems []Node
}

// Entry is one key/value pair of an object literal, with any leading
// comments attached.
type Entry struct {
	Key      string
	Value    Node
	Comments []string
}

// Object is an object literal.
type Object struct {
	Entries []Entry
}

// Call is a call expression.
type Call struct {
	Fun  Node
	Args []Node
}

// Member is a member access of the form object.property.
type Member struct {
	Object   Node
	Property string
}

// Func is an arrow function literal. Body is either an expression node or
// a Block.
type Func struct {
	NumParams int
	Body      Node
}

// Paren is a parenthesized expression.
type Paren struct {
	X Node
}

// Block is a statement block; only return statements are retained.
type Block struct {
	Stmts []Node
}

// Return is a return statement. X is nil for a bare return.
type Return struct {
	X Node
}

// Raw is any construct outside the subset grammar, kept as source text so
// callers can record literal defaults verbatim.
type Raw struct {
	Text string
}

func (*Ident) node()  {}
func (*String) node() {}
func (*Number) node() {}
func (*Bool) node()   {}
func (*Array) node()  {}
func (*Object) node() {}
func (*Call) node()   {}
func (*Member) node() {}
func (*Func) node()   {}
func (*Paren) node()  {}
func (*Block) node()  {}
func (*Return) node() {}
func (*Raw) node()    {}

// Decl is a top-level variable binding.
type Decl struct {
	Name     string
	Exported bool
	Value    Node
	// Comments holds the raw text of the comment blocks immediately
	// preceding the declaration's enclosing statement.
	Comments []string
}

// File is the parsed form of one source document.
type File struct {
	Path  string
	Decls []*Decl
}

// Unparen strips any number of wrapping parentheses.
func Unparen(n Node) Node {
	for {
		p, ok := n.(*Paren)
		if !ok {
			return n
		}
		n = p.X
	}
}

// CalleeName returns the invoked name of a call's function node: the
// identifier itself, or the property of a member access. Empty when the
// callee has another shape.
func CalleeName(fun Node) string {
	switch f := fun.(type) {
	case *Ident:
		return f.Name
	case *Member:
		return f.Property
	}
	return ""
}
