/*
File : kuin-parser/ast/symbol.go

Package ast is the tagged syntax tree produced by package parser: every
identifier or operator name is flattened to a Symbol, and every node is
one of the Expr, Type, or Stmt variants below. The tree carries no
evaluation state — this front end never folds constants or resolves
scope — so nodes are plain structs, not a Visitor/Accept hierarchy.
*/
package ast

// Symbol is an opaque identifier: a bare name, a dotted/qualified name
// (Foo.bar, Mod@Klass.baz), an enum-qualified name (EColor#Red), or an
// operator's textual spelling. Qualification is never interpreted here;
// the composed text is kept verbatim.
type Symbol struct {
	Name string
}

func NewSymbol(name string) Symbol { return Symbol{Name: name} }

func (s Symbol) String() string { return s.Name }
