package ast

// Expr is any expression node. exprNode is unexported so Expr is closed
// over this package's variants, mirroring the teacher's Statement()/
// Expression() marker methods without the Accept/Visitor machinery that
// package carries for parse-time evaluation — this parser does none.
type Expr interface {
	exprNode()
}

// IntLiteral is an integer numeral, already evaluated to its exact
// value by the lexer's radix-aware scanner (§4.1).
type IntLiteral struct {
	Value int64
}

func (*IntLiteral) exprNode() {}

// RealLiteral is a numeral with a fractional part and/or exponent.
type RealLiteral struct {
	Value float64
}

func (*RealLiteral) exprNode() {}

// StringLiteral holds an already-escape-processed string value.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) exprNode() {}

// CharLiteral holds a single already-escape-processed character.
type CharLiteral struct {
	Value string
}

func (*CharLiteral) exprNode() {}

// BoolLiteral is true/false.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) exprNode() {}

// Ref is a reference to a variable, constant, enum constant, or named
// block, by its (possibly qualified) Symbol.
type Ref struct {
	Name Symbol
}

func (*Ref) exprNode() {}

// Call is a function or method call; Args may be empty but not nil-panicking.
type Call struct {
	Func Symbol
	Args []Expr
}

func (*Call) exprNode() {}

// Index is single-dimension array access. Array is a name, so the
// grammar accepts one `[...]` after a name; chained indexing such as
// a[1][2] is not parsed.
type Index struct {
	Array Symbol
	Idx   Expr
}

func (*Index) exprNode() {}

// New allocates an instance of Ty.
type New struct {
	Ty Type
}

func (*New) exprNode() {}

// Op is a unary (1 operand), binary (2), or ternary (3) operator
// application. Op.Name is the operator's textual spelling, one of the
// tokens enumerated in the expression-precedence table.
type Op struct {
	Name     Symbol
	Operands []Expr
}

func (*Op) exprNode() {}

// TypeExpr lets a Type value occupy an expression slot, needed solely
// for the `$` cast's right operand (§4.4), which is a full Type rather
// than an ordinary Expr. It is produced nowhere else in the grammar.
type TypeExpr struct {
	Ty Type
}

func (*TypeExpr) exprNode() {}

// ValueRange is one entry of a ValueList: either a bare value (Hi == nil)
// or an inclusive lo@to hi range.
type ValueRange struct {
	Lo Expr
	Hi Expr // nil unless this entry is a range
}

// ValueList is the comma-separated case-label/ignore-list grammar used
// by switch and try headers (§4.5). It is not itself an Expr — it only
// ever appears in a Stmt field.
type ValueList struct {
	Ranges []ValueRange
}
