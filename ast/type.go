package ast

// Type is any type-expression node (§3, §4.3).
type Type interface {
	typeNode()
}

// Primitive is one of the closed set of built-in scalar types.
type Primitive struct {
	Name Symbol
}

func (*Primitive) typeNode() {}

// NamedType is an enum or class name; parsing does not distinguish the two.
type NamedType struct {
	Name Symbol
}

func (*NamedType) typeNode() {}

// ContainerKind enumerates the single-type-parameter container kinds.
type ContainerKind int

const (
	ContainerList ContainerKind = iota
	ContainerStack
	ContainerQueue
)

func (k ContainerKind) String() string {
	switch k {
	case ContainerList:
		return "list"
	case ContainerStack:
		return "stack"
	case ContainerQueue:
		return "queue"
	default:
		return "?"
	}
}

// Container is list<Item>, stack<Item>, or queue<Item>.
type Container struct {
	Kind ContainerKind
	Item Type
}

func (*Container) typeNode() {}

// DictType is dict<Key, Value>.
type DictType struct {
	Key   Type
	Value Type
}

func (*DictType) typeNode() {}

// FuncType is func<(Args...): Ret>. The parser always requires the
// return type, so Ret is never nil in a parsed tree.
type FuncType struct {
	Args []Type
	Ret  Type
}

func (*FuncType) typeNode() {}

// ArrayType is Base with Sizes leading dimensions, one per textual
// `[]`/`[N]`, in left-to-right order. A nil entry in Sizes means an
// empty-bracket dimension.
type ArrayType struct {
	Base  Type
	Sizes []Expr
}

func (*ArrayType) typeNode() {}
