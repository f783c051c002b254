package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuin-lang/kuin-parser/ast"
)

func sym(name string) ast.Symbol { return ast.NewSymbol(name) }

func ref(name string) ast.Expr { return &ast.Ref{Name: sym(name)} }

func intLit(v int64) ast.Expr { return &ast.IntLiteral{Value: v} }

func blockName(name string) *ast.Symbol {
	s := sym(name)
	return &s
}

func TestParseProgram_IfElifElseWithBlockNames(t *testing.T) {
	src := `if a (4 > 5) break a elif (3 = 2) break else break a end if`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := &ast.If{
		BlockName: blockName("a"),
		Clauses: []ast.IfClause{
			{
				Cond: &ast.Op{Name: sym(">"), Operands: []ast.Expr{intLit(4), intLit(5)}},
				Body: []ast.Stmt{&ast.Break{BlockName: blockName("a")}},
			},
			{
				Cond: &ast.Op{Name: sym("="), Operands: []ast.Expr{intLit(3), intLit(2)}},
				Body: []ast.Stmt{&ast.Break{BlockName: nil}},
			},
			{
				Cond: nil,
				Body: []ast.Stmt{&ast.Break{BlockName: blockName("a")}},
			},
		},
	}
	// Three nested clauses each with their own Cond/Body/BlockName: a
	// single assert.Equal failure here would just say "not equal" without
	// saying which clause or field, so compare structurally with go-cmp.
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("If statement mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProgram_Enum(t *testing.T) {
	src := `enum EColor  Red  Blue  Green :: 5  Yellow  end enum`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := &ast.Enum{
		Name: sym("EColor"),
		Members: []ast.EnumMember{
			{Name: sym("Red"), Value: 0},
			{Name: sym("Blue"), Value: 1},
			{Name: sym("Green"), Value: 5},
			{Name: sym("Yellow"), Value: 6},
		},
	}
	assert.Equal(t, want, got[0])
}

func TestParseProgram_SwitchWithRangeAndDefault(t *testing.T) {
	src := `switch s (n)  case 1, 2, 5 @to 8, a  const x: int :: 2  default  break s  end switch`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 1)

	sw, ok := got[0].(*ast.Switch)
	require.True(t, ok)
	assert.Equal(t, blockName("s"), sw.BlockName)
	assert.Equal(t, ref("n"), sw.Target)
	require.Len(t, sw.Cases, 2)

	caseValues := sw.Cases[0].Values
	require.NotNil(t, caseValues)
	require.Len(t, caseValues.Ranges, 4)
	assert.Equal(t, ast.ValueRange{Lo: intLit(1)}, caseValues.Ranges[0])
	assert.Equal(t, ast.ValueRange{Lo: intLit(2)}, caseValues.Ranges[1])
	assert.Equal(t, ast.ValueRange{Lo: intLit(5), Hi: intLit(8)}, caseValues.Ranges[2])
	assert.Equal(t, ast.ValueRange{Lo: ref("a")}, caseValues.Ranges[3])
	assert.Equal(t, []ast.Stmt{&ast.Const{Name: sym("x"), Ty: &ast.Primitive{Name: sym("int")}, Init: intLit(2)}}, sw.Cases[0].Body)

	assert.Nil(t, sw.Cases[1].Values)
	assert.Equal(t, []ast.Stmt{&ast.Break{BlockName: blockName("s")}}, sw.Cases[1].Body)
}

func TestParseProgram_VarArrayAndStringConcatAndIndex(t *testing.T) {
	src := `
var p : [2][3]int
var q : [][]float
var s : []char :: "abc" ~ "def"
var c : char :: s[4]
`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []ast.Stmt{
		&ast.Var{
			Name: sym("p"),
			Ty: &ast.ArrayType{
				Base:  &ast.Primitive{Name: sym("int")},
				Sizes: []ast.Expr{intLit(2), intLit(3)},
			},
		},
		&ast.Var{
			Name: sym("q"),
			Ty: &ast.ArrayType{
				Base:  &ast.Primitive{Name: sym("float")},
				Sizes: []ast.Expr{nil, nil},
			},
		},
		&ast.Var{
			Name: sym("s"),
			Ty:   &ast.ArrayType{Base: &ast.Primitive{Name: sym("char")}, Sizes: []ast.Expr{nil}},
			Init: &ast.Op{
				Name:     sym("~"),
				Operands: []ast.Expr{&ast.StringLiteral{Value: "abc"}, &ast.StringLiteral{Value: "def"}},
			},
		},
		&ast.Var{
			Name: sym("c"),
			Ty:   &ast.Primitive{Name: sym("char")},
			Init: &ast.Index{Array: sym("s"), Idx: intLit(4)},
		},
	}
	// Four Var nodes, each with a nested ArrayType/Op/Index — exactly
	// where a bare assert.Equal failure wouldn't say which node or which
	// nested field differs, so compare the whole slice structurally.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Var statements mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProgram_DoStatements(t *testing.T) {
	src := `
do a :: 4 + 5
do a :+ 2
do b :: !a
`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 3)

	want0 := &ast.Do{Expr: &ast.Op{Name: sym("::"), Operands: []ast.Expr{
		ref("a"), &ast.Op{Name: sym("+"), Operands: []ast.Expr{intLit(4), intLit(5)}},
	}}}
	want1 := &ast.Do{Expr: &ast.Op{Name: sym(":+"), Operands: []ast.Expr{ref("a"), intLit(2)}}}
	want2 := &ast.Do{Expr: &ast.Op{Name: sym("::"), Operands: []ast.Expr{
		ref("b"), &ast.Op{Name: sym("!"), Operands: []ast.Expr{ref("a")}},
	}}}

	assert.Equal(t, want0, got[0])
	assert.Equal(t, want1, got[1])
	assert.Equal(t, want2, got[2])
}

func TestParseProgram_NewAndIsInitializers(t *testing.T) {
	src := `
var a : []int :: @new [5]int
var b : CB :: @new CB
var c : bool :: b @is CB
`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 3)

	a := got[0].(*ast.Var)
	assert.Equal(t, &ast.New{Ty: &ast.ArrayType{Base: &ast.Primitive{Name: sym("int")}, Sizes: []ast.Expr{intLit(5)}}}, a.Init)

	b := got[1].(*ast.Var)
	assert.Equal(t, &ast.New{Ty: &ast.NamedType{Name: sym("CB")}}, b.Init)

	c := got[2].(*ast.Var)
	assert.Equal(t, &ast.Op{Name: sym("@is"), Operands: []ast.Expr{ref("b"), &ast.Ref{Name: sym("CB")}}}, c.Init)
}

func TestParseProgram_EmptyInput(t *testing.T) {
	got, err := ParseProgram("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseProgram_TrailingAndNestedCommentsIgnored(t *testing.T) {
	src := `
{ a top-level comment }
do a :: 1 { trailing comment with { nested } inside }
`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, &ast.Do{Expr: &ast.Op{Name: sym("::"), Operands: []ast.Expr{ref("a"), intLit(1)}}}, got[0])
}

func TestParseProgram_ElifAfterElseRejected(t *testing.T) {
	// Once an else clause has opened, a further elif is not a
	// recognized sentence inside it, so it fails as an ordinary mismatch
	// rather than being silently accepted.
	src := `if (1 = 1) break else break elif (2 = 2) break end if`
	_, err := ParseProgram(src)
	require.Error(t, err)
}

func TestParseProgram_ClassVisibilityAndOverride(t *testing.T) {
	src := `
class CB
  -var hidden: int
  +var shared: int
  *func run()
  end func
end class
`
	got, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, got, 1)

	cls, ok := got[0].(*ast.Class)
	require.True(t, ok)
	require.Len(t, cls.Members, 3)

	assert.Equal(t, ast.VisibilityPrivate, cls.Members[0].Visibility)
	assert.False(t, cls.Members[0].Override)
	assert.Equal(t, ast.VisibilityProtected, cls.Members[1].Visibility)
	assert.Equal(t, ast.VisibilityPublic, cls.Members[2].Visibility)
	assert.True(t, cls.Members[2].Override)
}

func TestParseProgram_Import(t *testing.T) {
	got, err := ParseProgram("import some/path.kn\ndo a :: 1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	imp, ok := got[0].(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, "some/path.kn", imp.SourceName)
}
