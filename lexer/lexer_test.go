package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenize_Punctuation(t *testing.T) {
	toks, err := Tokenize(`( ) [ ] , : . & | ~ + - * / % $ !`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		LPAREN, RPAREN, LBRACKET, RBRACKET, COMMA, COLON, DOT,
		AMP, PIPE, TILDE, PLUS, MINUS, STAR, SLASH, PERCENT, DOLLAR, BANG, EOF,
	}, types(toks))
}

func TestTokenize_AssignmentFamily(t *testing.T) {
	toks, err := Tokenize(`:: :+ :- :* :/ :% :^ :~`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		ASSIGN, ASSIGN_ADD, ASSIGN_SUB, ASSIGN_MUL, ASSIGN_DIV,
		ASSIGN_MOD, ASSIGN_XOR, ASSIGN_CONCAT, EOF,
	}, types(toks))
}

func TestTokenize_ComparisonAndTernary(t *testing.T) {
	toks, err := Tokenize(`= <> < > <= >= ?(`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{EQ, NE, LT, GT, LE, GE, QUESTION_LPAREN, EOF}, types(toks))
}

func TestTokenize_AtOperators(t *testing.T) {
	toks, err := Tokenize(`@is @nis @new @to @`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{AT_IS, AT_NIS, AT_NEW, AT_TO, AT, EOF}, types(toks))
}

func TestTokenize_KeywordsVsIdentifiers(t *testing.T) {
	toks, err := Tokenize(`if elseish true false_flag`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, IF, toks[0].Type)
	assert.Equal(t, IDENT, toks[1].Type, "elseish is not the keyword else")
	assert.Equal(t, TRUE, toks[2].Type)
	assert.Equal(t, IDENT, toks[3].Type, "false_flag is not the keyword false")
}

func TestTokenize_StringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\"b\\c\n"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\"b\\c\n", toks[0].Literal)
}

func TestTokenize_CharLiteral(t *testing.T) {
	toks, err := Tokenize(`'a' '\n'`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a", toks[0].Literal)
	assert.Equal(t, "\n", toks[1].Literal)
}

func TestTokenize_DecimalLiterals(t *testing.T) {
	toks, err := Tokenize(`10 0.999`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, INT, toks[0].Type)
	assert.EqualValues(t, 10, toks[0].NumValue)
	assert.Equal(t, REAL, toks[1].Type)
	assert.InDelta(t, 0.999, toks[1].RealValue, 1e-9)
}

func TestTokenize_RadixForms(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"2#1000", 8},
		{"8#777", 511},
		{"#FFF", 4095},
		{"36#Z", 35},
		{"#1", 1},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		require.NoError(t, err, c.src)
		require.Len(t, toks, 2, c.src)
		assert.Equal(t, INT, toks[0].Type, c.src)
		assert.EqualValues(t, c.want, toks[0].NumValue, c.src)
	}
}

func TestTokenize_Exponent(t *testing.T) {
	toks, err := Tokenize(`6.02e+23`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, REAL, toks[0].Type)
	assert.InEpsilon(t, 6.02e23, toks[0].RealValue, 1e-9)
}

func TestTokenize_FatalRadix(t *testing.T) {
	for _, src := range []string{"16#FFF", "10#123", "8#9", "1#0"} {
		_, err := Tokenize(src)
		require.Error(t, err, src)
		_, isFatal := err.(*FatalNumberError)
		assert.True(t, isFatal, "%s should be a fatal error", src)
	}
}

func TestTokenize_NonFatalMalformedNumber(t *testing.T) {
	toks, err := Tokenize(`#fff`)
	require.NoError(t, err)
	// "#fff" doesn't match the hex form (lowercase); falls back to
	// HASH followed by an identifier, leaving it to the parser to fail
	// as an ordinary, backtrackable mismatch.
	require.Len(t, toks, 3)
	assert.Equal(t, HASH, toks[0].Type)
	assert.Equal(t, IDENT, toks[1].Type)

	toks2, err2 := Tokenize(`2#`)
	require.NoError(t, err2)
	require.Len(t, toks2, 3)
	assert.Equal(t, INT, toks2[0].Type)
	assert.Equal(t, HASH, toks2[1].Type)
}

func TestTokenize_NestedComment(t *testing.T) {
	toks, err := Tokenize(`1 { a { "}" } b } 2`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{INT, INT, EOF}, types(toks))
}

func TestTokenize_LineAndColumnTracking(t *testing.T) {
	toks, err := Tokenize("a\nb")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}
