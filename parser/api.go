/*
File : kuin-parser/parser/api.go

The two public entry points (§4.6): ParseExpression and ParseProgram.
Both tokenize the whole input up front, then drive the recursive-descent
grammar over the resulting token slice.
*/
package parser

import (
	"github.com/kuin-lang/kuin-parser/ast"
	"github.com/kuin-lang/kuin-parser/lexer"
)

// ParseExpression parses text as a single Kuin expression (§4.6). The
// entire input must be consumed; trailing garbage after a syntactically
// complete expression is itself a ParseError, not a silently ignored
// tail.
func ParseExpression(text string) (ast.Expr, error) {
	tokens, ferr := lexer.Tokenize(text)
	if ferr != nil {
		return nil, fatalFromLexer(ferr)
	}
	p := New(text, tokens)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, finalError(p, err)
	}
	if !p.at(lexer.EOF) {
		return nil, finalError(p, p.fail("end of input"))
	}
	return expr, nil
}

// ParseProgram parses text as a sequence of top-level statements (§4.6).
func ParseProgram(text string) ([]ast.Stmt, error) {
	tokens, ferr := lexer.Tokenize(text)
	if ferr != nil {
		return nil, fatalFromLexer(ferr)
	}
	p := New(text, tokens)
	stmts, err := p.parseSentenceList(lexer.EOF)
	if err != nil {
		return nil, finalError(p, err)
	}
	if !p.at(lexer.EOF) {
		return nil, finalError(p, p.fail("end of input"))
	}
	return stmts, nil
}

// fatalFromLexer adapts a lexer-level fatal numeral error (detected
// once, eagerly, during tokenization) to this package's error type.
func fatalFromLexer(err error) error {
	if fe, ok := err.(*lexer.FatalNumberError); ok {
		return &FatalParseError{Line: fe.Line, Col: fe.Col, Message: fe.Message}
	}
	return err
}

// finalError prefers the deepest-reaching mismatch recorded across every
// backtracked alternative (§7) over whichever error happened to
// propagate out of the top-level call.
func finalError(p *Parser, err *ParseError) error {
	if p.farthest != nil {
		return p.farthest
	}
	return err
}
