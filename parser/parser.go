/*
File : kuin-parser/parser/parser.go

Package parser implements a recursive-descent, operator-precedence
front end for Kuin (§2). The whole input is tokenized up front by
package lexer; the parser walks that token slice with an integer
cursor, which makes speculative parsing cheap: a grammar alternative
that fails just resets the cursor and the next alternative is tried
from the same position, no re-lexing involved.

Unlike the teacher's Pratt parser, there is no parse-time evaluation
here (§1's Non-goals exclude constant folding), so there is no
environment/const-tracking state to carry — New only needs the source
text and its token stream.
*/
package parser

import (
	"log"

	"github.com/kuin-lang/kuin-parser/lexer"
)

// Parser walks a pre-tokenized Kuin source. src is kept alongside the
// token slice solely so Import (§6) can recover SourceName's raw,
// whitespace-delimited text, which does not correspond to a clean run
// of tokens.
type Parser struct {
	src    string
	tokens []lexer.Token
	pos    int

	// farthest tracks the deepest-reaching ordinary mismatch seen so
	// far, across every backtracked alternative, so the caller gets
	// the single most informative error (§7).
	farthest        *ParseError
	farthestBytePos int

	// Trace, when set, logs each token consumed via log.Printf —
	// purely a debugging aid, mirroring mattn-skylark/syntax's debug
	// flag. Off and silent by default.
	Trace bool
}

// New constructs a Parser over src and its already-tokenized form.
func New(src string, tokens []lexer.Token) *Parser {
	return &Parser{src: src, tokens: tokens}
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[i]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.Trace {
		log.Printf("parser: consume %s", t)
	}
	if t.Type != lexer.EOF {
		p.pos++
	}
	return t
}

// mark/reset implement the save/restore cursor that backs speculative
// parsing.
func (p *Parser) mark() int { return p.pos }

func (p *Parser) reset(mark int) { p.pos = mark }

// fail records an ordinary mismatch at the current position, updating
// the farthest-reaching failure if this one goes deeper, and returns it
// as an error value for the caller to propagate or discard.
func (p *Parser) fail(expected string) *ParseError {
	t := p.cur()
	if p.farthest == nil || t.Start >= p.farthestBytePos {
		p.farthest = &ParseError{Line: t.Line, Col: t.Col, Expected: expected}
		p.farthestBytePos = t.Start
	}
	return &ParseError{Line: t.Line, Col: t.Col, Expected: expected}
}

// expect consumes the current token if it matches tt, else records and
// returns an ordinary mismatch.
func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, *ParseError) {
	if p.cur().Type == tt {
		return p.advance(), nil
	}
	return lexer.Token{}, p.fail(what)
}

func (p *Parser) at(tt lexer.TokenType) bool {
	return p.cur().Type == tt
}

func (p *Parser) atAny(tts ...lexer.TokenType) bool {
	c := p.cur().Type
	for _, tt := range tts {
		if c == tt {
			return true
		}
	}
	return false
}
