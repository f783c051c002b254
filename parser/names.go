/*
File : kuin-parser/parser/names.go

Qualified-name builder (§4.2). ClassName, FunctionName/VariableName/
ConstantName, and EnumName all flatten to the same composed-text
Symbol; this parser does not distinguish them syntactically beyond
requiring the composition start with a bare identifier.
*/
package parser

import (
	"github.com/kuin-lang/kuin-parser/ast"
	"github.com/kuin-lang/kuin-parser/lexer"
)

// parseQualifiedName builds a Symbol from the concentric forms in §4.2:
// an optional `module@` prefix, one or more dot-separated identifiers,
// and an optional trailing `#member` (enum qualification).
func (p *Parser) parseQualifiedName() (ast.Symbol, *ParseError) {
	first, err := p.expect(lexer.IDENT, "identifier")
	if err != nil {
		return ast.Symbol{}, err
	}
	text := first.Literal

	if p.at(lexer.AT) {
		p.advance()
		ident, err := p.expect(lexer.IDENT, "identifier after '@'")
		if err != nil {
			return ast.Symbol{}, err
		}
		text += "@" + ident.Literal
	}

	for p.at(lexer.DOT) {
		p.advance()
		ident, err := p.expect(lexer.IDENT, "identifier after '.'")
		if err != nil {
			return ast.Symbol{}, err
		}
		text += "." + ident.Literal
	}

	if p.at(lexer.HASH) {
		p.advance()
		ident, err := p.expect(lexer.IDENT, "identifier after '#'")
		if err != nil {
			return ast.Symbol{}, err
		}
		text += "#" + ident.Literal
	}

	return ast.NewSymbol(text), nil
}

// parseBlockName parses the single plain-identifier block-name that may
// follow a block-statement keyword (§4.5). Block names are never
// qualified, so this is a bare IDENT, not the full qualified-name form.
// Every sentence begins with a reserved keyword, so an IDENT here can
// only be a block name, never the start of the body — no lookahead
// beyond the token type is needed.
func (p *Parser) parseBlockName() *ast.Symbol {
	if p.at(lexer.IDENT) {
		tok := p.advance()
		s := ast.NewSymbol(tok.Literal)
		return &s
	}
	return nil
}
