/*
File : kuin-parser/parser/types.go

Type-expression parser (§4.3). Disambiguation is by leading keyword
(func) or by leading identifier text (list/stack/queue/dict are not in
the closed keyword set, §6, so they are recognized textually here) or
by a leading `[` (array dimension). Anything else falls through to a
qualified NamedType, which covers both EnumName and ClassName — parsing
never needs to tell them apart.
*/
package parser

import (
	"github.com/kuin-lang/kuin-parser/ast"
	"github.com/kuin-lang/kuin-parser/lexer"
)

var primitiveNames = map[string]bool{
	"int": true, "float": true, "char": true, "bool": true,
	"byte8": true, "byte16": true, "byte32": true, "byte64": true,
	"sbyte8": true, "sbyte16": true, "sbyte32": true, "sbyte64": true,
}

func (p *Parser) parseType() (ast.Type, *ParseError) {
	if p.at(lexer.LBRACKET) {
		return p.parseArrayType()
	}

	if p.at(lexer.FUNC) {
		return p.parseFuncType()
	}

	if p.at(lexer.IDENT) {
		switch p.cur().Literal {
		case "list":
			return p.parseContainerType(ast.ContainerList)
		case "stack":
			return p.parseContainerType(ast.ContainerStack)
		case "queue":
			return p.parseContainerType(ast.ContainerQueue)
		case "dict":
			return p.parseDictType()
		}
		if primitiveNames[p.cur().Literal] {
			tok := p.advance()
			return &ast.Primitive{Name: ast.NewSymbol(tok.Literal)}, nil
		}
	}

	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, p.fail("type")
	}
	return &ast.NamedType{Name: name}, nil
}

// parseContainerType handles list<Item>, stack<Item>, queue<Item>.
func (p *Parser) parseContainerType(kind ast.ContainerKind) (ast.Type, *ParseError) {
	p.advance() // list/stack/queue keyword-word
	if _, err := p.expect(lexer.LT, "'<'"); err != nil {
		return nil, err
	}
	item, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.GT, "'>'"); err != nil {
		return nil, err
	}
	return &ast.Container{Kind: kind, Item: item}, nil
}

// parseDictType handles dict<Key, Value>.
func (p *Parser) parseDictType() (ast.Type, *ParseError) {
	p.advance() // "dict"
	if _, err := p.expect(lexer.LT, "'<'"); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COMMA, "','"); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.GT, "'>'"); err != nil {
		return nil, err
	}
	return &ast.DictType{Key: key, Value: value}, nil
}

// parseFuncType handles func<(T1, T2, ...): Ret>.
func (p *Parser) parseFuncType() (ast.Type, *ParseError) {
	p.advance() // "func"
	if _, err := p.expect(lexer.LT, "'<'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Type
	if !p.at(lexer.RPAREN) {
		for {
			argTy, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, argTy)
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.GT, "'>'"); err != nil {
		return nil, err
	}
	return &ast.FuncType{Args: args, Ret: ret}, nil
}

// parseArrayType consumes one or more leading `[Expr?]` dimensions
// followed by the element type (§4.3: "left-aggregating").
func (p *Parser) parseArrayType() (ast.Type, *ParseError) {
	var sizes []ast.Expr
	for p.at(lexer.LBRACKET) {
		p.advance()
		var size ast.Expr
		if !p.at(lexer.RBRACKET) {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			size = e
		}
		if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.ArrayType{Base: base, Sizes: sizes}, nil
}
