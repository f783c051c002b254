/*
File : kuin-parser/parser/expr.go

The expression grammar: a precedence cascade of explicit level
functions, per §4.4's canonical table and §9's guidance ("explicit
level functions" is one of the two sanctioned ways to express
precedence; the other, a Pratt parser, does not accommodate this
grammar's heterogeneous per-level right-hand sides — cast's RHS is a
Type, @is/@nis's is a ClassName — as cleanly as a hand-written cascade
does).

parseExpr is the public-facing entry (level 1, loosest).
*/
package parser

import (
	"github.com/kuin-lang/kuin-parser/ast"
	"github.com/kuin-lang/kuin-parser/lexer"
)

func (p *Parser) parseExpr() (ast.Expr, *ParseError) {
	return p.parseLevel1()
}

// Level 1: assignment family, right-associative.
func (p *Parser) parseLevel1() (ast.Expr, *ParseError) {
	left, err := p.parseLevel2()
	if err != nil {
		return nil, err
	}
	if op, ok := assignOps[p.cur().Type]; ok {
		p.advance()
		right, err := p.parseLevel1()
		if err != nil {
			return nil, err
		}
		return &ast.Op{Name: ast.NewSymbol(op), Operands: []ast.Expr{left, right}}, nil
	}
	return left, nil
}

var assignOps = map[lexer.TokenType]string{
	lexer.ASSIGN:        "::",
	lexer.ASSIGN_ADD:    ":+",
	lexer.ASSIGN_SUB:    ":-",
	lexer.ASSIGN_MUL:    ":*",
	lexer.ASSIGN_DIV:    ":/",
	lexer.ASSIGN_MOD:    ":%",
	lexer.ASSIGN_XOR:    ":^",
	lexer.ASSIGN_CONCAT: ":~",
}

// Level 2: ternary `cond ?(true_expr, false_expr)`. All three operands
// are parsed at level 3, one level below the ternary itself — a bare
// assignment is never reachable unparenthesized inside a branch, since
// the assignment production sits above the ternary, not below it.
func (p *Parser) parseLevel2() (ast.Expr, *ParseError) {
	cond, err := p.parseLevel3()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.QUESTION_LPAREN) {
		return cond, nil
	}
	p.advance()
	trueExpr, err := p.parseLevel3()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COMMA, "','"); err != nil {
		return nil, err
	}
	falseExpr, err := p.parseLevel3()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.Op{Name: ast.NewSymbol("?("), Operands: []ast.Expr{cond, trueExpr, falseExpr}}, nil
}

func (p *Parser) parseLeftAssocBinary(next func() (ast.Expr, *ParseError), ops map[lexer.TokenType]string) (ast.Expr, *ParseError) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		name, ok := ops[p.cur().Type]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Op{Name: ast.NewSymbol(name), Operands: []ast.Expr{left, right}}
	}
}

var level3Ops = map[lexer.TokenType]string{lexer.AMP: "&", lexer.PIPE: "|"}

func (p *Parser) parseLevel3() (ast.Expr, *ParseError) {
	return p.parseLeftAssocBinary(p.parseLevel4, level3Ops)
}

var level4Ops = map[lexer.TokenType]string{
	lexer.EQ: "=", lexer.NE: "<>", lexer.LT: "<", lexer.GT: ">",
	lexer.LE: "<=", lexer.GE: ">=",
}

func (p *Parser) parseLevel4() (ast.Expr, *ParseError) {
	return p.parseLeftAssocBinary(p.parseLevel5, level4Ops)
}

var level5Ops = map[lexer.TokenType]string{lexer.TILDE: "~"}

func (p *Parser) parseLevel5() (ast.Expr, *ParseError) {
	return p.parseLeftAssocBinary(p.parseLevel6, level5Ops)
}

var level6Ops = map[lexer.TokenType]string{lexer.PLUS: "+", lexer.MINUS: "-"}

func (p *Parser) parseLevel6() (ast.Expr, *ParseError) {
	return p.parseLeftAssocBinary(p.parseLevel7, level6Ops)
}

var level7Ops = map[lexer.TokenType]string{lexer.STAR: "*", lexer.SLASH: "/", lexer.PERCENT: "%"}

func (p *Parser) parseLevel7() (ast.Expr, *ParseError) {
	return p.parseLeftAssocBinary(p.parseLevel8, level7Ops)
}

// Level 8: `$` cast; right operand is a full Type, carried via TypeExpr.
func (p *Parser) parseLevel8() (ast.Expr, *ParseError) {
	left, err := p.parseLevel9()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.DOLLAR) {
		p.advance()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		left = &ast.Op{Name: ast.NewSymbol("$"), Operands: []ast.Expr{left, &ast.TypeExpr{Ty: ty}}}
	}
	return left, nil
}

// Level 9: `@is`/`@nis`; right operand is a ClassName, wrapped as Ref.
func (p *Parser) parseLevel9() (ast.Expr, *ParseError) {
	left, err := p.parseLevel10()
	if err != nil {
		return nil, err
	}
	for {
		var name string
		switch p.cur().Type {
		case lexer.AT_IS:
			name = "@is"
		case lexer.AT_NIS:
			name = "@nis"
		default:
			return left, nil
		}
		p.advance()
		className, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		left = &ast.Op{Name: ast.NewSymbol(name), Operands: []ast.Expr{left, &ast.Ref{Name: className}}}
	}
}

// Level 10: unary +/-/!, right-associative. A leading sign immediately
// followed by a numeral folds into a single signed literal rather than
// an Op node (§4.4, §9).
func (p *Parser) parseLevel10() (ast.Expr, *ParseError) {
	if p.atAny(lexer.PLUS, lexer.MINUS) {
		next := p.peekAt(1)
		if next.Type == lexer.INT || next.Type == lexer.REAL {
			signTok := p.advance()
			numTok := p.advance()
			negate := signTok.Type == lexer.MINUS
			if numTok.Type == lexer.INT {
				v := numTok.NumValue
				if negate {
					v = -v
				}
				return &ast.IntLiteral{Value: v}, nil
			}
			v := numTok.RealValue
			if negate {
				v = -v
			}
			return &ast.RealLiteral{Value: v}, nil
		}
		opTok := p.advance()
		operand, err := p.parseLevel10()
		if err != nil {
			return nil, err
		}
		return &ast.Op{Name: ast.NewSymbol(opTok.Literal), Operands: []ast.Expr{operand}}, nil
	}
	if p.at(lexer.BANG) {
		p.advance()
		operand, err := p.parseLevel10()
		if err != nil {
			return nil, err
		}
		return &ast.Op{Name: ast.NewSymbol("!"), Operands: []ast.Expr{operand}}, nil
	}
	return p.parseLevel11()
}

// Level 11: `@new Type` prefix.
func (p *Parser) parseLevel11() (ast.Expr, *ParseError) {
	if p.at(lexer.AT_NEW) {
		p.advance()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.New{Ty: ty}, nil
	}
	return p.parsePrimary()
}

// parsePrimary covers levels 12 (call/index postfix) and 13 (atoms):
// literals, parenthesized expressions, and name-rooted forms. A
// qualified name's following token (`(` or `[`) decides whether it is a
// call, an index, or a bare reference — this is ordinary one-token
// lookahead, not true backtracking, since the grammar never needs a
// name to be more than one of these.
func (p *Parser) parsePrimary() (ast.Expr, *ParseError) {
	switch p.cur().Type {
	case lexer.INT:
		tok := p.advance()
		return &ast.IntLiteral{Value: tok.NumValue}, nil
	case lexer.REAL:
		tok := p.advance()
		return &ast.RealLiteral{Value: tok.RealValue}, nil
	case lexer.STRING:
		tok := p.advance()
		return &ast.StringLiteral{Value: tok.Literal}, nil
	case lexer.CHAR:
		tok := p.advance()
		return &ast.CharLiteral{Value: tok.Literal}, nil
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLiteral{Value: true}, nil
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLiteral{Value: false}, nil
	case lexer.LPAREN:
		p.advance()
		e, err := p.parseLevel1()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case lexer.IDENT:
		return p.parseNameRootedExpr()
	}
	return nil, p.fail("expression")
}

func (p *Parser) parseNameRootedExpr() (ast.Expr, *ParseError) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	switch p.cur().Type {
	case lexer.LPAREN:
		p.advance()
		var args []ast.Expr
		if !p.at(lexer.RPAREN) {
			for {
				arg, err := p.parseLevel1()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.at(lexer.COMMA) {
					break
				}
				p.advance()
			}
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ast.Call{Func: name, Args: args}, nil
	case lexer.LBRACKET:
		p.advance()
		idx, err := p.parseLevel1()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		return &ast.Index{Array: name, Idx: idx}, nil
	default:
		return &ast.Ref{Name: name}, nil
	}
}

// parseValueList parses the comma-separated `switch`/`try` header list
// of single values or `lo @to hi` inclusive ranges (§4.5, GLOSSARY).
func (p *Parser) parseValueList() (*ast.ValueList, *ParseError) {
	var ranges []ast.ValueRange
	for {
		lo, err := p.parseLevel1()
		if err != nil {
			return nil, err
		}
		var hi ast.Expr
		if p.at(lexer.AT_TO) {
			p.advance()
			hiExpr, err := p.parseLevel1()
			if err != nil {
				return nil, err
			}
			hi = hiExpr
		}
		ranges = append(ranges, ast.ValueRange{Lo: lo, Hi: hi})
		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}
	return &ast.ValueList{Ranges: ranges}, nil
}
