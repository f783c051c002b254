/*
File : kuin-parser/parser/stmt.go

One function per block statement, simple statement, and definition
(§4.5). Every sentence begins with a reserved keyword, so parseStatement
dispatches on the current token's type with no lookahead beyond it.
*/
package parser

import (
	"github.com/kuin-lang/kuin-parser/ast"
	"github.com/kuin-lang/kuin-parser/lexer"
)

func (p *Parser) parseStatement() (ast.Stmt, *ParseError) {
	switch p.cur().Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.SWITCH:
		return p.parseSwitch()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.FOREACH:
		return p.parseForeach()
	case lexer.TRY:
		return p.parseTry()
	case lexer.IFDEF:
		return p.parseIfdef()
	case lexer.BLOCK:
		return p.parseBlockStmt()
	case lexer.DO:
		return p.parseDo()
	case lexer.IMPORT:
		return p.parseImport()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.ASSERT:
		return p.parseAssert()
	case lexer.THROW:
		return p.parseThrow()
	case lexer.FUNC, lexer.VAR, lexer.CONST, lexer.ALIAS, lexer.CLASS, lexer.ENUM:
		return p.parseDefinition()
	}
	return nil, p.fail("statement")
}

// parseDefinition covers the definitions also reachable as a class
// member (§3's "Class members" wrap exactly these six).
func (p *Parser) parseDefinition() (ast.Stmt, *ParseError) {
	switch p.cur().Type {
	case lexer.FUNC:
		return p.parseFunc()
	case lexer.VAR:
		return p.parseVar()
	case lexer.CONST:
		return p.parseConst()
	case lexer.ALIAS:
		return p.parseAlias()
	case lexer.CLASS:
		return p.parseClass()
	case lexer.ENUM:
		return p.parseEnum()
	}
	return nil, p.fail("definition")
}

// parseSentenceList parses statements until the current token is one of
// stops, or EOF.
func (p *Parser) parseSentenceList(stops ...lexer.TokenType) ([]ast.Stmt, *ParseError) {
	var stmts []ast.Stmt
	for !p.atAny(stops...) && !p.at(lexer.EOF) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) parseHeaderParen(parse func() (ast.Expr, *ParseError)) (ast.Expr, *ParseError) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	e, err := parse()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseIf() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.ELIF, lexer.ELSE, lexer.END)
	if err != nil {
		return nil, err
	}
	clauses := []ast.IfClause{{Cond: cond, Body: body}}

	for p.at(lexer.ELIF) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
			return nil, err
		}
		c, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		b, err := p.parseSentenceList(lexer.ELIF, lexer.ELSE, lexer.END)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Cond: c, Body: b})
	}

	if p.at(lexer.ELSE) {
		p.advance()
		b, err := p.parseSentenceList(lexer.END)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, ast.IfClause{Cond: nil, Body: b})
	}

	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IF, "'if'"); err != nil {
		return nil, err
	}
	return &ast.If{Clauses: clauses, BlockName: blockName}, nil
}

func (p *Parser) parseSwitch() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	target, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	var cases []ast.SwitchCase
	for p.at(lexer.CASE) {
		p.advance()
		vl, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		body, err := p.parseSentenceList(lexer.CASE, lexer.DEFAULT, lexer.END)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.SwitchCase{Values: vl, Body: body})
	}
	if p.at(lexer.DEFAULT) {
		p.advance()
		body, err := p.parseSentenceList(lexer.END)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.SwitchCase{Values: nil, Body: body})
	}

	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SWITCH, "'switch'"); err != nil {
		return nil, err
	}
	return &ast.Switch{Target: target, Cases: cases, BlockName: blockName}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var skip ast.Expr
	if p.at(lexer.COMMA) {
		p.advance()
		skip, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.WHILE, "'while'"); err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Skip: skip, Body: body, BlockName: blockName}, nil
}

func (p *Parser) parseFor() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COMMA, "','"); err != nil {
		return nil, err
	}
	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var step ast.Expr
	if p.at(lexer.COMMA) {
		p.advance()
		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.FOR, "'for'"); err != nil {
		return nil, err
	}
	return &ast.For{Start: start, End: end, Step: step, Body: body, BlockName: blockName}, nil
}

func (p *Parser) parseForeach() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	items, err := p.parseHeaderParen(p.parseExpr)
	if err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.FOREACH, "'foreach'"); err != nil {
		return nil, err
	}
	return &ast.Foreach{Items: items, Body: body, BlockName: blockName}, nil
}

func (p *Parser) parseTry() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var ignore *ast.ValueList
	if !p.at(lexer.RPAREN) {
		vl, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		ignore = vl
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.CATCH, lexer.FINALLY, lexer.END)
	if err != nil {
		return nil, err
	}

	var catchValues *ast.ValueList
	var catchBody []ast.Stmt
	if p.at(lexer.CATCH) {
		p.advance()
		if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
			return nil, err
		}
		if !p.at(lexer.RPAREN) {
			vl, err := p.parseValueList()
			if err != nil {
				return nil, err
			}
			catchValues = vl
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		b, err := p.parseSentenceList(lexer.FINALLY, lexer.END)
		if err != nil {
			return nil, err
		}
		catchBody = b
	}

	var finallyBody []ast.Stmt
	if p.at(lexer.FINALLY) {
		p.advance()
		b, err := p.parseSentenceList(lexer.END)
		if err != nil {
			return nil, err
		}
		finallyBody = b
	}

	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRY, "'try'"); err != nil {
		return nil, err
	}
	return &ast.Try{
		Ignore: ignore, Body: body,
		CatchValues: catchValues, CatchBody: catchBody,
		FinallyBody: finallyBody, BlockName: blockName,
	}, nil
}

func (p *Parser) parseIfdef() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var mode ast.IfdefMode
	switch p.cur().Type {
	case lexer.RELEASE:
		mode = ast.IfdefRelease
		p.advance()
	case lexer.DEBUG:
		mode = ast.IfdefDebug
		p.advance()
	default:
		return nil, p.fail("'release' or 'debug'")
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.IFDEF, "'ifdef'"); err != nil {
		return nil, err
	}
	return &ast.Ifdef{Mode: mode, Body: body, BlockName: blockName}, nil
}

func (p *Parser) parseBlockStmt() (ast.Stmt, *ParseError) {
	p.advance()
	blockName := p.parseBlockName()
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.BLOCK, "'block'"); err != nil {
		return nil, err
	}
	return &ast.Block{Body: body, BlockName: blockName}, nil
}

func (p *Parser) parseDo() (ast.Stmt, *ParseError) {
	p.advance()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Do{Expr: e}, nil
}

const whitespaceBytes = " \t\n\v\f\r"

func isSourceNameStop(c byte) bool {
	for i := 0; i < len(whitespaceBytes); i++ {
		if whitespaceBytes[i] == c {
			return true
		}
	}
	return false
}

// parseImport recovers SourceName's raw text directly from the source
// string, since it matches any run of non-whitespace bytes (§6) rather
// than the ordinary token grammar, then fast-forwards the cursor past
// every token that fell inside that span.
func (p *Parser) parseImport() (ast.Stmt, *ParseError) {
	p.advance()
	if p.at(lexer.EOF) {
		return nil, p.fail("source name")
	}
	start := p.cur().Start
	end := start
	for end < len(p.src) && !isSourceNameStop(p.src[end]) {
		end++
	}
	for p.pos < len(p.tokens)-1 && p.tokens[p.pos].Start < end {
		p.pos++
	}
	return &ast.Import{SourceName: p.src[start:end]}, nil
}

func (p *Parser) parseBreak() (ast.Stmt, *ParseError) {
	p.advance()
	return &ast.Break{BlockName: p.parseBlockName()}, nil
}

func (p *Parser) parseContinue() (ast.Stmt, *ParseError) {
	p.advance()
	return &ast.Continue{BlockName: p.parseBlockName()}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, *ParseError) {
	p.advance()
	mark := p.mark()
	value, err := p.parseExpr()
	if err != nil {
		p.reset(mark)
		return &ast.Return{Value: nil}, nil
	}
	return &ast.Return{Value: value}, nil
}

func (p *Parser) parseAssert() (ast.Stmt, *ParseError) {
	p.advance()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assert{Expr: e}, nil
}

// parseThrow follows §9's resolution of the reference grammar's
// requires-a-message-but-prose-says-optional conflict: the message is
// optional here.
func (p *Parser) parseThrow() (ast.Stmt, *ParseError) {
	p.advance()
	code, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var msg ast.Expr
	if p.at(lexer.COMMA) {
		p.advance()
		m, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		msg = m
	}
	return &ast.Throw{Code: code, Message: msg}, nil
}

// parseBareName parses a plain, unqualified identifier — the form used
// for names at their definition site (func/var/const/alias/class/enum),
// as opposed to a usage site, which may be fully qualified (names.go).
func (p *Parser) parseBareName() (ast.Symbol, *ParseError) {
	tok, err := p.expect(lexer.IDENT, "name")
	if err != nil {
		return ast.Symbol{}, err
	}
	return ast.NewSymbol(tok.Literal), nil
}

func (p *Parser) parseFunc() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []ast.Param
	if !p.at(lexer.RPAREN) {
		for {
			pname, err := p.parseBareName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON, "':'"); err != nil {
				return nil, err
			}
			ty, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Name: pname, Ty: ty})
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	var ret ast.Type
	if p.at(lexer.COLON) {
		p.advance()
		r, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ret = r
	}
	body, err := p.parseSentenceList(lexer.END)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.FUNC, "'func'"); err != nil {
		return nil, err
	}
	return &ast.Func{Name: name, Params: params, Ret: ret, Body: body}, nil
}

func (p *Parser) parseVar() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.at(lexer.ASSIGN) {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		init = e
	}
	return &ast.Var{Name: name, Ty: ty, Init: init}, nil
}

func (p *Parser) parseConst() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN, "'::'"); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Const{Name: name, Ty: ty, Init: init}, nil
}

func (p *Parser) parseAlias() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Alias{Name: name, Ty: ty}, nil
}

func (p *Parser) parseClass() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}
	var parent *ast.Symbol
	if p.at(lexer.COLON) {
		p.advance()
		pn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		parent = &pn
	}

	var members []ast.ClassMember
	for !p.at(lexer.END) && !p.at(lexer.EOF) {
		vis := ast.VisibilityPublic
		switch p.cur().Type {
		case lexer.PLUS:
			vis = ast.VisibilityProtected
			p.advance()
		case lexer.MINUS:
			vis = ast.VisibilityPrivate
			p.advance()
		}
		override := false
		if p.at(lexer.STAR) {
			override = true
			p.advance()
		}
		member, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		members = append(members, ast.ClassMember{Member: member, Visibility: vis, Override: override})
	}

	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.CLASS, "'class'"); err != nil {
		return nil, err
	}
	return &ast.Class{Name: name, Parent: parent, Members: members}, nil
}

// parseSignedInt parses the literal-integer form used by an explicit
// enum value (§4.5): enum values are plain ints, never general
// expressions, matching this parser's non-evaluation stance (§1).
func (p *Parser) parseSignedInt() (int64, *ParseError) {
	neg := false
	if p.at(lexer.MINUS) {
		neg = true
		p.advance()
	} else if p.at(lexer.PLUS) {
		p.advance()
	}
	tok, err := p.expect(lexer.INT, "integer literal")
	if err != nil {
		return 0, err
	}
	v := tok.NumValue
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) parseEnum() (ast.Stmt, *ParseError) {
	p.advance()
	name, err := p.parseBareName()
	if err != nil {
		return nil, err
	}

	var members []ast.EnumMember
	counter := int64(0)
	for p.at(lexer.IDENT) {
		memberName, err := p.parseBareName()
		if err != nil {
			return nil, err
		}
		var value int64
		if p.at(lexer.ASSIGN) {
			p.advance()
			v, err := p.parseSignedInt()
			if err != nil {
				return nil, err
			}
			value = v
			counter = v + 1
		} else {
			value = counter
			counter++
		}
		members = append(members, ast.EnumMember{Name: memberName, Value: value})
	}
	if len(members) == 0 {
		return nil, p.fail("at least one enum member")
	}

	if _, err := p.expect(lexer.END, "'end'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ENUM, "'enum'"); err != nil {
		return nil, err
	}
	return &ast.Enum{Name: name, Members: members}, nil
}
