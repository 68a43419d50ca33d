package parser

import (
	"fmt"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/pkg/token"
)

// parseStatementsUntil parses statements until the current token is one of
// terminators (which is not consumed) or EOF.
func (p *Parser) parseStatementsUntil(terminators ...token.Type) ([]ast.Statement, error) {
	p.skipSemicolons()
	var stmts []ast.Statement
	for !p.atAny(terminators...) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipSemicolons()
	}
	return stmts, nil
}

func (p *Parser) atAny(types ...token.Type) bool {
	for _, t := range types {
		if p.curIs(t) {
			return true
		}
	}
	return false
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.REPEAT:
		return p.parseRepeatStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.READ:
		return p.parseReadStatement()
	case token.CALCULATE:
		return p.parseCalculateStatement()
	case token.IDENT:
		return p.parseIdentifierStatement()
	default:
		return nil, &errors.SyntaxError{
			Message: fmt.Sprintf("unexpected token %s %q at start of statement", p.cur().Type, p.cur().Literal),
			Pos:     p.cur().Pos,
		}
	}
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	ifTok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatementsUntil(token.ELSE, token.END_IF)
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Statement
	if p.curIs(token.ELSE) {
		p.advance()
		elseBody, err = p.parseStatementsUntil(token.END_IF)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.END_IF); err != nil {
		return nil, err
	}
	return &ast.If{Token: ifTok, Condition: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	forTok := p.advance()
	varTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TO); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if p.curIs(token.WITH) {
		p.advance()
	}
	var step ast.Expression
	if p.curIs(token.STEP) {
		p.advance()
		step, err = p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
	} else {
		step = &ast.IntegerLiteral{
			Token: token.Token{Type: token.INT, Literal: "1", Pos: forTok.Pos},
			Value: 1,
		}
	}

	if _, err := p.expect(token.REPEAT); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_FOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_FOR); err != nil {
		return nil, err
	}

	return &ast.For{Token: forTok, Variable: varTok.Literal, Start: start, End: end, Step: step, Body: body}, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	whileTok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.REPEAT); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_WHILE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_WHILE); err != nil {
		return nil, err
	}
	return &ast.While{Token: whileTok, Condition: cond, Body: body}, nil
}

// parseRepeatStatement parses REPEAT ... UNTIL cond as a dedicated AST
// node (§9: prefer a distinct node over a While-with-negated-
// condition desugaring, so the body is never textually duplicated).
func (p *Parser) parseRepeatStatement() (ast.Statement, error) {
	repeatTok := p.advance()
	body, err := p.parseStatementsUntil(token.UNTIL)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.UNTIL); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Repeat{Token: repeatTok, Body: body, Condition: cond}, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	printTok := p.advance()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	if !p.curIs(token.RPAREN) {
		for {
			e, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Print{Token: printTok, Expressions: exprs}, nil
}

func (p *Parser) parseReadStatement() (ast.Statement, error) {
	readTok := p.advance()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var targets []ast.Expression
	for {
		t, err := p.parseLValue()
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Read{Token: readTok, Targets: targets}, nil
}

// parseLValue parses an expression and requires it resolve to something
// assignable: an identifier or an array element.
func (p *Parser) parseLValue() (ast.Expression, error) {
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	switch expr.(type) {
	case *ast.Identifier, *ast.ArrayAccess:
		return expr, nil
	default:
		return nil, &errors.SyntaxError{Message: "expected a variable or array element", Pos: expr.Pos()}
	}
}

// parseCalculateStatement parses CALCULATE name(args) — an explicit
// procedure-call statement (§4.2).
func (p *Parser) parseCalculateStatement() (ast.Statement, error) {
	calcTok := p.advance()
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	callee := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
	call, err := p.parseCallFrom(callee)
	if err != nil {
		return nil, err
	}
	call.Token = calcTok
	call.IsStatement = true
	return call, nil
}

// parseIdentifierStatement parses an assignment (optionally to an array
// element) or a bare "name(args)" call in statement position.
func (p *Parser) parseIdentifierStatement() (ast.Statement, error) {
	nameTok := p.advance()
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	var target ast.Expression = name
	if p.curIs(token.LBRACKET) {
		aa, err := p.parseArrayAccessFrom(name)
		if err != nil {
			return nil, err
		}
		target = aa
	} else if p.curIs(token.LPAREN) {
		call, err := p.parseCallFrom(name)
		if err != nil {
			return nil, err
		}
		call.IsStatement = true
		return call, nil
	}

	assignTok, err := p.expect(token.ASSIGN)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: assignTok, Target: target, Value: value}, nil
}
