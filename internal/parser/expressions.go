package parser

import (
	"fmt"
	"strconv"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/pkg/token"
)

// parseExpression parses an expression at or above the given precedence,
// using Pratt-style precedence climbing over the grammar in §4.2:
// OR, AND, comparison, additive, multiplicative, unary, primary.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.curPrecedence() {
		opTok := p.cur()
		opPrec := p.curPrecedence()
		p.advance()
		right, err := p.parseExpression(opPrec)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Token: opTok, Left: left, Operator: operatorSymbol(opTok.Type), Right: right}
	}

	return left, nil
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur().Type]; ok {
		return prec
	}
	return LOWEST
}

func operatorSymbol(t token.Type) string {
	switch t {
	case token.OR:
		return "OR"
	case token.AND:
		return "AND"
	case token.NOT:
		return "NOT"
	case token.EQ:
		return "="
	case token.NOT_EQ:
		return "<>"
	case token.LT:
		return "<"
	case token.GT:
		return ">"
	case token.LE:
		return "<="
	case token.GE:
		return ">="
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.ASTERISK:
		return "*"
	case token.SLASH:
		return "/"
	case token.PERCENT:
		return "%"
	case token.DIV:
		return "DIV"
	case token.MOD:
		return "MOD"
	default:
		return t.String()
	}
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	switch p.cur().Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.REAL:
		return p.parseRealLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.MINUS, token.NOT:
		return p.parseUnaryExpr()
	case token.LPAREN:
		return p.parseGroupedExpr()
	case token.IDENT:
		return p.parseIdentifierExpr()
	default:
		return nil, &errors.SyntaxError{
			Message: fmt.Sprintf("unexpected token %s %q in expression", p.cur().Type, p.cur().Literal),
			Pos:     p.cur().Pos,
		}
	}
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	tok := p.advance()
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &errors.SyntaxError{Message: fmt.Sprintf("invalid integer literal %q", tok.Literal), Pos: tok.Pos}
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseRealLiteral() (ast.Expression, error) {
	tok := p.advance()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, &errors.SyntaxError{Message: fmt.Sprintf("invalid real literal %q", tok.Literal), Pos: tok.Pos}
	}
	return &ast.RealLiteral{Token: tok, Value: v}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	tok := p.advance()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expression, error) {
	tok := p.advance()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}, nil
}

func (p *Parser) parseUnaryExpr() (ast.Expression, error) {
	opTok := p.advance()
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Token: opTok, Operator: operatorSymbol(opTok.Type), Right: right}, nil
}

func (p *Parser) parseGroupedExpr() (ast.Expression, error) {
	lparen := p.advance()
	inner, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.GroupedExpr{Token: lparen, Inner: inner}, nil
}

// parseIdentifierExpr parses a bare identifier, possibly followed by
// [indices] for an array access or (args) for a call.
func (p *Parser) parseIdentifierExpr() (ast.Expression, error) {
	nameTok := p.advance()
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}

	if p.curIs(token.LBRACKET) {
		return p.parseArrayAccessFrom(name)
	}
	if p.curIs(token.LPAREN) {
		return p.parseCallFrom(name)
	}
	return name, nil
}

func (p *Parser) parseArrayAccessFrom(name *ast.Identifier) (*ast.ArrayAccess, error) {
	lb := p.advance() // '['

	var indices []ast.Expression
	for {
		idx, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		indices = append(indices, idx)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayAccess{Token: lb, Name: name, Indices: indices}, nil
}

// parseCallFrom parses "(args)" following an already-consumed callee name.
// A leading '%' on an argument is a by-reference sigil some EAP source
// texts carry; it is tolerated and discarded (§4.2) since the
// parameter's declared mode governs, not the call site.
func (p *Parser) parseCallFrom(callee *ast.Identifier) (*ast.Call, error) {
	lp := p.advance() // '('

	var args []ast.Expression
	if !p.curIs(token.RPAREN) {
		for {
			if p.curIs(token.PERCENT) {
				p.advance()
			}
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Token: lp, Callee: callee, Arguments: args}, nil
}
