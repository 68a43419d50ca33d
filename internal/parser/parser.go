// Package parser implements EAP's recursive-descent parser: a materialized
// token vector, one token of lookahead, and Pratt-style expression parsing
// for the operator grammar in §4.2.
//
// Unlike a compiler meant to recover and report many errors, EAP aborts on
// the first syntax error (§7), so every parse method returns
// (node, error) instead of accumulating a diagnostics list.
package parser

import (
	"fmt"

	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/internal/errors"
	"github.com/eap-lang/eap/internal/lexer"
	"github.com/eap-lang/eap/pkg/token"
)

// Precedence levels for the expression grammar (§4.2), lowest first.
const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
)

var precedences = map[token.Type]int{
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.DIV:      PRODUCT,
	token.MOD:      PRODUCT,
}

// Parser holds the token vector and current position. Tokens are
// materialized up front by the lexer (§4.2: "one-token lookahead on a
// materialized token vector").
type Parser struct {
	tokens []token.Token
	pos    int
}

// New materializes src's token stream and returns a Parser positioned at
// its first token. If the lexer reports errors (illegal characters), New
// returns no Parser and the first of them as a SyntaxError.
func New(src string) (*Parser, error) {
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) > 0 {
		first := lexErrs[0]
		return nil, &errors.SyntaxError{Message: first.Message, Pos: first.Pos}
	}
	return &Parser{tokens: toks, pos: 0}, nil
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(t token.Type) bool {
	return p.cur().Type == t
}

// expect advances past the current token if it has type t, otherwise
// returns a syntax error naming what was expected.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	if !p.curIs(t) {
		return token.Token{}, p.unexpected(t)
	}
	return p.advance(), nil
}

func (p *Parser) unexpected(want token.Type) error {
	return &errors.SyntaxError{
		Message: fmt.Sprintf("expected %s, got %s %q", want, p.cur().Type, p.cur().Literal),
		Pos:     p.cur().Pos,
	}
}

// skipSemicolons absorbs zero or more optional trailing semicolons (spec
// §4.2: "trailing semicolons after statements are optional and absorbed").
func (p *Parser) skipSemicolons() {
	for p.curIs(token.SEMICOLON) {
		p.advance()
	}
}

// ParseProgram is the parser's entry point: ALGORITHM name, optional
// CONSTANTS block, optional DATA block, zero or more subroutines, then
// BEGIN ... END.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	algTok, err := p.expect(token.ALGORITHM)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()

	program := &ast.Program{Token: algTok, Name: nameTok.Literal}

	if p.curIs(token.CONSTANTS) {
		consts, err := p.parseConstantsBlock()
		if err != nil {
			return nil, err
		}
		program.Constants = consts
	}

	if p.curIs(token.DATA) {
		vars, err := p.parseDataBlock()
		if err != nil {
			return nil, err
		}
		program.Variables = vars
	}

	for p.curIs(token.FUNCTION) || p.curIs(token.PROCEDURE) {
		if p.curIs(token.FUNCTION) {
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			program.Functions = append(program.Functions, fn)
		} else {
			proc, err := p.parseProcedureDecl()
			if err != nil {
				return nil, err
			}
			program.Procedures = append(program.Procedures, proc)
		}
		p.skipSemicolons()
	}

	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END)
	if err != nil {
		return nil, err
	}
	program.Body = body
	if _, err := p.expect(token.END); err != nil {
		return nil, err
	}
	p.skipSemicolons()
	if !p.curIs(token.EOF) {
		return nil, p.unexpected(token.EOF)
	}

	return program, nil
}
