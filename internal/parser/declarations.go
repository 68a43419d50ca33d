package parser

import (
	"github.com/eap-lang/eap/internal/ast"
	"github.com/eap-lang/eap/pkg/ident"
	"github.com/eap-lang/eap/pkg/token"
)

// parseConstantsBlock parses CONSTANTS name = expr; name = expr; ...
// stopping at DATA, FUNCTION, PROCEDURE or BEGIN.
func (p *Parser) parseConstantsBlock() ([]*ast.ConstantDecl, error) {
	if _, err := p.expect(token.CONSTANTS); err != nil {
		return nil, err
	}
	p.skipSemicolons()

	var decls []*ast.ConstantDecl
	for p.curIs(token.IDENT) {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQ); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		p.skipSemicolons()
		decls = append(decls, &ast.ConstantDecl{Token: nameTok, Name: nameTok.Literal, Value: value})
	}
	return decls, nil
}

// parseDataBlock parses DATA followed by one or more comma-separated
// variable declarations sharing a type, stopping at FUNCTION, PROCEDURE or
// BEGIN.
func (p *Parser) parseDataBlock() ([]*ast.VariableDecl, error) {
	if _, err := p.expect(token.DATA); err != nil {
		return nil, err
	}
	p.skipSemicolons()
	return p.parseVariableDeclList()
}

// parseVariableDeclList parses zero or more "name, name, ... : type;"
// groups until the next token cannot start one.
func (p *Parser) parseVariableDeclList() ([]*ast.VariableDecl, error) {
	var decls []*ast.VariableDecl
	for p.curIs(token.IDENT) {
		firstTok := p.cur()
		names, err := p.parseNameList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.skipSemicolons()
		decls = append(decls, &ast.VariableDecl{Token: firstTok, Names: names, Type: typ})
	}
	return decls, nil
}

// parseNameList parses one or more comma-separated identifiers.
func (p *Parser) parseNameList() ([]string, error) {
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	names := []string{first.Literal}
	for p.curIs(token.COMMA) {
		p.advance()
		next, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, next.Literal)
	}
	return names, nil
}

// parseType parses a scalar type name or an ARRAY [d1, d2, ...] OF scalar.
// Array-of-array is rejected here (§4.2): the base must be scalar.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	if p.curIs(token.ARRAY) {
		return p.parseArrayType()
	}
	return p.parseScalarType()
}

func (p *Parser) parseScalarType() (*ast.ScalarType, error) {
	tok := p.cur()
	name, ok := scalarTypeName(tok.Type)
	if !ok {
		return nil, p.unexpected(token.INTEGER_TYPE)
	}
	p.advance()
	return &ast.ScalarType{Token: tok, Name: name}, nil
}

func scalarTypeName(t token.Type) (string, bool) {
	switch t {
	case token.INTEGER_TYPE:
		return "INTEGER", true
	case token.REAL_TYPE:
		return "REAL", true
	case token.BOOLEAN_TYPE:
		return "BOOLEAN", true
	case token.CHAR_TYPE:
		return "CHAR", true
	case token.STRING_TYPE:
		return "STRING", true
	default:
		return "", false
	}
}

func (p *Parser) parseArrayType() (*ast.ArrayType, error) {
	arrTok, err := p.expect(token.ARRAY)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}

	var dims []ast.ArrayDimension
	for {
		lower, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RANGE); err != nil {
			return nil, err
		}
		upper, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		dims = append(dims, ast.ArrayDimension{Lower: lower, Upper: upper})
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OF); err != nil {
		return nil, err
	}
	base, err := p.parseScalarType()
	if err != nil {
		return nil, err
	}
	return &ast.ArrayType{Token: arrTok, Base: base, Dimensions: dims}, nil
}

// skipInformalParamList discards the optional "(name, name, ...)" that may
// follow a subroutine's name on its signature line; only the INTERFACE
// block's INPUT/OUTPUT sections are authoritative (§4.2).
func (p *Parser) skipInformalParamList() {
	if !p.curIs(token.LPAREN) {
		return
	}
	depth := 0
	for {
		switch p.cur().Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		case token.EOF:
			return
		}
		p.advance()
	}
}

// parseFunctionDecl parses FUNCTION name(...): type ; INTERFACE ...
// [CONSTANTS ...] [DATA ...] BEGIN ... END_FUNCTION.
func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	fnTok, err := p.expect(token.FUNCTION)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.skipInformalParamList()
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSemicolons()

	params, err := p.parseInterfaceBlock(nameTok.Literal)
	if err != nil {
		return nil, err
	}

	consts, vars, err := p.parseSubroutineDecls()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_FUNCTION)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_FUNCTION); err != nil {
		return nil, err
	}
	p.skipSemicolons()

	return &ast.FunctionDecl{
		Token:      fnTok,
		Name:       nameTok.Literal,
		ReturnType: returnType,
		Parameters: params,
		Constants:  consts,
		Locals:     vars,
		Body:       body,
	}, nil
}

// parseProcedureDecl parses PROCEDURE name(...); INTERFACE ... [CONSTANTS
// ...] [DATA ...] BEGIN ... END_PROCEDURE.
func (p *Parser) parseProcedureDecl() (*ast.ProcedureDecl, error) {
	procTok, err := p.expect(token.PROCEDURE)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.skipInformalParamList()
	p.skipSemicolons()

	params, err := p.parseInterfaceBlock("")
	if err != nil {
		return nil, err
	}

	consts, vars, err := p.parseSubroutineDecls()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.BEGIN); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntil(token.END_PROCEDURE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.END_PROCEDURE); err != nil {
		return nil, err
	}
	p.skipSemicolons()

	return &ast.ProcedureDecl{
		Token:      procTok,
		Name:       nameTok.Literal,
		Parameters: params,
		Constants:  consts,
		Locals:     vars,
		Body:       body,
	}, nil
}

// parseSubroutineDecls parses the optional CONSTANTS and DATA blocks that
// may precede a subroutine's BEGIN.
func (p *Parser) parseSubroutineDecls() ([]*ast.ConstantDecl, []*ast.VariableDecl, error) {
	var consts []*ast.ConstantDecl
	var vars []*ast.VariableDecl
	var err error

	if p.curIs(token.CONSTANTS) {
		consts, err = p.parseConstantsBlock()
		if err != nil {
			return nil, nil, err
		}
	}
	if p.curIs(token.DATA) {
		vars, err = p.parseDataBlock()
		if err != nil {
			return nil, nil, err
		}
	}
	return consts, vars, nil
}

// parseInterfaceBlock parses the optional INTERFACE section: INPUT
// parameters (by value) then OUTPUT parameters (by reference). A name
// appearing in both becomes a single by-reference parameter (§4.2).
// ownName is the enclosing function's name; an OUTPUT parameter matching
// it names the return variable and is dropped. ownName is empty for
// procedures.
func (p *Parser) parseInterfaceBlock(ownName string) ([]*ast.Parameter, error) {
	if !p.curIs(token.INTERFACE) {
		return nil, nil
	}
	p.advance()
	p.skipSemicolons()

	var ordered []*ast.Parameter
	byName := make(map[string]*ast.Parameter)

	addGroup := func(byRef bool) error {
		group, err := p.parseParamGroup()
		if err != nil {
			return err
		}
		for _, decl := range group {
			for _, name := range decl.Names {
				if existing, ok := byName[ident.Normalize(name)]; ok {
					existing.ByRef = true
					continue
				}
				param := &ast.Parameter{Token: decl.Token, Name: name, Type: decl.Type, ByRef: byRef}
				byName[ident.Normalize(name)] = param
				ordered = append(ordered, param)
			}
		}
		return nil
	}

	if p.curIs(token.INPUT) {
		p.advance()
		if err := addGroup(false); err != nil {
			return nil, err
		}
	}
	if p.curIs(token.OUTPUT) {
		p.advance()
		if err := addGroup(true); err != nil {
			return nil, err
		}
	}

	if ownName == "" {
		return ordered, nil
	}

	result := ordered[:0]
	for _, param := range ordered {
		if ident.Equal(param.Name, ownName) {
			continue
		}
		result = append(result, param)
	}
	return result, nil
}

// parseParamGroup parses one or more "name, name, ... : type;" groups,
// reusing the DATA-block grammar, stopping at OUTPUT/CONSTANTS/DATA/BEGIN.
func (p *Parser) parseParamGroup() ([]*ast.VariableDecl, error) {
	return p.parseVariableDeclList()
}
