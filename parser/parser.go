package parser

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"jam/ast"
	"jam/lexer"
	"jam/token"
)

// SyntaxError reports a malformed program. The evaluator never sees one.
type SyntaxError struct {
	Line int
	err  error
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.err) }
func (e *SyntaxError) Cause() error  { return e.err }

type BinopPrecList struct {
	ops []token.TokenType
}

func (bpl *BinopPrecList) Contains(tok token.TokenType) bool {
	for _, tokenType := range bpl.ops {
		if tok == tokenType {
			return true
		}
	}

	return false
}

// NOTE: this holds the binops *in order of precedence*, all left associative
var binopPrecs = []BinopPrecList{
	{ops: []token.TokenType{token.OR}},
	{ops: []token.TokenType{token.AND}},
	{ops: []token.TokenType{token.EQUAL, token.NEQ, token.LT, token.GT, token.LTE, token.GTE}},
	{ops: []token.TokenType{token.PLUS, token.MINUS}},
	{ops: []token.TokenType{token.MULT, token.DIV}},
}

var binops = map[token.TokenType]ast.BinOp{
	token.PLUS:  ast.Plus,
	token.MINUS: ast.Minus,
	token.MULT:  ast.Times,
	token.DIV:   ast.Divide,
	token.EQUAL: ast.Equals,
	token.NEQ:   ast.NotEquals,
	token.LT:    ast.LessThan,
	token.GT:    ast.GreaterThan,
	token.LTE:   ast.LessThanEquals,
	token.GTE:   ast.GreaterThanEquals,
	token.AND:   ast.And,
	token.OR:    ast.Or,
}

var unops = map[token.TokenType]ast.UnOp{
	token.PLUS:  ast.UnPlus,
	token.MINUS: ast.UnMinus,
	token.TILDE: ast.Not,
}

type Parser struct {
	l *lexer.Lexer

	curToken token.Token

	// one *ast.Variable per name, so the evaluator can compare by identity
	vars map[string]*ast.Variable
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:    l,
		vars: map[string]*ast.Variable{},
	}

	// read in first token
	p.nextToken()

	return p
}

// Parse parses a whole Jam program.
func Parse(input string) (ast.Expr, error) {
	return New(lexer.New(input)).ParseProgram()
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) expectToken(t token.TokenType) {
	if !p.curTokenIs(t) {
		p.error("expected %v, got %v instead", t, p.curToken)
	}
	p.nextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) error(format string, args ...interface{}) {
	panic(&SyntaxError{Line: p.curToken.Line, err: errors.Errorf(format, args...)})
}

/*
Program ->
	Exp EOF
*/
func (p *Parser) ParseProgram() (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			syntaxErr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			expr, err = nil, syntaxErr
		}
	}()

	expr = p.parseExp()

	if !p.curTokenIs(token.EOF) {
		p.error("failed to consume all tokens; %v remains", p.curToken)
	}

	return expr, nil
}

/*
Exp ->
	'if' Exp 'then' Exp 'else' Exp
	'let' Def+ 'in' Exp
	'map' IdList 'to' Exp
	Term { Binop Term }
*/
func (p *Parser) parseExp() ast.Expr {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIf()
	case token.LET:
		return p.parseLet()
	case token.MAP:
		return p.parseMap()
	}

	return p.parseBinop(0)
}

func (p *Parser) parseIf() ast.Expr {
	p.expectToken(token.IF)
	test := p.parseExp()
	p.expectToken(token.THEN)
	conseq := p.parseExp()
	p.expectToken(token.ELSE)
	alt := p.parseExp()

	return &ast.If{Test: test, Conseq: conseq, Alt: alt}
}

/*
Def ->
	ID ':=' Exp ';'
*/
func (p *Parser) parseLet() ast.Expr {
	p.expectToken(token.LET)

	let := &ast.Let{}
	seen := map[*ast.Variable]bool{}

	for {
		v := p.parseVariable()
		if seen[v] {
			p.error("variable %s is defined twice in the same let", v.Name)
		}
		seen[v] = true

		p.expectToken(token.BIND)
		rhs := p.parseExp()
		p.expectToken(token.SEMICOLON)

		let.Defs = append(let.Defs, &ast.Def{Var: v, Rhs: rhs})

		if p.curTokenIs(token.IN) {
			break
		}
	}

	p.expectToken(token.IN)
	let.Body = p.parseExp()

	return let
}

/*
Map ->
	'map' [ ID { ',' ID } ] 'to' Exp
*/
func (p *Parser) parseMap() ast.Expr {
	p.expectToken(token.MAP)

	m := &ast.Map{}
	seen := map[*ast.Variable]bool{}

	for !p.curTokenIs(token.TO) {
		if len(m.Params) > 0 {
			p.expectToken(token.COMMA)
		}
		v := p.parseVariable()
		if seen[v] {
			p.error("parameter %s appears twice in the same map", v.Name)
		}
		seen[v] = true
		m.Params = append(m.Params, v)
	}

	p.expectToken(token.TO)
	m.Body = p.parseExp()

	return m
}

func (p *Parser) parseBinop(prec int) ast.Expr {
	if prec >= len(binopPrecs) {
		return p.parseTerm()
	}

	left := p.parseBinop(prec + 1)

	for binopPrecs[prec].Contains(p.curToken.Type) {
		op := binops[p.curToken.Type]
		p.nextToken()
		right := p.parseBinop(prec + 1)
		left = &ast.BinOpApp{Op: op, Left: left, Right: right}
	}

	return left
}

/*
Term ->
	Unop Term
	Factor { '(' ExpList ')' }
	'empty' | INT | 'true' | 'false'
*/
func (p *Parser) parseTerm() ast.Expr {
	if op, ok := unops[p.curToken.Type]; ok {
		p.nextToken()
		return &ast.UnOpApp{Op: op, Arg: p.parseTerm()}
	}

	switch p.curToken.Type {
	case token.EMPTY:
		p.nextToken()
		return ast.Empty
	case token.TRUE:
		p.nextToken()
		return ast.TrueConstant
	case token.FALSE:
		p.nextToken()
		return ast.FalseConstant
	case token.INT:
		return p.parseInt()
	}

	expr := p.parseFactor()

	for p.curTokenIs(token.LPAREN) {
		p.nextToken()
		expr = &ast.App{Rator: expr, Args: p.parseExpList()}
	}

	return expr
}

/*
Factor ->
	'(' Exp ')'
	PRIM
	ID
*/
func (p *Parser) parseFactor() ast.Expr {
	switch p.curToken.Type {
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExp()
		p.expectToken(token.RPAREN)
		return expr
	case token.PRIM:
		prim, _ := ast.LookupPrim(p.curToken.Literal)
		p.nextToken()
		return &ast.PrimFun{Prim: prim}
	case token.ID:
		return p.parseVariable()
	}

	p.error("unexpected %v", p.curToken)
	return nil
}

// parseExpList parses the arguments of an application; the '(' has already
// been consumed.
func (p *Parser) parseExpList() []ast.Expr {
	var args []ast.Expr

	for !p.curTokenIs(token.RPAREN) {
		if len(args) > 0 {
			p.expectToken(token.COMMA)
		}
		args = append(args, p.parseExp())
	}
	p.expectToken(token.RPAREN)

	return args
}

func (p *Parser) parseInt() ast.Expr {
	i, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.error("integer literal %s is out of range", p.curToken.Literal)
	}
	p.nextToken()
	return &ast.IntConstant{Value: i}
}

func (p *Parser) parseVariable() *ast.Variable {
	if !p.curTokenIs(token.ID) {
		p.error("expected a variable, got %v instead", p.curToken)
	}

	name := p.curToken.Literal
	v, ok := p.vars[name]
	if !ok {
		v = &ast.Variable{Name: name}
		p.vars[name] = v
	}

	p.nextToken()
	return v
}
