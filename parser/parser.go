// Package parser builds the AST types in package ast from the token
// stream package lexer produces, in a recursive-descent style: a flat
// Parser struct walking tokens by peek/next, panic/recover in place of
// threaded error returns, one parse method per grammar production,
// generalized from brace-delimited blocks to the lexer's Indent/Dedent
// tokens.
package parser

import (
	"fmt"

	"minipy/ast"
	"minipy/lexer"
	"minipy/object"
	"minipy/token"
)

// Error is the parser's own fatal error kind, fatal to the embedder. It
// carries the offending line.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

func errf(tok token.Token, format string, args ...any) *Error {
	return &Error{Line: tok.Line, Msg: fmt.Sprintf(format, args...)}
}

// Parser walks the lexer's token stream by peek/next.
type Parser struct {
	lx *lexer.Lexer
}

// New builds a Parser over an already-scanned token stream.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

// Parse tokenizes source in full and parses the resulting stream into a
// root Compound.
func Parse(source string) (prog *ast.Compound, err error) {
	lx, err := lexer.NewFromString(source)
	if err != nil {
		return nil, err
	}
	return New(lx).Parse()
}

// Parse consumes the whole token stream, panicking internally on
// malformed input and recovering that panic into a returned *Error here,
// at the one boundary the rest of this package doesn't have to thread
// error returns through.
func (p *Parser) Parse() (prog *ast.Compound, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*Error); ok {
				err = perr
				return
			}
			panic(r)
		}
	}()
	stmts := p.parseStatements(token.Eof)
	p.expectKind(token.Eof)
	return &ast.Compound{Stmts: stmts}, nil
}

func (p *Parser) peek() token.Token { return p.lx.Peek() }
func (p *Parser) next() token.Token { return p.lx.Next() }

func (p *Parser) atKind(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atChar(c byte) bool {
	tok := p.peek()
	return tok.Kind == token.Char && tok.Ch == c
}

func (p *Parser) skipNewline() {
	if p.atKind(token.Newline) {
		p.next()
	}
}

func (p *Parser) expectKind(k token.Kind) token.Token {
	tok := p.peek()
	if tok.Kind != k {
		panic(errf(tok, "expected %s, got %s", k, tok.Kind))
	}
	return p.next()
}

func (p *Parser) expectChar(c byte) token.Token {
	tok := p.peek()
	if tok.Kind != token.Char || tok.Ch != c {
		panic(errf(tok, "expected '%c', got %s", c, tok))
	}
	return p.next()
}

func (p *Parser) expectId() string {
	return p.expectKind(token.Id).Text
}

// parseStatements parses statements until the stream hits stopAt or Eof,
// consuming each statement's trailing Newline as it goes. Block-shaped
// statements (if/class/def bodies) leave no Newline pending when they
// return, since parseSuite already consumed theirs; skipNewline is then
// simply a no-op for them.
func (p *Parser) parseStatements(stopAt token.Kind) []ast.Node {
	var stmts []ast.Node
	for !p.atKind(stopAt) && !p.atKind(token.Eof) {
		stmts = append(stmts, p.parseStatement())
		p.skipNewline()
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Node {
	switch p.peek().Kind {
	case token.Class:
		return p.parseClassDecl()
	case token.If:
		return p.parseIfStmt()
	case token.Return:
		return p.parseReturnStmt()
	case token.Print:
		return p.parsePrintStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// parseSuite parses the body that follows a ':' — either an indented
// block (Newline Indent statement+ Dedent) or the one-line form
// (`if 1 < 2: print "y" else: print "n"`), a single inline statement
// with no Newline of its own.
func (p *Parser) parseSuite() ast.Node {
	if p.atKind(token.Newline) {
		p.next()
		p.expectKind(token.Indent)
		stmts := p.parseStatements(token.Dedent)
		p.expectKind(token.Dedent)
		return &ast.Compound{Stmts: stmts}
	}
	return p.parseStatement()
}

// classDecl ::= "class" Id ( "(" Id ")" )? ":" NEWLINE INDENT def+ DEDENT
func (p *Parser) parseClassDecl() ast.Node {
	p.expectKind(token.Class)
	name := p.expectId()

	parentName := ""
	if p.atChar('(') {
		p.next()
		parentName = p.expectId()
		p.expectChar(')')
	}
	p.expectChar(':')
	p.expectKind(token.Newline)
	p.expectKind(token.Indent)

	var methods []*object.Method
	for !p.atKind(token.Dedent) && !p.atKind(token.Eof) {
		methods = append(methods, p.parseMethodDecl())
		p.skipNewline()
	}
	p.expectKind(token.Dedent)

	return &ast.ClassDefinition{Name: name, Methods: methods, ParentName: parentName}
}

// methodDecl ::= "def" Id "(" params? ")" ":" suite
func (p *Parser) parseMethodDecl() *object.Method {
	p.expectKind(token.Def)
	name := p.expectId()

	p.expectChar('(')
	var params []string
	for !p.atChar(')') {
		params = append(params, p.expectId())
		if !p.atChar(')') {
			p.expectChar(',')
		}
	}
	p.expectChar(')')
	p.expectChar(':')

	// A leading self is the receiver, which Call binds on its own; it is
	// not one of the method's formal parameters and does not count toward
	// its arity.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	body := p.parseSuite()
	return &object.Method{Name: name, Params: params, Body: &ast.MethodBody{Body: body}}
}

// ifStmt ::= "if" expr ":" suite ( "else" ":" suite )?
func (p *Parser) parseIfStmt() ast.Node {
	p.expectKind(token.If)
	cond := p.parseExpression()
	p.expectChar(':')
	thenBody := p.parseSuite()

	var elseBody ast.Node
	if p.atKind(token.Else) {
		p.next()
		p.expectChar(':')
		elseBody = p.parseSuite()
	}
	return &ast.IfElse{Cond: cond, Then: thenBody, Else: elseBody}
}

// returnStmt ::= "return" expr?
func (p *Parser) parseReturnStmt() ast.Node {
	p.expectKind(token.Return)
	var expr ast.Node = ast.NoneNode{}
	if p.canStartExpr() {
		expr = p.parseExpression()
	}
	return &ast.Return{Expr: expr}
}

// printStmt ::= "print" expr+   (space-separated, no comma)
func (p *Parser) parsePrintStmt() ast.Node {
	p.expectKind(token.Print)
	args := []ast.Node{p.parseExpression()}
	for p.canStartExpr() {
		args = append(args, p.parseExpression())
	}
	return &ast.Print{Args: args}
}

// simpleStmt ::= expr ( "=" expr )?
// A trailing "=" turns the already-parsed left side into an assignment
// target; expr alone is a bare expression statement (a method call for
// its side effect, most commonly).
func (p *Parser) parseSimpleStmt() ast.Node {
	expr := p.parseExpression()
	if !p.atChar('=') {
		return expr
	}
	eqTok := p.next()
	rhs := p.parseExpression()

	switch e := expr.(type) {
	case *ast.VariableValue:
		if len(e.Path) == 1 {
			return &ast.Assignment{Name: e.Path[0], Rhs: rhs}
		}
		obj := &ast.VariableValue{Path: append([]string(nil), e.Path[:len(e.Path)-1]...)}
		return &ast.FieldAssignment{Object: obj, Field: e.Path[len(e.Path)-1], Rhs: rhs}
	case *ast.FieldRead:
		return &ast.FieldAssignment{Object: e.Object, Field: e.Field, Rhs: rhs}
	default:
		panic(errf(eqTok, "invalid assignment target"))
	}
}

// canStartExpr reports whether the current token can begin an
// expression, used to decide where a space-separated print argument list
// or an optional return value ends.
func (p *Parser) canStartExpr() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.Number, token.String, token.Id, token.True, token.False, token.None, token.Not:
		return true
	case token.Char:
		return tok.Ch == '('
	default:
		return false
	}
}
