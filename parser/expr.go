package parser

import (
	"minipy/ast"
	"minipy/object"
	"minipy/token"
)

// expression ::= or
func (p *Parser) parseExpression() ast.Node {
	return p.parseOr()
}

// or ::= and ( "or" and )*
func (p *Parser) parseOr() ast.Node {
	expr := p.parseAnd()
	for p.atKind(token.Or) {
		p.next()
		expr = &ast.Or{Lhs: expr, Rhs: p.parseAnd()}
	}
	return expr
}

// and ::= notExpr ( "and" notExpr )*
func (p *Parser) parseAnd() ast.Node {
	expr := p.parseNot()
	for p.atKind(token.And) {
		p.next()
		expr = &ast.And{Lhs: expr, Rhs: p.parseNot()}
	}
	return expr
}

// notExpr ::= "not" notExpr | comparison
func (p *Parser) parseNot() ast.Node {
	if p.atKind(token.Not) {
		p.next()
		return &ast.Not{Arg: p.parseNot()}
	}
	return p.parseComparison()
}

// comparison ::= term ( ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) term )?
func (p *Parser) parseComparison() ast.Node {
	lhs := p.parseTerm()
	if cmp, ok := p.matchComparisonOp(); ok {
		return &ast.Comparison{Cmp: cmp, Lhs: lhs, Rhs: p.parseTerm()}
	}
	return lhs
}

func (p *Parser) matchComparisonOp() (string, bool) {
	switch p.peek().Kind {
	case token.Eq:
		p.next()
		return "==", true
	case token.NotEq:
		p.next()
		return "!=", true
	case token.LessOrEq:
		p.next()
		return "<=", true
	case token.GreaterOrEq:
		p.next()
		return ">=", true
	case token.Char:
		switch p.peek().Ch {
		case '<':
			p.next()
			return "<", true
		case '>':
			p.next()
			return ">", true
		}
	}
	return "", false
}

// term ::= factor ( ( "+" | "-" ) factor )*
func (p *Parser) parseTerm() ast.Node {
	expr := p.parseFactor()
	for p.atChar('+') || p.atChar('-') {
		op := p.next().Ch
		expr = &ast.Arithmetic{Op: op, Lhs: expr, Rhs: p.parseFactor()}
	}
	return expr
}

// factor ::= postfix ( ( "*" | "/" ) postfix )*
func (p *Parser) parseFactor() ast.Node {
	expr := p.parsePostfix()
	for p.atChar('*') || p.atChar('/') {
		op := p.next().Ch
		expr = &ast.Arithmetic{Op: op, Lhs: expr, Rhs: p.parsePostfix()}
	}
	return expr
}

// postfix ::= "str" "(" expr ")"
//
//	| primary ( "." Id ( "(" args ")" )? | "(" args ")" )*
//
// A pure run of dotted identifiers with no intervening call collects into
// a single VariableValue's Path. The first call — on a bare name (a
// constructor) or on a dotted prefix (a method call) — breaks out of
// that into a tree of NewInstance/MethodCall/FieldRead nodes, since what
// it is called or read on is no longer a simple closure lookup.
//
// "str" is not in the keyword table, so str(expr) is recognized here, at
// the one call site that would otherwise turn it into a NewInstance of a
// class named "str". Used as a plain identifier (no immediately
// following "("), it falls through to the ordinary dotted-chain handling
// like any other name.
func (p *Parser) parsePostfix() ast.Node {
	if !p.atKind(token.Id) {
		return p.parsePrimary()
	}

	nameTok := p.next()
	if nameTok.Text == "str" && p.atChar('(') {
		args := p.parseCallArgs()
		if len(args) != 1 {
			panic(errf(nameTok, "str() takes exactly one argument, got %d", len(args)))
		}
		return &ast.Stringify{Arg: args[0]}
	}
	return p.continuePostfix([]string{nameTok.Text})
}

func (p *Parser) continuePostfix(path []string) ast.Node {
	var node ast.Node
	flush := func() ast.Node {
		if node != nil {
			return node
		}
		return &ast.VariableValue{Path: append([]string(nil), path...)}
	}

	for {
		switch {
		case p.atChar('.'):
			p.next()
			name := p.expectId()
			if p.atChar('(') {
				obj := flush()
				node = &ast.MethodCall{Object: obj, Name: name, Args: p.parseCallArgs()}
				path = nil
			} else if node == nil {
				path = append(path, name)
			} else {
				node = &ast.FieldRead{Object: node, Field: name}
			}
		case p.atChar('('):
			obj := flush()
			node = &ast.NewInstance{Class: obj, Args: p.parseCallArgs()}
			path = nil
		default:
			return flush()
		}
	}
}

func (p *Parser) parseCallArgs() []ast.Node {
	p.expectChar('(')
	var args []ast.Node
	for !p.atChar(')') {
		args = append(args, p.parseExpression())
		if !p.atChar(')') {
			p.expectChar(',')
		}
	}
	p.expectChar(')')
	return args
}

// primary ::= Number | String | "True" | "False" | "None"
//
//	| "(" expression ")" | postfix-identifier-chain
func (p *Parser) parsePrimary() ast.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		p.next()
		return &ast.Literal{Value: object.Own(object.Number(int32(tok.Int)))}
	case token.String:
		p.next()
		return &ast.Literal{Value: object.Own(object.String(tok.Text))}
	case token.True:
		p.next()
		return &ast.Literal{Value: object.Own(object.Bool(true))}
	case token.False:
		p.next()
		return &ast.Literal{Value: object.Own(object.Bool(false))}
	case token.None:
		p.next()
		return ast.NoneNode{}
	case token.Char:
		if tok.Ch == '(' {
			p.next()
			expr := p.parseExpression()
			p.expectChar(')')
			return expr
		}
	}
	panic(errf(tok, "unexpected token %s, expected an expression", tok))
}
