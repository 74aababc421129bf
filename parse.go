package calc

import (
	"io"
	"strings"
)

// Expr = num | const | Call | Fact | Neg | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Fact = Expr '!'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr
//
// From loosest to tightest: Add and Sub; Mul, Div, and Mod; Neg; Pow, which is
// right-associative; Fact. The operand of Neg cannot itself begin with a sign.

// Expr is a parsed expression. Every name in an Expr has been resolved, so
// evaluating it can fail only for arithmetic reasons.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser walks a token list produced by tokenize.
type parser struct {
	toks []lexToken
	k    int
}

// next returns the current token and advances past it. The final EOF token is
// returned indefinitely.
func (p *parser) next() lexToken {
	tok := p.toks[p.k]
	if p.k < len(p.toks)-1 {
		p.k++
	}
	return tok
}

// peek returns the current token without advancing.
func (p *parser) peek() lexToken {
	return p.toks[p.k]
}

// Parse parses an expression from src, which is read to EOF.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := p.next(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return nil, &TrailingError{Col: tok.pos, Text: tok.text}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses operands joined by binary operators that bind more tightly
// than until. It leaves the first token that does not continue the term
// unconsumed.
func (p *parser) parseterm(until operator) (*node, error) {
	n, err := p.parselhs(until)
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp {
			// Any other token ends the term. Callers decide whether it is
			// valid there.
			return n, nil
		}
		prec := binop(tok.text)
		if prec.op == nodeNone {
			return nil, &TokenError{Col: tok.pos, Text: tok.text}
		}
		if !prec.moreBinding(until) {
			return n, nil
		}
		p.next()
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: prec.op, left: n, right: rhs}
	}
}

// parselhs parses a single operand: a number, name, call, parenthesized
// expression, or unary operator applied to a term, followed by any number of
// postfix factorials.
func (p *parser) parselhs(until operator) (*node, error) {
	tok := p.next()
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, name: tok.text, num: tok.val}
	case tokenIdent:
		var err error
		n, err = p.parseident(tok)
		if err != nil {
			return nil, err
		}
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &TokenError{Col: tok.pos, Text: tok.text}
		}
		// One sign per operand: --1 and 2^--2 are errors, 1--1 is not.
		if next := p.peek(); next.kind == tokenOp {
			return nil, &TokenError{Col: next.pos, Text: next.text}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		// The operand has already taken any factorials: -3! is -(3!).
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		rhs, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		if err := p.close(tok); err != nil {
			return nil, err
		}
		n = rhs
	case tokenClose, tokenBang, tokenEOF:
		return nil, &TokenError{Col: tok.pos, Text: tok.text}
	default:
		panic("calc: unknown token: " + tok.String())
	}
	for p.peek().kind == tokenBang {
		p.next()
		n = &node{kind: nodeFact, name: factEntry.Name, ent: factEntry, left: n}
	}
	return n, nil
}

// parseident parses a constant or a function call. Names are resolved here so
// that unknown names are parse errors.
func (p *parser) parseident(tok lexToken) (*node, error) {
	e := globalfuncs[tok.text]
	if e == nil {
		return nil, &NameError{Col: tok.pos, Name: tok.text}
	}
	if !e.IsFunc() {
		if open := p.peek(); open.kind == tokenOpen {
			return nil, &CallError{Col: open.pos, Func: tok.text, Len: 1}
		}
		return &node{kind: nodeConst, name: tok.text, ent: e}, nil
	}
	open := p.next()
	if open.kind != tokenOpen {
		return nil, &CallError{Col: open.pos, Func: tok.text, Len: 0}
	}
	arg, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if err := p.close(open); err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, name: tok.text, ent: e, left: arg}, nil
}

// close consumes the bracket closing open.
func (p *parser) close(open lexToken) error {
	end := p.next()
	switch end.kind {
	case tokenClose:
		return nil
	case tokenEOF:
		return &BracketError{Col: end.pos, Left: open.text}
	default:
		if p.unbalanced() {
			// (2 3 is missing a bracket more than it has an extra term.
			eof := p.toks[len(p.toks)-1]
			return &BracketError{Col: eof.pos, Left: open.text}
		}
		return &TokenError{Col: end.pos, Text: end.text}
	}
}

// unbalanced returns whether the input has more open brackets than close
// brackets.
func (p *parser) unbalanced() bool {
	depth := 0
	for _, tok := range p.toks {
		switch tok.kind {
		case tokenOpen:
			depth++
		case tokenClose:
			depth--
		}
	}
	return depth > 0
}

// String creates a string representation of the parsed expression, with
// every term parenthesized.
func (e *Expr) String() string {
	if e == nil || e.n == nil {
		return "<nil>"
	}
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*", "×":
		return operator{5, false, nodeMul}
	case "/", "÷":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
