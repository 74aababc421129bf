package calc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Errors wrapped by EvalError.
var (
	// ErrDivisionByZero is the cause of division or remainder by zero, and of
	// zero raised to a negative power.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is the cause of an operation that is undefined in the reals,
	// like the square root of a negative number.
	ErrDomain = errors.New("outside domain")
	// ErrOverflow is the cause of a result too large to represent.
	ErrOverflow = errors.New("result out of range")
	// ErrInternal indicates a malformed expression tree. It should never
	// happen for an Expr returned by Parse.
	ErrInternal = errors.New("internal error")
)

// EvalError is an error evaluating a parsed expression. It unwraps to one of
// ErrDivisionByZero, ErrDomain, ErrOverflow, or ErrInternal.
type EvalError struct {
	// Op is the operator or function name that failed.
	Op string
	// X is the argument outside the domain of Op, for domain errors.
	X float64
	// Reason describes a domain error.
	Reason string
	// Err is the class of the error.
	Err error
}

func (err *EvalError) Error() string {
	if err.Reason == "" {
		return err.Op + ": " + err.Err.Error()
	}
	return err.Op + ": " + err.Reason + " (" + strconv.FormatFloat(err.X, 'g', -1, 64) + ")"
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// Eval computes the value of the expression. An Expr not created by Parse
// evaluates to an error wrapping ErrInternal.
func (e *Expr) Eval() (float64, error) {
	if e == nil || e.n == nil {
		return 0, &EvalError{Op: "eval", Err: ErrInternal}
	}
	return e.n.eval()
}

// eval computes the node's value. Every intermediate value is finite.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		if math.IsInf(n.num, 0) {
			return 0, &EvalError{Op: n.name, Err: ErrOverflow}
		}
		return n.num, nil
	case nodeConst:
		if n.ent == nil || n.ent.IsFunc() {
			return 0, &EvalError{Op: n.name, Err: ErrInternal}
		}
		return n.ent.Value, nil
	case nodeCall, nodeFact:
		if n.ent == nil || !n.ent.IsFunc() {
			return 0, &EvalError{Op: n.name, Err: ErrInternal}
		}
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return call(n.ent, x)
	case nodeNeg:
		x, err := n.left.eval()
		return -x, err
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return arith(n.kind, l, r)
	default:
		return 0, &EvalError{Op: n.kind.String(), Err: ErrInternal}
	}
}

// call applies a function entry to x.
func call(e *Entry, x float64) (float64, error) {
	if e.Domain != nil && !e.Domain(x) {
		return 0, &EvalError{Op: e.Name, X: x, Reason: e.Reason, Err: ErrDomain}
	}
	return checked(e.Name, x, e.F(x))
}

// arith applies a binary operator.
func arith(op nodeKind, l, r float64) (float64, error) {
	if op < 0 || int(op) >= len(binsym) || binsym[op] == "" {
		return 0, &EvalError{Op: op.String(), Err: ErrInternal}
	}
	sym := strings.TrimSpace(binsym[op])
	var v float64
	switch op {
	case nodeAdd:
		v = l + r
	case nodeSub:
		v = l - r
	case nodeMul:
		v = l * r
	case nodeDiv:
		if r == 0 {
			return 0, &EvalError{Op: sym, Err: ErrDivisionByZero}
		}
		v = l / r
	case nodeMod:
		if r == 0 {
			return 0, &EvalError{Op: sym, Err: ErrDivisionByZero}
		}
		// The result takes the sign of the divisor.
		v = math.Mod(l, r)
		if v != 0 && (v < 0) != (r < 0) {
			v += r
		}
	case nodePow:
		switch {
		case l < 0 && r != math.Trunc(r):
			return 0, &EvalError{Op: sym, X: l, Reason: "negative base with non-integer exponent", Err: ErrDomain}
		case l == 0 && r < 0:
			return 0, &EvalError{Op: sym, Err: ErrDivisionByZero}
		}
		v = math.Pow(l, r)
	}
	return checked(sym, l, v)
}

// checked converts non-finite results of finite operands to errors.
func checked(op string, x, v float64) (float64, error) {
	switch {
	case math.IsInf(v, 0):
		return 0, &EvalError{Op: op, Err: ErrOverflow}
	case math.IsNaN(v):
		return 0, &EvalError{Op: op, X: x, Reason: "undefined result", Err: ErrDomain}
	}
	return v, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
