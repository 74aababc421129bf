// Package keypad models the input line of a push-button calculator.
//
// A Pad accumulates key presses into an expression, evaluates it with package
// calc when = is pressed, and tracks what a display should show. It knows
// nothing about widgets; a front-end forwards button presses to Press and
// renders Display and Expr.
package keypad

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

// State is the state of a Pad.
type State int8

const (
	// Empty is the state with no input. The display shows 0.
	Empty State = iota
	// Accumulating is the state while the user is entering an expression.
	Accumulating
	// Result is the state after a successful evaluation. The display shows
	// the result, which is also the input for further operators.
	Result
	// Error is the state after a failed evaluation.
	Error
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Accumulating:
		return "Accumulating"
	case Result:
		return "Result"
	case Error:
		return "Error"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Keys other than the ones which are inserted into the expression verbatim.
const (
	Clear     = 'C'
	Backspace = '⌫'
	Negate    = '±'
	Root      = '√'
	Equals    = '='
)

// operand contains the keys that begin a new input after a result.
const operand = "0123456789.("

// operator contains the keys that continue from a result or a failed input.
const operator = "+-*/%^)"

// ErrUnknownKey is returned by Press for keys that no button produces.
var ErrUnknownKey = errors.New("keypad: unknown key")

// Messages shown on the display after evaluation errors.
const (
	MsgDivisionByZero = "Cannot divide by zero"
	MsgError          = "Error"
)

// Pad is the input state of a calculator keypad. It is not safe to use a Pad
// concurrently.
type Pad struct {
	state State
	input string
	expr  string
	msg   string
	hist  *calc.History
}

// New creates a Pad. If hist is not nil, each successful = appends a record
// to it.
func New(hist *calc.History) *Pad {
	return &Pad{hist: hist}
}

// State returns the pad's current state.
func (p *Pad) State() State {
	return p.state
}

// Display returns the main display text.
func (p *Pad) Display() string {
	switch p.state {
	case Empty:
		return "0"
	case Error:
		return p.msg
	default:
		return p.input
	}
}

// Expr returns the secondary display line, which shows the last evaluated
// expression.
func (p *Pad) Expr() string {
	return p.expr
}

// Press handles one key press.
func (p *Pad) Press(key rune) error {
	switch {
	case strings.ContainsRune(operand, key):
		if p.state != Accumulating {
			p.input = ""
		}
		p.append(key)
	case strings.ContainsRune(operator, key):
		// After an error, the failed input stays so that it can be repaired.
		if p.state == Result && key == '^' && strings.HasPrefix(p.input, "-") {
			// -4 ^ 2 would otherwise mean -(4^2).
			p.input = "(" + p.input + ")"
		}
		p.append(key)
	case key == Clear:
		*p = Pad{hist: p.hist}
	case key == Backspace:
		p.backspace()
	case key == Negate:
		p.negate()
	case key == Root:
		if p.state == Empty || p.state == Error {
			return nil
		}
		p.eval("sqrt("+p.input+")", "√("+p.input+")")
	case key == Equals:
		if p.state == Empty || p.state == Error {
			return nil
		}
		p.eval(p.input, p.input+" =")
	default:
		return ErrUnknownKey
	}
	return nil
}

func (p *Pad) append(key rune) {
	p.input += string(key)
	p.state = Accumulating
}

func (p *Pad) backspace() {
	switch p.state {
	case Accumulating, Result:
		_, sz := utf8.DecodeLastRuneInString(p.input)
		p.input = p.input[:len(p.input)-sz]
		p.state = Accumulating
		if p.input == "" {
			p.state = Empty
		}
	case Error:
		p.state = Empty
		p.input = ""
	}
}

func (p *Pad) negate() {
	if p.state != Accumulating && p.state != Result {
		return
	}
	if strings.HasPrefix(p.input, "-") {
		p.input = p.input[1:]
	} else {
		p.input = "-" + p.input
	}
	p.state = Accumulating
	if p.input == "" {
		p.state = Empty
	}
}

// eval evaluates src and shows label on the expression line.
func (p *Pad) eval(src, label string) {
	p.expr = label
	r, err := calc.EvalString(src)
	if err != nil {
		p.state = Error
		p.msg = MsgError
		if errors.Is(err, calc.ErrDivisionByZero) {
			p.msg = MsgDivisionByZero
		}
		return
	}
	if p.hist != nil {
		p.hist.Append(calc.Record{Expr: src, Result: r})
	}
	// Plain decimal notation so that the result lexes as a number if the
	// user continues from it.
	p.input = strconv.FormatFloat(r, 'f', -1, 64)
	p.state = Result
}
