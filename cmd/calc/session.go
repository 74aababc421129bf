package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/keypad"
)

const helpText = `Enter an expression to evaluate it, e.g. 2 + 3*4, sqrt(16), 5!, log(1000).
Operators: + - * / % ^ and postfix !, with parentheses for grouping.
Constants: pi e
Functions: sqrt sin cos tan log ln factorial
Commands:
  help     show this message
  history  list previous calculations
  clear    forget previous calculations
  quit     leave (also exit, q, or Ctrl-D)
`

// session is the state of one interactive or batch run.
type session struct {
	out  io.Writer
	verb string
	echo bool
	hist calc.History
}

// line handles one line of prompt input. It returns false when the session
// should end.
func (s *session) line(text string) bool {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "":
	case "help":
		io.WriteString(s.out, helpText)
	case "history":
		s.history()
	case "clear":
		s.hist.Clear()
		fmt.Fprintln(s.out, "history cleared")
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "bye")
		return false
	default:
		s.eval(text)
	}
	return true
}

func (s *session) history() {
	recs := s.hist.List()
	if len(recs) == 0 {
		fmt.Fprintln(s.out, "no history")
		return
	}
	for i, r := range recs {
		fmt.Fprintf(s.out, "%d. %s = "+s.verb, i+1, r.Expr, r.Result)
	}
}

// eval evaluates text and prints its result or error. It reports whether
// evaluation succeeded.
func (s *session) eval(text string) bool {
	a, err := calc.ParseString(text)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	if s.echo {
		fmt.Fprintf(s.out, "%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	fmt.Fprintf(s.out, "= "+s.verb, r)
	s.hist.Append(calc.Record{Expr: text, Result: r})
	return true
}

// batch evaluates each of srcs and returns the exit status.
func (s *session) batch(srcs []string) int {
	status := 0
	for _, src := range srcs {
		if !s.eval(strings.TrimSpace(src)) {
			status = 1
		}
	}
	return status
}

// runKeys presses each space-separated key on a fresh keypad and prints the
// display. With echo, the display is printed after every key. It returns 1
// if a key is unknown or the pad ends in the error state.
func runKeys(out io.Writer, keys string, echo bool) int {
	p := keypad.New(nil)
	for _, k := range strings.Fields(keys) {
		for _, r := range k {
			if err := p.Press(r); err != nil {
				fmt.Fprintf(out, "error: %v %q\n", err, r)
				return 1
			}
			if echo {
				fmt.Fprintf(out, "%c -> %s\n", r, p.Display())
			}
		}
	}
	if e := p.Expr(); e != "" {
		fmt.Fprintln(out, e)
	}
	fmt.Fprintln(out, p.Display())
	if p.State() == keypad.Error {
		return 1
	}
	return 0
}
