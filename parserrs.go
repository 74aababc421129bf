package calc

import "strconv"

// NameError is an error indicating a name that is neither a constant nor a
// function. It implements InputError.
type NameError struct {
	// Col is the position of the name.
	Col int
	// Name is the unknown name.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched parenthesis in the input.
// Exactly one of Left and Right is set. It implements InputError.
type BracketError struct {
	// Col is the position of the token where the mismatch was found.
	Col int
	// Left is the open bracket that was never closed.
	Left string
	// Right is the close bracket that was never opened.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first leftover token.
	Col int
	// Text is the first leftover token.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after end of expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token where an operand or a close
// bracket was required. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token. It is empty if the input ended.
	Text string
}

func (err *TokenError) Error() string {
	if err.Text == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function used without its parenthesized
// argument, or a constant used as a function. It implements InputError.
type CallError struct {
	// Col is the position of the token following the name.
	Col int
	// Func is the name that was called.
	Func string
	// Len is the number of arguments the call tried to imply.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// text that cannot be parsed implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NameError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*LexError)(nil)
)
