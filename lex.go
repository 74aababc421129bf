package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// val is the value of a tokenNum.
	val float64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenIdent is a function or constant name.
	tokenIdent
	// tokenOp is a prefix or infix operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
	// tokenBang is the postfix factorial operator !.
	tokenBang
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// Operators contains the runes which are considered to be operators, not
// including the postfix !.
const Operators = "+-*/^%×÷"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the number of runes consumed from src.
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// tokenize scans the entire input. On success, the last token is always the
// only tokenEOF.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	l := lex(src)
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is a tokenEOF positioned one past the last rune.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return lexToken{}, err
		}
		tok := lexToken{pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r), r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// scanNum only accepts what ParseFloat accepts.
				return tok, &LexError{Char: r, Col: tok.pos}
			}
			// Out of range literals are ±Inf, which evaluation reports as
			// overflow.
			tok.val = v
			return tok, nil
		case isLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == '!':
			tok.text = "!"
			tok.kind = tokenBang
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			return tok, &LexError{Char: r, Col: tok.pos}
		}
	}
}

// scanNum scans a run of digits containing at most one decimal point. A second
// point ends the number rather than being an error, so "1.2.3" lexes as "1.2"
// followed by ".3".
func (l *lexer) scanNum() error {
	start := l.rune + 1
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		dig = true
		l.buf.WriteRune(r)
	}
	if !dig {
		// A bare point.
		return &LexError{Char: '.', Col: start}
	}
	return nil
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		if !isLetter(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexError indicates a rune that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending rune.
	Char rune
	// Col is the number of runes up to and including Char.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
