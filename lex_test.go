package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", []lexToken{{kind: tokenEOF, pos: 1}}},
		{" \t \r\n ", []lexToken{{kind: tokenEOF, pos: 7}}},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1, val: 9876543210}, {kind: tokenEOF, pos: 11}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1, val: 1.5}, {kind: tokenEOF, pos: 4}}},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1, val: 0.5}, {kind: tokenEOF, pos: 3}}},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1, val: 1}, {kind: tokenEOF, pos: 3}}},
		{"1.2.3", []lexToken{{text: "1.2", kind: tokenNum, pos: 1, val: 1.2}, {text: ".3", kind: tokenNum, pos: 4, val: 0.3}, {kind: tokenEOF, pos: 6}}},
		{"1e5", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "e", kind: tokenIdent, pos: 2}, {text: "5", kind: tokenNum, pos: 3, val: 5}, {kind: tokenEOF, pos: 4}}},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2, val: 1}, {kind: tokenEOF, pos: 3}}},
		// factorial
		{"3!", []lexToken{{text: "3", kind: tokenNum, pos: 1, val: 3}, {text: "!", kind: tokenBang, pos: 2}, {kind: tokenEOF, pos: 3}}},
		{"3!!", []lexToken{{text: "3", kind: tokenNum, pos: 1, val: 3}, {text: "!", kind: tokenBang, pos: 2}, {text: "!", kind: tokenBang, pos: 3}, {kind: tokenEOF, pos: 4}}},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}, {kind: tokenEOF, pos: 2}}},
		{"pi e", []lexToken{{text: "pi", kind: tokenIdent, pos: 1}, {text: "e", kind: tokenIdent, pos: 4}, {kind: tokenEOF, pos: 5}}},
		{"sqrt2", []lexToken{{text: "sqrt", kind: tokenIdent, pos: 1}, {text: "2", kind: tokenNum, pos: 5, val: 2}, {kind: tokenEOF, pos: 6}}},
		{"sqrt(2)", []lexToken{
			{text: "sqrt", kind: tokenIdent, pos: 1},
			{text: "(", kind: tokenOpen, pos: 5},
			{text: "2", kind: tokenNum, pos: 6, val: 2},
			{text: ")", kind: tokenClose, pos: 7},
			{kind: tokenEOF, pos: 8},
		}},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}},
		{"2×3÷4", []lexToken{
			{text: "2", kind: tokenNum, pos: 1, val: 2},
			{text: "×", kind: tokenOp, pos: 2},
			{text: "3", kind: tokenNum, pos: 3, val: 3},
			{text: "÷", kind: tokenOp, pos: 4},
			{text: "4", kind: tokenNum, pos: 5, val: 4},
			{kind: tokenEOF, pos: 6},
		}},
		{"*/^%", []lexToken{
			{text: "*", kind: tokenOp, pos: 1},
			{text: "/", kind: tokenOp, pos: 2},
			{text: "^", kind: tokenOp, pos: 3},
			{text: "%", kind: tokenOp, pos: 4},
			{kind: tokenEOF, pos: 5},
		}},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}, {kind: tokenEOF, pos: 3}}},
	}

	for _, c := range cases {
		toks, err := tokenize(strings.NewReader(c.src))
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, toks)
			continue
		}
		for i, want := range c.tokens {
			if got := toks[i]; got != want {
				t.Errorf("scanning %q: token %d: want %v (%g), got %v (%g)", c.src, i, want, want.val, got, got.val)
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		char rune
		col  int
	}{
		{"$", '$', 1},
		{"2 + $", '$', 5},
		{"$$", '$', 1},
		{".", '.', 1},
		{"1+.", '.', 3},
		{"..5", '.', 1},
		{"π", 'π', 1},
		{"2π", 'π', 2},
		{"a_b", '_', 2},
		{"1 & 2", '&', 3},
		{"3 = 3", '=', 3},
		{"sqrt(4)$", '$', 8},
	}
	for _, c := range cases {
		toks, err := tokenize(strings.NewReader(c.src))
		if toks != nil {
			t.Errorf("scanning %q: got tokens %v with error", c.src, toks)
		}
		var le *LexError
		if !errors.As(err, &le) {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if le.Char != c.char || le.Col != c.col {
			t.Errorf("scanning %q: want %q at %d, got %q at %d", c.src, c.char, c.col, le.Char, le.Col)
		}
		if le.Pos() != le.Col {
			t.Errorf("scanning %q: Pos %d differs from Col %d", c.src, le.Pos(), le.Col)
		}
		if !strings.Contains(le.Error(), string(c.char)) {
			t.Errorf("scanning %q: error %q doesn't mention %q", c.src, le.Error(), c.char)
		}
	}
}

// failScanner is a RuneScanner that returns err once its text is consumed.
type failScanner struct {
	r   *strings.Reader
	err error
}

func (f *failScanner) ReadRune() (rune, int, error) {
	if f.r.Len() == 0 {
		return 0, 0, f.err
	}
	return f.r.ReadRune()
}

func (f *failScanner) UnreadRune() error {
	return f.r.UnreadRune()
}

func TestLexReadError(t *testing.T) {
	bad := errors.New("bad")
	for _, src := range []string{"", "1", "12", "pi", "1+"} {
		toks, err := tokenize(&failScanner{r: strings.NewReader(src), err: bad})
		if !errors.Is(err, bad) {
			t.Errorf("scanning %q: want %v, got %v with %v", src, bad, err, toks)
		}
	}
}

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		if b.op == nodeNone {
			t.Errorf("no binary operator for %c", r)
		}
	}
}
