package calc

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1+2*3")
	f.Add("1×2")
	f.Add("sqrt(pi)!!")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := ParseString(s)
		if err != nil {
			return
		}
		b, err := ParseString(a.String())
		if err != nil {
			t.Fatalf("%q -> %q failed to parse: %v", s, a, err)
		}
		if d, e := a.n.diff(b.n); d != nil || e != nil {
			t.Errorf("%q -> %q changed the tree at %v vs %v", s, a, d, e)
		}
	})
}
