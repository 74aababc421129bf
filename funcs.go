package calc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Entry is a named constant or function of one real variable.
type Entry struct {
	// Name is the name under which the entry is registered.
	Name string
	// Value is the value of a constant. It is meaningful only if F is nil.
	Value float64
	// F computes the function. Evaluation only calls F with arguments for
	// which Domain returns true.
	F func(x float64) float64
	// Domain reports whether x is a valid argument to F. A nil Domain accepts
	// every real.
	Domain func(x float64) bool
	// Reason describes the domain restriction, e.g. "negative sqrt".
	Reason string
}

// IsFunc returns whether the entry is a function rather than a constant.
func (e *Entry) IsFunc() bool {
	return e.F != nil
}

// bigprec is the working precision of values computed with bigfloat before
// rounding to float64.
const bigprec = 64

// maxFactorial is the largest n such that n! is finite in float64.
const maxFactorial = 170

var globalfuncs = map[string]*Entry{
	"sqrt": {
		F:      math.Sqrt,
		Domain: func(x float64) bool { return x >= 0 },
		Reason: "negative sqrt",
	},
	"sin": {F: math.Sin},
	"cos": {F: math.Cos},
	"tan": {F: math.Tan},
	"log": {
		F:      log10,
		Domain: positive,
		Reason: "non-positive logarithm",
	},
	"ln": {
		F:      ln,
		Domain: positive,
		Reason: "non-positive logarithm",
	},
	"factorial": {
		F:      factorial,
		Domain: natural,
		Reason: "factorial requires non-negative integer",
	},

	// constants
	"pi": {Value: bigconst(bigfloat.Pi)},
	"e": {Value: bigconst(func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(bigprec).SetInt64(1)
		return bigfloat.Exp(out, one)
	})},
}

// factEntry is the entry applied by postfix !.
var factEntry = globalfuncs["factorial"]

func init() {
	for k, v := range globalfuncs {
		v.Name = k
	}
}

// Lookup returns the registry entry for a name.
func Lookup(name string) (Entry, bool) {
	e := globalfuncs[name]
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

// Names returns the names of all constants and functions in sorted order.
func Names() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// bigconst rounds a constant computed by bigfloat to float64.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	z := new(big.Float).SetPrec(bigprec)
	f(z)
	r, _ := z.Float64()
	return r
}

// bigln computes the natural logarithm of a positive finite x into out.
func bigln(out *big.Float, x float64) *big.Float {
	in := new(big.Float).SetPrec(bigprec).SetFloat64(x)
	out.SetPrec(bigprec)
	bigfloat.Log(out, in)
	return out
}

// ln10 is log(10) to bigprec bits.
var ln10 = bigln(new(big.Float), 10)

func ln(x float64) float64 {
	r, _ := bigln(new(big.Float), x).Float64()
	return r
}

// log10 divides at bigprec bits before rounding so that exact powers of ten
// have exact logarithms.
func log10(x float64) float64 {
	out := bigln(new(big.Float), x)
	r, _ := out.Quo(out, ln10).Float64()
	return r
}

// factorial computes x! by iterated multiplication. Results that are too large
// for float64 are +Inf.
func factorial(x float64) float64 {
	if x > maxFactorial {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r
}

func positive(x float64) bool {
	return x > 0
}

func natural(x float64) bool {
	return x >= 0 && x == math.Trunc(x)
}
