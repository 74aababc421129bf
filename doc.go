// Package calc implements a scientific calculator over float64.
//
// Expressions are written the way you would type them into a desk calculator:
// "2+3*4", "sqrt(2)/2", "-2^2", "5!". The grammar is fixed. There are no
// variables, and the only names are the constants and one-argument functions
// listed by Names. "-2^2" is the same as "-(2^2)", "2^3^2" is "2^(3^2)", and
// postfix "!" binds tighter than anything else, so "2^3!" is "2^(3!)".
//
// Parsing resolves every name, so an Expr that parses successfully can fail
// only for arithmetic reasons: division by zero, an argument outside a
// function's domain, or overflow.
package calc
