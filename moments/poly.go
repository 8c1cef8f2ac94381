/*
Package moments derives closed-form area and moment integrals for cubic
Bézier segments.

The derivation is exact symbolic computation: the curve coordinates are
polynomials in the parameter t with the control coordinates as symbolic
variables, the integrands are formed by polynomial arithmetic, and the
definite integral over [0,1] is taken term by term. A common-subexpression
pass then shrinks the resulting formulas, and a printer renders them as a
Rust function fragment for inclusion in a curve library.

The segment's first control point is pinned at the origin, which removes
x0 and y0 from the formulas; callers translate the curve before applying
them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package moments

import (
	"math/big"
	"sort"
	"strings"
)

// Variables of the derivation: the curve parameter and the six free
// control coordinates.
const (
	VarT = iota
	VarX1
	VarX2
	VarX3
	VarY1
	VarY2
	VarY3
	NumVars
)

var varNames = [NumVars]string{"t", "x1", "x2", "x3", "y1", "y2", "y3"}

// VarName returns the source-level name of a variable.
func VarName(v int) string {
	return varNames[v]
}

// monomial is an exponent vector over the variable set. Being an array, it
// is usable as a map key.
type monomial [NumVars]int8

func (m monomial) mul(n monomial) monomial {
	var p monomial
	for i := range m {
		p[i] = m[i] + n[i]
	}
	return p
}

// Poly is a multivariate polynomial with exact rational coefficients.
// All operations are value-style: they leave their operands untouched and
// return fresh polynomials.
type Poly struct {
	terms map[monomial]*big.Rat
}

func newPoly() Poly {
	return Poly{terms: make(map[monomial]*big.Rat)}
}

// addTerm accumulates coef·m into p, dropping the term when it cancels.
func (p Poly) addTerm(m monomial, coef *big.Rat) {
	c, ok := p.terms[m]
	if !ok {
		c = new(big.Rat)
		p.terms[m] = c
	}
	c.Add(c, coef)
	if c.Sign() == 0 {
		delete(p.terms, m)
	}
}

// Const returns the constant polynomial n/d.
func Const(n, d int64) Poly {
	p := newPoly()
	p.addTerm(monomial{}, big.NewRat(n, d))
	return p
}

// Var returns the polynomial consisting of the single variable v.
func Var(v int) Poly {
	p := newPoly()
	var m monomial
	m[v] = 1
	p.addTerm(m, big.NewRat(1, 1))
	return p
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	s := newPoly()
	for m, c := range p.terms {
		s.addTerm(m, c)
	}
	for m, c := range q.terms {
		s.addTerm(m, c)
	}
	return s
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1, 1))
}

// Mul returns p · q.
func (p Poly) Mul(q Poly) Poly {
	prod := newPoly()
	tmp := new(big.Rat)
	for m1, c1 := range p.terms {
		for m2, c2 := range q.terms {
			prod.addTerm(m1.mul(m2), tmp.Mul(c1, c2))
		}
	}
	return prod
}

// Scale returns (n/d) · p.
func (p Poly) Scale(n, d int64) Poly {
	factor := big.NewRat(n, d)
	s := newPoly()
	tmp := new(big.Rat)
	for m, c := range p.terms {
		s.addTerm(m, tmp.Mul(c, factor))
	}
	return s
}

// Pow returns p^k for k ≥ 0.
func (p Poly) Pow(k int) Poly {
	r := Const(1, 1)
	for i := 0; i < k; i++ {
		r = r.Mul(p)
	}
	return r
}

// Diff returns the partial derivative ∂p/∂v.
func (p Poly) Diff(v int) Poly {
	d := newPoly()
	tmp := new(big.Rat)
	for m, c := range p.terms {
		if m[v] == 0 {
			continue
		}
		n := m
		n[v]--
		d.addTerm(n, tmp.Mul(c, big.NewRat(int64(m[v]), 1)))
	}
	return d
}

// IntegrateUnit returns the definite integral of p over v from 0 to 1.
// The lower bound contributes nothing, so each term c·v^e simply becomes
// c/(e+1) with v eliminated.
func (p Poly) IntegrateUnit(v int) Poly {
	s := newPoly()
	tmp := new(big.Rat)
	for m, c := range p.terms {
		n := m
		n[v] = 0
		s.addTerm(n, tmp.Mul(c, big.NewRat(1, int64(m[v])+1)))
	}
	return s
}

// NumTerms returns the number of monomials with nonzero coefficient.
func (p Poly) NumTerms() int {
	return len(p.terms)
}

// Eval evaluates p at a float assignment of all variables.
func (p Poly) Eval(vals [NumVars]float64) float64 {
	var sum float64
	for m, c := range p.terms {
		f, _ := c.Float64()
		for v, e := range m {
			for i := int8(0); i < e; i++ {
				f *= vals[v]
			}
		}
		sum += f
	}
	return sum
}

// String renders the polynomial with terms in a stable order, mostly for
// tracing and test failure messages.
func (p Poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	keys := make([]monomial, 0, len(p.terms))
	for m := range p.terms {
		keys = append(keys, m)
	}
	sort.Slice(keys, func(i, j int) bool { return monomialLess(keys[i], keys[j]) })
	var sb strings.Builder
	for i, m := range keys {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(p.terms[m].RatString())
		for v, e := range m {
			for k := int8(0); k < e; k++ {
				sb.WriteString("*")
				sb.WriteString(varNames[v])
			}
		}
	}
	return sb.String()
}

func monomialLess(a, b monomial) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
