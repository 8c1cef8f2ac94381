/*
Package quartic is a small numeric experiment around Vieta's formulas.

Given four (possibly complex) roots it computes the coefficients of the
monic quartic having exactly those roots, via the elementary symmetric
functions. Three canned root scenarios — chosen to stress quartic root
solvers with widely spread magnitudes — print the real parts of the
resulting coefficients as test-case lines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package quartic

import (
	"fmt"
	"io"
)

// Scenario is one canned set of sample roots.
type Scenario struct {
	Case  int
	Roots [4]complex128
}

// Scenarios are the three root sets of the experiment. Complex roots come
// in conjugate pairs so the quartic has real coefficients.
var Scenarios = []Scenario{
	{6, [4]complex128{1e7, -1e6, complex(1, 1), complex(1, -1)}},
	{7, [4]complex128{-7, -4, complex(-1e6, 1e5), complex(-1e6, -1e5)}},
	{8, [4]complex128{1e8, 11, complex(1e3, 1), complex(1e3, -1)}},
}

// Coeffs returns the coefficients (a, b, c, d) of
// z⁴ + a·z³ + b·z² + c·z + d with the given roots: the elementary
// symmetric functions with alternating signs.
func Coeffs(roots [4]complex128) [4]complex128 {
	x1, x2, x3, x4 := roots[0], roots[1], roots[2], roots[3]
	e1 := x1 + x2 + x3 + x4
	e2 := x1*x2 + x1*x3 + x1*x4 + x2*x3 + x2*x4 + x3*x4
	e3 := x1*x2*x3 + x1*x2*x4 + x1*x3*x4 + x2*x3*x4
	e4 := x1 * x2 * x3 * x4
	return [4]complex128{-e1, e2, -e3, e4}
}

// Run prints one test-case line per scenario, real parts only.
func Run(w io.Writer) error {
	for _, s := range Scenarios {
		c := Coeffs(s.Roots)
		_, err := fmt.Fprintf(w, "case %d: %g, %g, %g, %g\n",
			s.Case, real(c[0]), real(c[1]), real(c[2]), real(c[3]))
		if err != nil {
			return err
		}
	}
	return nil
}
