package moments

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// Derivation holds the three derived integrals for a cubic Bézier segment
// with its first control point pinned at the origin, as polynomials in the
// six remaining control coordinates:
//
//	Area = 20 · ∫₀¹ y·x′ dt
//	MomX = 840 · ∫₀¹ x·y·x′ dt
//	MomY = 420 · ∫₀¹ y²·x′ dt
//
// The scale factors clear the rational coefficients produced by the
// integration.
type Derivation struct {
	Area Poly
	MomX Poly
	MomY Poly
}

// curve returns the Bernstein form of one coordinate of the pinned cubic,
// 3·c1·t·(1−t)² + 3·c2·t²·(1−t) + c3·t³.
func curve(c1, c2, c3 int) Poly {
	t := Var(VarT)
	omt := Const(1, 1).Sub(t)
	b1 := t.Mul(omt.Pow(2)).Scale(3, 1)
	b2 := t.Pow(2).Mul(omt).Scale(3, 1)
	b3 := t.Pow(3)
	return Var(c1).Mul(b1).Add(Var(c2).Mul(b2)).Add(Var(c3).Mul(b3))
}

// Derive computes the signed area and the two first-moment integrals
// symbolically.
func Derive() Derivation {
	x := curve(VarX1, VarX2, VarX3)
	y := curve(VarY1, VarY2, VarY3)
	dx := x.Diff(VarT)
	d := Derivation{
		Area: y.Mul(dx).IntegrateUnit(VarT).Scale(20, 1),
		MomX: x.Mul(y).Mul(dx).IntegrateUnit(VarT).Scale(840, 1),
		MomY: y.Pow(2).Mul(dx).IntegrateUnit(VarT).Scale(420, 1),
	}
	tracing.Debugf("area: %d terms, xm: %d terms, ym: %d terms",
		d.Area.NumTerms(), d.MomX.NumTerms(), d.MomY.NumTerms())
	return d
}

// Generate derives the three integrals, shrinks them by common
// subexpression elimination and writes the resulting Rust fragment to w.
func Generate(w io.Writer) error {
	d := Derive()
	prog := CSE(
		fromPoly("a", d.Area),
		fromPoly("x", d.MomX),
		fromPoly("y", d.MomY),
	)
	tracing.Infof("extracted %d common subexpressions", len(prog.Temps))
	return WriteRust(w, prog)
}
