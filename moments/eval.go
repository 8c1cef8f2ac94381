package moments

// Float evaluation of derived formulas and a small quadrature rule, used to
// cross-check the symbolic derivation against direct numeric integration.

// Eval evaluates the program at a float assignment of the control
// coordinates and returns one value per expression, in program order.
func (prog Program) Eval(vals [NumVars]float64) []float64 {
	temps := make([]float64, len(prog.Temps))
	value := func(f Factor) float64 {
		if f.Temp {
			return temps[f.ID]
		}
		return vals[f.ID]
	}
	for i, def := range prog.Temps {
		temps[i] = value(def.A) * value(def.B)
	}
	out := make([]float64, len(prog.Exprs))
	for i, e := range prog.Exprs {
		var sum float64
		for _, t := range e.Terms {
			f, _ := t.Coef.Float64()
			for _, fac := range t.Factors {
				f *= value(fac)
			}
			sum += f
		}
		out[i] = sum
	}
	return out
}

// 8-node Gauss–Legendre rule on [-1,1]: (weight, node) pairs. Exact for
// polynomials up to degree 15; the moment integrands have degree 8.
var gaussLegendre8 = [8][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// QuadUnit integrates f over [0,1] with the 8-node Gauss–Legendre rule.
func QuadUnit(f func(float64) float64) float64 {
	var sum float64
	for _, wx := range gaussLegendre8 {
		w, x := wx[0], wx[1]
		sum += 0.5 * w * f(0.5+0.5*x)
	}
	return sum
}
