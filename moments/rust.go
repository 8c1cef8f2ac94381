package moments

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// WriteRust renders a CSE program as a Rust function fragment: one
// let-binding per temporary and per expression, followed by a result
// tuple. The fragment is meant to be pasted into a curve library, not to
// compile standalone.
func WriteRust(w io.Writer, prog Program) error {
	params := make([]string, 0, NumVars-1)
	for v := VarX1; v < NumVars; v++ {
		params = append(params, VarName(v)+": f64")
	}
	if _, err := fmt.Fprintf(w, "fn moment_integrals(%s) -> (f64, f64, f64) {\n",
		strings.Join(params, ", ")); err != nil {
		return err
	}
	for i, def := range prog.Temps {
		if _, err := fmt.Fprintf(w, "    let r%d = %s*%s;\n",
			i, factorName(def.A), factorName(def.B)); err != nil {
			return err
		}
	}
	names := make([]string, 0, len(prog.Exprs))
	for _, e := range prog.Exprs {
		if _, err := fmt.Fprintf(w, "    let %s = %s;\n", e.Name, rustSum(e.Terms)); err != nil {
			return err
		}
		names = append(names, e.Name)
	}
	_, err := fmt.Fprintf(w, "    (%s)\n}\n", strings.Join(names, ", "))
	return err
}

func rustSum(terms []Term) string {
	if len(terms) == 0 {
		return "0.0"
	}
	var sb strings.Builder
	for i, t := range terms {
		coef := t.Coef
		negative := coef.Sign() < 0
		if i == 0 {
			if negative {
				sb.WriteString("-")
			}
		} else {
			if negative {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(rustTerm(t))
	}
	return sb.String()
}

func rustTerm(t Term) string {
	abs := new(absRat).set(t.Coef)
	factors := make([]string, 0, len(t.Factors)+1)
	if !abs.isOne() || len(t.Factors) == 0 {
		factors = append(factors, abs.rust())
	}
	for _, f := range t.Factors {
		factors = append(factors, factorName(f))
	}
	return strings.Join(factors, "*")
}

// absRat formats the magnitude of a rational coefficient as a Rust float
// expression; the sign is handled by the sum printer.
type absRat struct {
	r big.Rat
}

func (a *absRat) set(c *big.Rat) *absRat {
	a.r.Abs(c)
	return a
}

func (a *absRat) isOne() bool {
	return a.r.Num().IsInt64() && a.r.Num().Int64() == 1 && a.r.IsInt()
}

func (a *absRat) rust() string {
	if a.r.IsInt() {
		return a.r.Num().String() + ".0"
	}
	return a.r.Num().String() + ".0/" + a.r.Denom().String() + ".0"
}
