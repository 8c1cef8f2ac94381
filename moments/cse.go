package moments

import (
	"math/big"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// Factor is one operand of a product: either an input variable or a
// previously extracted temporary.
type Factor struct {
	Temp bool
	ID   int // variable index (VarX1…) or temporary index
}

func factorLess(a, b Factor) bool {
	if a.Temp != b.Temp {
		return !a.Temp // variables order before temporaries
	}
	return a.ID < b.ID
}

// TempDef is the definition of temporary r<i> as the product A·B, where i
// is the definition's position in the program.
type TempDef struct {
	A, B Factor
}

// Term is a coefficient times a product of factors. Factors are kept
// sorted; repeated factors represent powers.
type Term struct {
	Coef    *big.Rat
	Factors []Factor
}

// Expr is a named sum of terms.
type Expr struct {
	Name  string
	Terms []Term
}

// Program is the result of common-subexpression elimination: a list of
// temporary definitions followed by the rewritten expressions.
type Program struct {
	Temps []TempDef
	Exprs []Expr
}

// fromPoly flattens a polynomial in the control coordinates into a term
// list. The curve parameter must already have been integrated out.
func fromPoly(name string, p Poly) Expr {
	terms := make([]Term, 0, p.NumTerms())
	for m, c := range p.terms {
		t := Term{Coef: new(big.Rat).Set(c)}
		for v := VarX1; v < NumVars; v++ {
			for i := int8(0); i < m[v]; i++ {
				t.Factors = append(t.Factors, Factor{ID: v})
			}
		}
		terms = append(terms, t)
	}
	sortTerms(terms)
	return Expr{Name: name, Terms: terms}
}

func sortTerms(terms []Term) {
	slices.SortFunc(terms, func(a, b Term) bool {
		for i := 0; i < len(a.Factors) && i < len(b.Factors); i++ {
			if a.Factors[i] != b.Factors[i] {
				return factorLess(a.Factors[i], b.Factors[i])
			}
		}
		if len(a.Factors) != len(b.Factors) {
			return len(a.Factors) < len(b.Factors)
		}
		return a.Coef.Cmp(b.Coef) < 0
	})
}

type factorPair [2]Factor

// CSE rewrites the expressions by greedily extracting the most frequent
// pairwise product into a numbered temporary, until no product occurs more
// than once. Rewriting only ever shortens terms, so the loop terminates.
func CSE(exprs ...Expr) Program {
	prog := Program{Exprs: exprs}
	for {
		pair, count := mostFrequentPair(prog.Exprs)
		if count < 2 {
			break
		}
		temp := Factor{Temp: true, ID: len(prog.Temps)}
		prog.Temps = append(prog.Temps, TempDef{A: pair[0], B: pair[1]})
		for i := range prog.Exprs {
			for j := range prog.Exprs[i].Terms {
				prog.Exprs[i].Terms[j] = rewriteTerm(prog.Exprs[i].Terms[j], pair, temp)
			}
			sortTerms(prog.Exprs[i].Terms)
		}
		tracing.Debugf("r%d = %s*%s occurs %d times", temp.ID,
			factorName(pair[0]), factorName(pair[1]), count)
	}
	return prog
}

// mostFrequentPair counts, over all terms, how many disjoint times each
// unordered factor pair could be extracted, and returns the winner.
// Ties resolve to the smallest pair so runs are deterministic.
func mostFrequentPair(exprs []Expr) (factorPair, int) {
	counts := make(map[factorPair]int)
	for _, e := range exprs {
		for _, t := range e.Terms {
			countPairs(counts, t.Factors)
		}
	}
	pairs := make([]factorPair, 0, len(counts))
	for p := range counts {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, func(a, b factorPair) bool {
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if a[0] != b[0] {
			return factorLess(a[0], b[0])
		}
		return factorLess(a[1], b[1])
	})
	if len(pairs) == 0 {
		return factorPair{}, 0
	}
	return pairs[0], counts[pairs[0]]
}

func countPairs(counts map[factorPair]int, factors []Factor) {
	// factors is sorted, so equal factors are adjacent; multiplicity of a
	// pair within one term is the number of disjoint applications.
	mult := make(map[Factor]int)
	for _, f := range factors {
		mult[f]++
	}
	seen := make(map[factorPair]bool)
	for i := 0; i < len(factors); i++ {
		for j := i + 1; j < len(factors); j++ {
			p := factorPair{factors[i], factors[j]}
			if seen[p] {
				continue
			}
			seen[p] = true
			if p[0] == p[1] {
				counts[p] += mult[p[0]] / 2
			} else {
				n := mult[p[0]]
				if mult[p[1]] < n {
					n = mult[p[1]]
				}
				counts[p] += n
			}
		}
	}
}

// rewriteTerm replaces as many disjoint occurrences of the pair as the
// term's factors allow by the temporary.
func rewriteTerm(t Term, pair factorPair, temp Factor) Term {
	for {
		i := slices.Index(t.Factors, pair[0])
		if i < 0 {
			return t
		}
		rest := append(append([]Factor{}, t.Factors[:i]...), t.Factors[i+1:]...)
		j := slices.Index(rest, pair[1])
		if j < 0 {
			return t
		}
		rest = append(rest[:j], rest[j+1:]...)
		rest = append(rest, temp)
		slices.SortFunc(rest, factorLess)
		t.Factors = rest
	}
}

func factorName(f Factor) string {
	if f.Temp {
		return "r" + strconv.Itoa(f.ID)
	}
	return VarName(f.ID)
}
