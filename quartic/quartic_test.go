package quartic

import (
	"math"
	"strings"
	"testing"
)

func TestCoeffsSmallIntegerRoots(t *testing.T) {
	// (z-1)(z-2)(z-3)(z-4) = z⁴ - 10z³ + 35z² - 50z + 24
	got := Coeffs([4]complex128{1, 2, 3, 4})
	want := [4]float64{-10, 35, -50, 24}
	for i := range want {
		if real(got[i]) != want[i] || imag(got[i]) != 0 {
			t.Errorf("coefficient #%d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoeffsConjugatePairIsReal(t *testing.T) {
	got := Coeffs([4]complex128{1e7, -1e6, complex(1, 1), complex(1, -1)})
	for i, c := range got {
		if math.Abs(imag(c)) > 1e-6*math.Abs(real(c)) {
			t.Errorf("coefficient #%d has a non-negligible imaginary part: %v", i, c)
		}
	}
	// e4 = 1e7 · (-1e6) · (1+i)(1-i) = -2e13
	if real(got[3]) != -2e13 {
		t.Errorf("constant coefficient: got %v, want -2e13", got[3])
	}
}

func TestRunPrintsThreeCases(t *testing.T) {
	var sb strings.Builder
	if err := Run(&sb); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), sb.String())
	}
	for i, prefix := range []string{"case 6: ", "case 7: ", "case 8: "} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
}
