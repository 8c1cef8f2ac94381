package mirroring

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/testconfig"
)

const synthetic = `# BidiMirroring-14.0.0.txt
# ================================================

0028; 0029 # LEFT PARENTHESIS
0029; 0028 # RIGHT PARENTHESIS
003C; 003E # LESS-THAN SIGN
003E; 003C # GREATER-THAN SIGN
2208; 220B # ELEMENT OF
`

func TestParsePreservesOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	pairs, err := Parse(strings.NewReader(synthetic))
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{
		{"0028", "0029"},
		{"0029", "0028"},
		{"003C", "003E"},
		{"003E", "003C"},
		{"2208", "220B"},
	}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
}

// Symmetric pairs collapse to the first-encountered direction.
func TestDedupKeepsFirstDirection(t *testing.T) {
	pairs := []Pair{{"0028", "0029"}, {"0029", "0028"}}
	kept := Dedup(pairs)
	want := []Pair{{"0028", "0029"}}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("dedup mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupKeepsAsymmetricPairs(t *testing.T) {
	// 2208/220B appears in one direction only and must survive even when
	// listed after its partner's unrelated entries.
	pairs, err := Parse(strings.NewReader(synthetic))
	if err != nil {
		t.Fatal(err)
	}
	kept := Dedup(pairs)
	want := []Pair{
		{"0028", "0029"},
		{"003C", "003E"},
		{"2208", "220B"},
	}
	if diff := cmp.Diff(want, kept); diff != "" {
		t.Errorf("dedup mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTupleLiterals(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, []Pair{{"0028", "0029"}}); err != nil {
		t.Fatal(err)
	}
	want := "('\\u{0028}', '\\u{0029}'),\n"
	if sb.String() != want {
		t.Errorf("expected %q, got %q", want, sb.String())
	}
}

func TestParseRejectsRanges(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	_, err := Parse(strings.NewReader("0028..0029; 0030\n"))
	if err == nil {
		t.Error("expected an error for a code point range")
	}
}
