package ucd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/testconfig"
)

func TestScanDataItem(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc := NewScanner(input, "")
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	token := sc.Token()
	if token.Type != DataItem {
		t.Fatalf("expected a data item, got %v", token)
	}
	if token.Lo != "000E" || token.Hi != "001F" {
		t.Errorf("expected range to be 000E..001F, is %s..%s", token.Lo, token.Hi)
	}
	if token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", token.Field(1))
	}
	if !strings.HasPrefix(token.Comment, "Cc") {
		t.Errorf("expected comment to be preserved, is %q", token.Comment)
	}
}

func TestScanSingletonKeepsLeadingZeros(t *testing.T) {
	sc := NewScanner(strings.NewReader("0315 ; 230"), "")
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	token := sc.Token()
	if token.Lo != "0315" || token.Hi != "" {
		t.Errorf("expected singleton 0315, got %s..%s", token.Lo, token.Hi)
	}
	if token.IsRange() {
		t.Errorf("singleton reported as range")
	}
}

func TestScanGroupTag(t *testing.T) {
	input := `
# Canonical_Combining_Class=Attached_Above_Right

031B          ; 216 # Mn       COMBINING HORN
`
	sc := NewScanner(strings.NewReader(input), "# Canonical_Combining_Class=")
	var got []TokenType
	var group string
	for sc.Next() {
		got = append(got, sc.Token().Type)
		if sc.Token().Type == GroupTag {
			group = sc.Token().Group
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]TokenType{GroupTag, DataItem}, got); diff != "" {
		t.Errorf("token sequence mismatch (-want +got):\n%s", diff)
	}
	if group != "AttachedAboveRight" {
		t.Errorf("expected normalized group name AttachedAboveRight, got %q", group)
	}
}

func TestScanSkipsBlankAndComments(t *testing.T) {
	input := "\n# plain comment\n\n0028; 0029 # LEFT PARENTHESIS\n"
	sc := NewScanner(strings.NewReader(input), "")
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	if sc.Token().Lo != "0028" || sc.Token().Field(1) != "0029" {
		t.Errorf("unexpected token %v", sc.Token())
	}
	if sc.Next() {
		t.Errorf("expected end of input, got %v", sc.Token())
	}
}

func TestScanMissingSeparatorFails(t *testing.T) {
	sc := NewScanner(strings.NewReader("0315 no separator here"), "")
	if sc.Next() {
		t.Fatalf("expected scan to fail, got %v", sc.Token())
	}
	if sc.Err() == nil {
		t.Error("expected an error for a data line without ';'")
	}
}

func TestEnsureFileUsesCache(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	path := filepath.Join(t.TempDir(), "Cached.txt")
	if err := os.WriteFile(path, []byte("0315 ; 230\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// The URL is unreachable on purpose: a cached file must short-circuit
	// the download.
	if err := EnsureFile(path, "http://invalid.localdomain/Cached.txt"); err != nil {
		t.Errorf("expected cached file to be reused, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0315 ; 230\n" {
		t.Errorf("cached file modified: %q", data)
	}
}
