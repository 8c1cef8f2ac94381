/*
Package mirroring generates the bidi mirroring pair table.

The generator reads BidiMirroring.txt from the Unicode Character Database
(downloading it once into the working directory if absent) and prints one
two-character tuple literal per mirroring pair:

    ('\u{0028}', '\u{0029}'),

BidiMirroring.txt lists both directions of each pair — '(' mirrors to ')'
and ')' mirrors to '('. The generator collapses them to one canonical
direction by keeping a pair only if its first code point has not already
appeared as the mirrored value of a kept pair. The first-encountered
direction wins; if the source file ever listed a reverse pair first, the
output would silently pick the other direction.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package mirroring

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/gentables"
	"github.com/npillmayer/gentables/internal/ucd"
)

// Constants of the bidi mirroring dataset.
const (
	// SourceURL is the fixed network location of the reference file.
	SourceURL = "https://www.unicode.org/Public/UNIDATA/BidiMirroring.txt"
	// FileName is the name of the local cache file.
	FileName = "BidiMirroring.txt"
)

// Pair is one mirroring pair, both code points as verbatim hex text.
type Pair struct {
	Before, After string
}

// Parse reads a BidiMirroring-style file into its list of pairs, in file
// order and without deduplication.
func Parse(r io.Reader) ([]Pair, error) {
	sc := ucd.NewScanner(r, "")
	var pairs []Pair
	for sc.Next() {
		token := sc.Token()
		if token.IsRange() {
			return nil, fmt.Errorf("line %d: unexpected code point range %s..%s",
				token.LineNo, token.Lo, token.Hi)
		}
		after := token.Field(1)
		if after == "" {
			return nil, fmt.Errorf("line %d: missing mirrored code point", token.LineNo)
		}
		pairs = append(pairs, Pair{Before: token.Lo, After: after})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Dedup collapses symmetric pairs down to one canonical direction. A pair
// survives iff its Before value has not appeared as the After value of an
// already kept pair. Order is preserved.
func Dedup(pairs []Pair) []Pair {
	seenAfter := make(map[string]bool, len(pairs))
	kept := make([]Pair, 0, len(pairs)/2+1)
	for _, p := range pairs {
		if seenAfter[p.Before] {
			continue
		}
		kept = append(kept, p)
		seenAfter[p.After] = true
	}
	return kept
}

// Write prints each pair as a two-character-literal tuple.
func Write(w io.Writer, pairs []Pair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "('\\u{%s}', '\\u{%s}'),\n", p.Before, p.After); err != nil {
			return err
		}
	}
	return nil
}

// Generate runs the whole pipeline: ensure a cached copy of
// BidiMirroring.txt exists in dir, parse and deduplicate it, and write the
// tuple literals to w.
func Generate(w io.Writer, dir string) error {
	path := filepath.Join(dir, FileName)
	if err := ucd.EnsureFile(path, SourceURL); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %v: %w", path, err)
	}
	defer f.Close()
	pairs, err := Parse(f)
	if err != nil {
		return err
	}
	kept := Dedup(pairs)
	gentables.CT().Infof("kept %d of %d mirroring pairs", len(kept), len(pairs))
	return Write(w, kept)
}
