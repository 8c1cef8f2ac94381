package ccc

import (
	"fmt"
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// ClassStat summarizes one combining class for diagnostic output. The
// statistics are the only place where hex tokens are converted to runes;
// the emitted table itself stays verbatim text.
type ClassStat struct {
	Class      string
	Ranges     int
	CodePoints int
	Table      *unicode.RangeTable
}

// Stats computes per-class range tables and code point counts, classes in
// input order.
func Stats(t *Table) ([]ClassStat, error) {
	stats := make([]ClassStat, 0, len(t.names))
	for _, name := range t.Classes() {
		ranges := t.Ranges(name)
		var runes []rune
		for _, rg := range ranges {
			lo, hi, err := runeRange(rg)
			if err != nil {
				return nil, fmt.Errorf("class %v: %w", name, err)
			}
			for r := lo; r <= hi; r++ {
				runes = append(runes, r)
			}
		}
		stats = append(stats, ClassStat{
			Class:      name,
			Ranges:     len(ranges),
			CodePoints: len(runes),
			Table:      rangetable.New(runes...),
		})
	}
	return stats, nil
}

func runeRange(rg Range) (lo, hi rune, err error) {
	n, err := strconv.ParseUint(rg.Lo, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("hex decoding error: %w", err)
	}
	lo, hi = rune(n), rune(n)
	if rg.Hi != "" {
		n, err = strconv.ParseUint(rg.Hi, 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("hex decoding error: %w", err)
		}
		hi = rune(n)
	}
	return lo, hi, nil
}
