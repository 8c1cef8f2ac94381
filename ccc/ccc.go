/*
Package ccc generates the canonical combining class range table.

The generator reads DerivedCombiningClass.txt from the Unicode Character
Database (downloading it once into the working directory if absent) and
prints one match arm per code point range, grouped by combining class:

    0x0300..=0x036F => Above,
    0x0315 => AboveRight,

The reserved class NotReordered — the "no special behavior" default — is
excluded from the output. Ranges are emitted exactly in file order; no
sorting, merging or deduplication takes place, so output is an
order-preserving projection of the input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ccc

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gentables/internal/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// Constants of the combining class dataset.
const (
	// SourceURL is the fixed network location of the reference file.
	SourceURL = "https://www.unicode.org/Public/14.0.0/ucd/extracted/DerivedCombiningClass.txt"
	// FileName is the name of the local cache file.
	FileName = "DerivedCombiningClass.txt"
	// GroupPrefix announces a new combining class in a comment line.
	GroupPrefix = "# Canonical_Combining_Class="
	// ReservedClass is the default class, excluded from emission.
	ReservedClass = "NotReordered"
)

// Range is a single code point or an inclusive lo..hi range, kept as
// verbatim hexadecimal text. Hi is empty for singletons.
type Range struct {
	Lo, Hi string
}

// Table maps combining class names to their code point ranges. Classes keep
// the order in which they were encountered in the input file.
type Table struct {
	names  []string
	groups map[string][]Range
}

func newTable() *Table {
	return &Table{groups: make(map[string][]Range)}
}

// Classes returns the class names in input order.
func (t *Table) Classes() []string {
	return t.names
}

// Ranges returns the code point ranges of a class, in input order.
func (t *Table) Ranges(name string) []Range {
	return t.groups[name]
}

func (t *Table) push(name string, ranges []Range) {
	if _, ok := t.groups[name]; !ok {
		t.names = append(t.names, name)
	}
	t.groups[name] = append(t.groups[name], ranges...)
}

// builder is the accumulator of the parse fold: the class currently being
// collected, plus its ranges so far. Threading it explicitly through the
// loop keeps the end-of-input flush from being forgotten.
type builder struct {
	table   *Table
	current string
	ranges  *arraylist.List
}

// group seals the active class, if any, and opens a new one.
func (b builder) group(name string) builder {
	b = b.seal()
	b.current = name
	b.ranges = arraylist.New()
	return b
}

func (b builder) add(r Range) builder {
	b.ranges.Add(r)
	return b
}

// seal pushes the active class with its collected ranges into the table.
func (b builder) seal() builder {
	if b.current == "" {
		return b
	}
	ranges := make([]Range, 0, b.ranges.Size())
	it := b.ranges.Iterator()
	for it.Next() {
		ranges = append(ranges, it.Value().(Range))
	}
	b.table.push(b.current, ranges)
	tracing.P("class", b.current).Debugf("sealed with %d range(s)", len(ranges))
	b.current = ""
	b.ranges = arraylist.New()
	return b
}

// Parse reads a DerivedCombiningClass-style file and collects its
// classification groups. A data line outside of any announced class is an
// error. The class still active at end of input is sealed into the table;
// dropping it would silently lose the final class of the file.
func Parse(r io.Reader) (*Table, error) {
	sc := ucd.NewScanner(r, GroupPrefix)
	b := builder{table: newTable(), ranges: arraylist.New()}
	for sc.Next() {
		token := sc.Token()
		switch token.Type {
		case ucd.GroupTag:
			b = b.group(token.Group)
		case ucd.DataItem:
			if b.current == "" {
				return nil, fmt.Errorf("line %d: data item outside of any combining class", token.LineNo)
			}
			b = b.add(Range{Lo: token.Lo, Hi: token.Hi})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	b = b.seal()
	return b.table, nil
}
