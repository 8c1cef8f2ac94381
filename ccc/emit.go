package ccc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/gentables"
	"github.com/npillmayer/gentables/internal/ucd"
	"github.com/npillmayer/schuko/tracing"
)

// Write prints one match arm per range, classes in input order, skipping
// the reserved default class.
func Write(w io.Writer, t *Table) error {
	for _, name := range t.Classes() {
		if name == ReservedClass {
			continue
		}
		for _, rg := range t.Ranges(name) {
			var err error
			if rg.Hi != "" {
				_, err = fmt.Fprintf(w, "0x%s..=0x%s => %s,\n", rg.Lo, rg.Hi, name)
			} else {
				_, err = fmt.Fprintf(w, "0x%s => %s,\n", rg.Lo, name)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Generate runs the whole pipeline: ensure a cached copy of
// DerivedCombiningClass.txt exists in dir, parse it, and write the match
// arms to w.
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
	table, err := Parse(f)
	if err != nil {
		return err
	}
	gentables.CT().Infof("parsed %d combining classes", len(table.Classes()))
	stats, err := Stats(table)
	if err != nil {
		return err
	}
	for _, s := range stats {
		tracing.P("class", s.Class).Debugf("%d range(s), %d code point(s)", s.Ranges, s.CodePoints)
	}
	return Write(w, table)
}
