package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Scanner is a line-level scanner for UCD files. Blank lines and ordinary
// comment lines are consumed silently; group-announcement comments and data
// lines surface as tokens.
type Scanner struct {
	buf         *bufio.Scanner
	groupPrefix string // announcement prefix, e.g. "# Canonical_Combining_Class="
	token       *Token
	lineNo      int
	err         error
}

// Group names are normalized by dropping separator characters, cf.
// UAX44-LM3 loose matching.
var groupNameReplacer = strings.NewReplacer("_", "")

// NewScanner creates a scanner for an input reader. groupPrefix is the
// comment prefix announcing a new classification group; files without group
// announcements pass an empty prefix.
func NewScanner(r io.Reader, groupPrefix string) *Scanner {
	return &Scanner{
		buf:         bufio.NewScanner(r),
		groupPrefix: groupPrefix,
	}
}

// Next advances the scanner to the next token, skipping blank lines and
// plain comments. It returns false at end of input or on the first error.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	for sc.buf.Scan() {
		sc.lineNo++
		line := strings.TrimSpace(sc.buf.Text())
		if line == "" {
			continue
		}
		if sc.groupPrefix != "" && strings.HasPrefix(line, sc.groupPrefix) {
			sc.token = &Token{
				LineNo: sc.lineNo,
				Type:   GroupTag,
				Group:  groupNameReplacer.Replace(strings.TrimSpace(line[len(sc.groupPrefix):])),
			}
			return true
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		token, err := sc.scanDataItem(line)
		if err != nil {
			sc.err = err
			return false
		}
		sc.token = token
		return true
	}
	sc.err = sc.buf.Err()
	return false
}

// Token returns the token produced by the last call to Next.
func (sc *Scanner) Token() *Token {
	return sc.token
}

// Err returns the first error encountered by the scanner.
func (sc *Scanner) Err() error {
	return sc.err
}

// scanDataItem splits a data line into its comment, its fields and the
// leading code point range token. The range token is kept as verbatim hex
// text. A missing field separator is an error: the scanner is trusted to
// run against the known-good reference format only, and inconsistencies
// must not silently produce wrong tables.
func (sc *Scanner) scanDataItem(line string) (*Token, error) {
	token := &Token{LineNo: sc.lineNo, Type: DataItem}
	body, comment, _ := strings.Cut(line, "#")
	token.Comment = strings.TrimSpace(comment)
	fields := strings.Split(body, ";")
	if len(fields) < 2 {
		return nil, fmt.Errorf("line %d: data item without field separator: %q", sc.lineNo, line)
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	token.Lo, token.Hi, _ = strings.Cut(fields[0], "..")
	token.Fields = fields[1:]
	return token, nil
}
