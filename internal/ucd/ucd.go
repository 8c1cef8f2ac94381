/*
Package ucd provides acquisition and line-level scanning of Unicode
Character Database files.

UCD files are line-oriented ASCII with semicolon-delimited fields and
'#'-introduced comments; the format is defined in
http://www.unicode.org/reports/tr44/. Some files additionally announce
classification groups in specially-formatted comment lines (e.g.
"# Canonical_Combining_Class=Above"), which the scanner surfaces as tokens
of their own.

Code point tokens are deliberately kept as verbatim hexadecimal strings.
The generators in this module only ever print them back out, and parsing to
integers would lose leading-zero formatting fidelity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import "fmt"

// TokenType discriminates the line-level tokens produced by the scanner.
type TokenType int8

const (
	// Undefined is the zero token type.
	Undefined TokenType = iota
	// GroupTag is a comment line announcing a new classification group.
	GroupTag
	// DataItem is a regular data line.
	DataItem
)

// Token subsumes the properties of one line of UCD input.
type Token struct {
	LineNo int       // line number within the input source, 1-based
	Type   TokenType // kind of line
	Group  string    // normalized group name, for GroupTag tokens
	Lo, Hi string    // verbatim hex range token of a data item; Hi is empty for singletons
	Fields []string  // data item fields following the range token
	Comment string   // rest-of-line comment of a data item
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d type=%d %s..%s %v]", token.LineNo,
		token.Type, token.Lo, token.Hi, token.Fields)
}

// Field gets field #1…n following the range token of a data item.
// An out-of-bounds index yields the empty string.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// IsRange is true if the data item carries a lo..hi code point range rather
// than a single code point.
func (token *Token) IsRange() bool {
	return token.Hi != ""
}
