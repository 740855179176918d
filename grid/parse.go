// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/geometry"
	"github.com/katalvlaran/gridkit/parser"
)

// DecodeFunc converts one token of input text into a cell value.
type DecodeFunc[T any] func(token string) (T, error)

// Tokenizer splits one row of text into cell tokens. Tokens must appear in
// the row in order and verbatim; they are used to locate errors.
type Tokenizer func(row string) []string

// Runes splits a row into one token per rune. Each byte of an invalid UTF-8
// sequence becomes a token of its own, which Rune then rejects.
func Runes(row string) []string {
	out := make([]string, 0, len(row))
	for i := 0; i < len(row); {
		_, size := utf8.DecodeRuneInString(row[i:])
		out = append(out, row[i:i+size])
		i += size
	}
	return out
}

// Fields splits a row on runs of whitespace, for grids of multi-digit numbers.
func Fields(row string) []string {
	return strings.Fields(row)
}

// FixedWidth splits a row into tokens of n bytes; a shorter final token is kept.
// It panics if n < 1.
func FixedWidth(n int) Tokenizer {
	if n < 1 {
		panic(panicTokenWidth)
	}
	return func(row string) []string {
		out := make([]string, 0, (len(row)+n-1)/n)
		for i := 0; i < len(row); i += n {
			out = append(out, row[i:min(i+n, len(row))])
		}
		return out
	}
}

// Parse builds a dense grid from text. Lines holding only whitespace are
// skipped, each other line is one row (top to bottom) and each token one cell
// (left to right). With the default WithDedent(true) the indentation shared
// by all rows is stripped as well, so a grid whose first column holds only
// spaces needs WithDedent(false) to read back what Render printed. A row of
// spaces never reads back.
// The bounds are anchored at (0,0) with width = longest row in tokens and
// height = number of rows; cells missing from shorter rows hold T's zero value.
//
// The first token decode fails on aborts parsing with a *parser.ParseError
// whose reason is ErrBadToken and whose cause is the decoder's error.
func Parse[T any](text string, decode DecodeFunc[T], opts ...Option) (*Grid[T], error) {
	if decode == nil {
		panic(panicNilDecode)
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	lines := splitLines(text)
	indent := ""
	if o.dedent {
		indent = commonIndent(lines)
	}

	var zero T
	g := WithSize(geometry.Bounds{}, zero)
	y := 0
	for _, ln := range lines {
		if ln.blank {
			continue
		}
		row := strings.TrimPrefix(ln.text, indent)
		rowOffset := ln.offset + len(ln.text) - len(row)
		pos := 0
		for x, tok := range o.tokenizer(row) {
			at := strings.Index(row[pos:], tok)
			if at < 0 {
				at = 0
			}
			pos += at
			v, err := decode(tok)
			if err != nil {
				return nil, &parser.ParseError{
					Reason: ErrBadToken,
					Token:  tok,
					Detail: fmt.Sprintf("token %q at cell (%d,%d)", tok, x, y),
					Line:   ln.number,
					Column: utf8.RuneCountInString(ln.text[:len(ln.text)-len(row)+pos]) + 1,
					Offset: rowOffset + pos,
					Cause:  err,
				}
			}
			g.Set(geometry.Pt(x, y), v)
			pos += len(tok)
		}
		y++
	}
	return g, nil
}

// ParseRunes parses a character grid, one rune per cell.
func ParseRunes(text string, opts ...Option) (*Grid[rune], error) {
	return Parse(text, Rune, opts...)
}

// ParseDigits parses a grid of single decimal digits.
func ParseDigits(text string, opts ...Option) (*Grid[int], error) {
	return Parse(text, Digit, opts...)
}

type line struct {
	text   string
	number int // 1-based
	offset int // byte offset of text within the source
	blank  bool
}

func splitLines(text string) []line {
	var out []line
	offset := 0
	for i, s := range strings.Split(text, "\n") {
		trimmed := strings.TrimSuffix(s, "\r")
		out = append(out, line{
			text:   trimmed,
			number: i + 1,
			offset: offset,
			blank:  strings.TrimSpace(trimmed) == "",
		})
		offset += len(s) + 1
	}
	return out
}

// commonIndent returns the longest run of leading spaces and tabs shared by
// every non-blank line.
func commonIndent(lines []line) string {
	indent, first := "", true
	for _, ln := range lines {
		if ln.blank {
			continue
		}
		lead := ln.text[:len(ln.text)-len(strings.TrimLeft(ln.text, " \t"))]
		if first {
			indent, first = lead, false
			continue
		}
		n := 0
		for n < len(indent) && n < len(lead) && indent[n] == lead[n] {
			n++
		}
		indent = indent[:n]
	}
	return indent
}
