// SPDX-License-Identifier: MIT

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Parser scans src from left to right. The zero value is an exhausted
// parser over the empty string.
type Parser struct {
	src    string
	cursor int
}

// New returns a Parser positioned at the start of src.
func New(src string) *Parser {
	return &Parser{src: src}
}

// Offset returns the cursor as a byte offset into the source.
func (p *Parser) Offset() int {
	return p.cursor
}

// Remaining returns the unconsumed source, whitespace included.
func (p *Parser) Remaining() string {
	return p.src[p.cursor:]
}

// Position returns the 1-based line and rune column of the cursor.
func (p *Parser) Position() (line, col int) {
	return position(p.src, p.cursor)
}

// IsExhausted skips whitespace and reports whether the end of input was reached.
func (p *Parser) IsExhausted() bool {
	p.skipSpace()
	return p.cursor == len(p.src)
}

// EnsureExhausted fails with ErrTrailingInput unless only whitespace remains.
func (p *Parser) EnsureExhausted() error {
	if p.IsExhausted() {
		return nil
	}
	rest := p.Remaining()
	return p.errorf(ErrTrailingInput, snippet(rest), "found %q", snippet(rest))
}

// Literal skips whitespace and consumes expected verbatim. On mismatch the
// cursor stays before the mismatching text and ErrUnexpectedLiteral is returned,
// naming both the expected literal and the actual input.
func (p *Parser) Literal(expected string) error {
	if p.TryLiteral(expected) {
		return nil
	}
	rest := p.Remaining()
	return p.errorf(ErrUnexpectedLiteral, snippet(rest), "expected %q, found %q", expected, snippet(rest))
}

// TryLiteral is Literal without an error: it consumes expected and reports
// true, or leaves the input untouched (apart from whitespace) and reports false.
func (p *Parser) TryLiteral(expected string) bool {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.cursor:], expected) {
		return false
	}
	p.cursor += len(expected)
	return true
}

// Uint reads a non-negative integer.
func (p *Parser) Uint() (uint, error) {
	return ReadInt[uint](p)
}

// Int reads an integer with an optional leading '-'.
func (p *Parser) Int() (int, error) {
	return ReadInt[int](p)
}

// ReadInt skips whitespace and greedily consumes a run of ASCII digits,
// preceded by an optional '-' when T is signed. The value must fit T,
// otherwise ErrIntegerRange is returned. Without any digit at the cursor the
// result is ErrExpectedInteger. On failure the cursor is not advanced past
// the rejected token.
func ReadInt[T constraints.Integer](p *Parser) (T, error) {
	var zero T
	p.skipSpace()

	signed := zero-1 < zero
	start, end := p.cursor, p.cursor
	if signed && end < len(p.src) && p.src[end] == '-' {
		end++
	}
	digits := end
	for end < len(p.src) && isDigit(p.src[end]) {
		end++
	}
	if end == digits {
		rest := p.Remaining()
		return zero, p.errorf(ErrExpectedInteger, snippet(rest), "found %q", snippet(rest))
	}

	text := p.src[start:end]
	bits := int(unsafe.Sizeof(zero)) * 8
	var v T
	if signed {
		n, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			return zero, p.errorf(ErrIntegerRange, text, "%q does not fit in %d bits", text, bits)
		}
		v = T(n)
	} else {
		n, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			return zero, p.errorf(ErrIntegerRange, text, "%q does not fit in %d bits", text, bits)
		}
		v = T(n)
	}
	p.cursor = end
	return v, nil
}

func (p *Parser) skipSpace() {
	for p.cursor < len(p.src) && isSpace(p.src[p.cursor]) {
		p.cursor++
	}
}

// errorf builds a ParseError located at the cursor.
func (p *Parser) errorf(reason error, token, format string, args ...any) *ParseError {
	line, col := p.Position()
	return &ParseError{
		Reason: reason,
		Token:  token,
		Detail: fmt.Sprintf(format, args...),
		Line:   line,
		Column: col,
		Offset: p.cursor,
	}
}

// position converts a byte offset into a 1-based line and rune column.
func position(src string, offset int) (line, col int) {
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return line, utf8.RuneCountInString(before) + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
