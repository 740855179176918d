// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel reasons. A *ParseError unwraps to exactly one of these (or to a
// reason defined by the package that produced it), so callers match with
// errors.Is without inspecting messages.
var (
	// ErrUnexpectedLiteral indicates the input does not continue with the expected literal.
	ErrUnexpectedLiteral = errors.New("parser: unexpected literal")
	// ErrExpectedInteger indicates no digit was found where an integer was required.
	ErrExpectedInteger = errors.New("parser: expected integer")
	// ErrIntegerRange indicates the digits overflow the requested integer type.
	ErrIntegerRange = errors.New("parser: integer out of range")
	// ErrTrailingInput indicates non-whitespace input remained when exhaustion was required.
	ErrTrailingInput = errors.New("parser: unconsumed trailing input")
)

// ParseError describes malformed input. Line and Column are 1-based;
// Column counts runes. Offset is the byte offset of Token in the source.
type ParseError struct {
	Reason error  // sentinel reason, matched with errors.Is
	Token  string // offending text (shortened for long inputs)
	Detail string // human readable explanation, may be empty
	Line   int
	Column int
	Offset int
	Cause  error // underlying error, e.g. from a cell decoder
}

// Error formats the reason, position, token and detail on one line.
func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Reason != nil {
		b.WriteString(e.Reason.Error())
	} else {
		b.WriteString("parser: parse error")
	}
	fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	} else {
		fmt.Fprintf(&b, ": token %q", e.Token)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the sentinel reason and the underlying cause.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// snippetRunes bounds the amount of source text quoted in errors.
const snippetRunes = 24

// snippet shortens s for inclusion in an error message.
func snippet(s string) string {
	n := 0
	for i := range s {
		if n == snippetRunes {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
