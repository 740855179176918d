// SPDX-License-Identifier: MIT

// Package parser is a forward-only cursor scanner for the small line
// grammars that puzzle inputs use: integers interleaved with literal
// separators such as "Button A:", "X+" or ",".
//
// What:
//
//   - Parser wraps an immutable string and one cursor offset.
//   - Literal, Uint, Int and ReadInt skip whitespace (space, tab, CR, LF)
//     and then consume exactly one token.
//   - IsExhausted / EnsureExhausted check for remaining non-whitespace.
//   - ParseError carries the offending token and its line/column; it is
//     shared with package grid for cell decoding failures.
//
// Contract:
//
//   - The cursor never moves backwards. Calls must be issued in the order
//     the grammar dictates.
//   - A failed read does not consume the token it rejected.
//
// Example:
//
//	p := parser.New("mul(2,4)")
//	_ = p.Literal("mul(")
//	a, _ := p.Uint()
//	_ = p.Literal(",")
//	b, _ := p.Uint()
//	_ = p.Literal(")")
//	err := p.EnsureExhausted()
//
// Errors:
//
//   - ErrUnexpectedLiteral: the text at the cursor is not the expected literal.
//   - ErrExpectedInteger: no digit at the cursor.
//   - ErrIntegerRange: the digit run does not fit the requested integer type.
//   - ErrTrailingInput: EnsureExhausted found unconsumed text.
package parser
