// SPDX-License-Identifier: MIT

package parser_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/parser"
)

// ExampleParser reads a page-ordering rule "47|53".
func ExampleParser() {
	p := parser.New("47|53")
	first, _ := p.Uint()
	_ = p.Literal("|")
	second, _ := p.Uint()
	fmt.Println(first, second, p.EnsureExhausted())
	// Output:
	// 47 53 <nil>
}

// ExampleParser_Literal shows the error produced by a mismatching separator.
func ExampleParser_Literal() {
	p := parser.New("mul[3,7]")
	fmt.Println(p.Literal("mul("))
	// Output:
	// parser: unexpected literal at line 1, column 1: expected "mul(", found "mul[3,7]"
}
