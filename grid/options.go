// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Defaults for Parse and Render.
const (
	// DefaultPlaceholder is printed for absent cells.
	DefaultPlaceholder = "."
	// DefaultSeparator is printed between two cells of a row.
	DefaultSeparator = ""
	// DefaultDedent strips the indentation shared by all non-blank rows.
	DefaultDedent = true
)

// Option configures Parse and Render. Invalid values are recorded and
// surfaced as ErrOptionViolation by Parse.
type Option func(*options)

type options struct {
	tokenizer   Tokenizer
	placeholder string
	separator   string
	dedent      bool
	err         error
}

func defaultOptions() options {
	return options{
		tokenizer:   Runes,
		placeholder: DefaultPlaceholder,
		separator:   DefaultSeparator,
		dedent:      DefaultDedent,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithTokenizer selects how a row is split into cell tokens (default Runes).
func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t == nil {
			o.err = fmt.Errorf("%w: tokenizer is nil", ErrOptionViolation)
			return
		}
		o.tokenizer = t
	}
}

// WithDedent toggles stripping of the indentation shared by every non-blank row.
// Indented fixtures in tests rely on it; disable it when leading whitespace is
// part of the grid.
func WithDedent(enabled bool) Option {
	return func(o *options) {
		o.dedent = enabled
	}
}

// WithPlaceholder sets the text Render prints for absent cells.
func WithPlaceholder(s string) Option {
	return func(o *options) {
		o.placeholder = s
	}
}

// WithSeparator sets the text Render prints between cells of a row, e.g. " "
// for grids parsed with the Fields tokenizer.
func WithSeparator(s string) Option {
	return func(o *options) {
		o.separator = s
	}
}
