// Package delim holds the mutable delimiter state the tokenizer threads
// through a template: the current (open, close) tag markers, which
// set-delimiter tags reconfigure mid-stream.
package delim

import (
	"fmt"
	"strings"
)

// Pair is an open/close delimiter pair, e.g. {"{{", "}}"}.
type Pair struct {
	Open  string
	Close string
}

// Default returns the standard Mustache delimiters.
func Default() Pair {
	return Pair{Open: "{{", Close: "}}"}
}

// Validate enforces the invariants a delimiter pair must satisfy:
// non-empty, no whitespace, and no '=' (which would make set-delimiter
// tags ambiguous).
func (p Pair) Validate() error {
	if p.Open == "" || p.Close == "" {
		return fmt.Errorf("delimiters must be non-empty, got %q %q", p.Open, p.Close)
	}
	if containsSpace(p.Open) || containsSpace(p.Close) {
		return fmt.Errorf("delimiters must not contain whitespace, got %q %q", p.Open, p.Close)
	}
	if strings.Contains(p.Open, "=") || strings.Contains(p.Close, "=") {
		return fmt.Errorf("delimiters must not contain '=', got %q %q", p.Open, p.Close)
	}
	return nil
}

func containsSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			return true
		}
	}
	return false
}
