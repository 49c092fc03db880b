// Package mustache provides a Mustache template engine for Go: a
// tokenizer that respects dynamic delimiters, a parser that applies the
// standalone-line whitespace rules and builds a node tree, and a
// renderer that walks that tree against a context stack.
//
// Example:
//
//	out, err := mustache.Render("Hello, {{name}}!", map[string]any{"name": "world"}, nil)
package mustache

import (
	"github.com/inkwell-templates/mustache/delim"
	"github.com/inkwell-templates/mustache/parse"
	"github.com/inkwell-templates/mustache/render"
	"github.com/inkwell-templates/mustache/stack"
)

// Re-exported so callers implementing a custom Value or wiring up
// lambda-style section callbacks don't need to import the stack
// package directly.
type (
	Value    = stack.Value
	Kind     = stack.Kind
	Callable = stack.Callable
	Func     = stack.Func
	Stack    = stack.Stack
)

const (
	KindNull     = stack.KindNull
	KindBool     = stack.KindBool
	KindNumber   = stack.KindNumber
	KindString   = stack.KindString
	KindSequence = stack.KindSequence
	KindMapping  = stack.KindMapping
	KindCallable = stack.KindCallable
)

// Native wraps a plain Go value (map[string]any, []any, a struct, or a
// scalar) as a Value, the way the renderer expects data it hasn't been
// given a custom Value implementation for.
var Native = stack.Native

type (
	PartialResolver = render.PartialResolver
	MapResolver      = render.MapResolver
	Options          = render.Options
	RenderError      = render.Error
)

// DefaultOptions returns the engine's default render options: a
// recursion cap of 256 and lenient (non-strict) lookups.
func DefaultOptions() Options { return render.DefaultOptions() }

// Render parses template and renders it against data, resolving
// partials and parents through partials (nil is equivalent to an empty
// resolver — every partial/parent then renders empty).
func Render(template string, data any, partials PartialResolver) (string, error) {
	return RenderOptions(template, data, partials, DefaultOptions())
}

// RenderOptions is Render with explicit Options, for callers that need
// a tighter recursion cap or strict-lookup error surfacing.
func RenderOptions(template string, data any, partials PartialResolver, opts Options) (string, error) {
	tree, err := Parse(template)
	if err != nil {
		return "", err
	}
	return RenderTree(tree, data, partials, opts)
}

// Tree is a parsed template, reusable across many Render calls against
// different data and partial sets.
type Tree = parse.Tree

// Parse tokenizes and parses template under the default delimiters,
// returning a Tree that can be rendered repeatedly without re-parsing.
func Parse(template string) (*Tree, error) {
	return parse.Parse(template, delim.Default())
}

// RenderTree renders an already-parsed Tree, skipping the tokenize/parse
// step Render and RenderOptions perform internally.
func RenderTree(tree *Tree, data any, partials PartialResolver, opts Options) (string, error) {
	return render.Render(tree, data, partials, opts)
}
