// Package stack implements the Context Stack and Value Contract
// components: the polymorphic data interface the renderer consumes, a
// reference adapter over plain Go values, and the hierarchical frame
// stack dotted names resolve against.
package stack

import "fmt"

// Kind is the closed set of shapes a Value may report.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindCallable:
		return "callable"
	default:
		return "unknown"
	}
}

// Value is the abstract data contract the renderer walks. Every concrete
// data backend (JSON trees, YAML trees, reflected Go structs) implements
// this rather than being special-cased by the renderer.
type Value interface {
	// Kind reports which of the closed set of shapes this value is.
	Kind() Kind

	// Truthy is false for Null, Bool(false), empty String, empty
	// Sequence; true for everything else, including every Mapping.
	Truthy() bool

	// Render stringifies a scalar value for interpolation. Calling it on
	// a Mapping, Sequence, or Callable is a stringification failure.
	Render() (string, error)

	// Child looks up a keyed member of a Mapping (or a numeric index
	// into a Sequence); ok is false if absent.
	Child(key string) (Value, bool)

	// Iter yields a Sequence's elements in order; ok is false for any
	// other Kind.
	Iter() (items []Value, ok bool)
}

// Callable is the contract a Value of Kind() == KindCallable must
// additionally satisfy. It is the engine's one hook for user-defined
// context producers, deliberately distinct from (and not a replacement
// for) the unsupported lambda module: the engine never inspects a Go
// func value found in plain data, it only invokes CallSection on a
// Value that explicitly opts into this interface (see Func).
type Callable interface {
	Value
	// CallSection is invoked when a section's resolved value is
	// Callable. raw is the section's literal source text (SourceSlice);
	// the returned Value is re-dispatched by the renderer as the
	// section's data, exactly as if it had been looked up directly.
	CallSection(raw string, frames *Stack) (Value, error)
}

// stringificationError is returned by Render on non-scalar kinds.
type stringificationError struct {
	kind Kind
}

func (e *stringificationError) Error() string {
	return fmt.Sprintf("mustache: cannot render a %s value as a string", e.kind)
}
