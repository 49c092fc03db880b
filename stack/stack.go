package stack

import "github.com/inkwell-templates/mustache/parse"

// Stack is the Context Stack: an ordered chain of frames, innermost
// (top) first. Pushing a frame returns a new Stack; the original is
// left untouched, so callers can render a section body and then
// "pop" simply by going back to holding the prior *Stack. Frames live
// only as long as the render call that created them.
type Stack struct {
	value  Value
	parent *Stack
}

// New creates a single-frame stack rooted at v.
func New(v Value) *Stack {
	return &Stack{value: v}
}

// Push returns a new stack with v as its top frame, this stack as its
// parent.
func (s *Stack) Push(v Value) *Stack {
	return &Stack{value: v, parent: s}
}

// Top returns the innermost frame's value.
func (s *Stack) Top() Value {
	if s == nil {
		return nil
	}
	return s.value
}

// Lookup resolves a dotted name against the stack: the first segment is
// matched by scanning frames top-to-bottom for a Mapping that has a
// child of that name (lexical fallback); every following segment is
// resolved via Child on the anchor with no further fallback, so a
// missing link anywhere past the first segment fails the whole lookup.
func (s *Stack) Lookup(name parse.DottedName) (Value, bool) {
	if name.Implicit {
		top := s.Top()
		return top, top != nil
	}
	if len(name.Segments) == 0 {
		return nil, false
	}
	first := name.Segments[0]
	for f := s; f != nil; f = f.parent {
		if f.value == nil || f.value.Kind() != KindMapping {
			continue
		}
		anchor, ok := f.value.Child(first)
		if !ok {
			continue
		}
		for _, seg := range name.Segments[1:] {
			if anchor == nil {
				return nil, false
			}
			next, ok := anchor.Child(seg)
			if !ok {
				return nil, false
			}
			anchor = next
		}
		return anchor, true
	}
	return nil, false
}
