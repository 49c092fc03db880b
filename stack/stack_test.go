package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-templates/mustache/parse"
)

func name(raw string) parse.DottedName { return parse.ParseDottedName(raw) }

func TestStackImplicitIterator(t *testing.T) {
	s := New(Native("leaf"))
	v, ok := s.Lookup(name("."))
	require.True(t, ok)
	str, _ := v.Render()
	assert.Equal(t, "leaf", str)
}

func TestStackFirstSegmentFallsBackThroughFrames(t *testing.T) {
	outer := New(Native(map[string]any{"a": "outer-a"}))
	inner := outer.Push(Native(map[string]any{"b": "inner-b"}))

	v, ok := inner.Lookup(name("a"))
	require.True(t, ok)
	s, _ := v.Render()
	assert.Equal(t, "outer-a", s)

	v, ok = inner.Lookup(name("b"))
	require.True(t, ok)
	s, _ = v.Render()
	assert.Equal(t, "inner-b", s)
}

func TestStackDottedLookupDoesNotFallBackPastFirstSegment(t *testing.T) {
	// {{a.b.c}} against {a: {b: {}}} must resolve to nothing, not fall
	// back to search other frames for "c".
	s := New(Native(map[string]any{"a": map[string]any{"b": map[string]any{}}}))
	_, ok := s.Lookup(name("a.b.c"))
	assert.False(t, ok)
}

func TestStackPushDoesNotMutateParent(t *testing.T) {
	base := New(Native(map[string]any{"x": 1}))
	child := base.Push(Native(map[string]any{"x": 2}))

	v, _ := base.Lookup(name("x"))
	s, _ := v.Render()
	assert.Equal(t, "1", s)

	v, _ = child.Lookup(name("x"))
	s, _ = v.Render()
	assert.Equal(t, "2", s)
}

func TestStackLookupMissingFirstSegment(t *testing.T) {
	s := New(Native(map[string]any{"a": 1}))
	_, ok := s.Lookup(name("nope"))
	assert.False(t, ok)
}
