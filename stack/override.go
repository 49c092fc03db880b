package stack

import "github.com/inkwell-templates/mustache/parse"

// OverrideScope implements the inheritance module's "most specific
// parent wins from outside in" rule: pushing a nested Parent's own
// block overrides layers them under whatever an enclosing Parent already
// resolved, rather than replacing it, so an outer override always wins
// over an inner one for the same block name.
type OverrideScope struct {
	resolved map[string][]parse.Node
}

// NewOverrideScope returns the empty root scope (no overrides in play).
func NewOverrideScope() *OverrideScope {
	return &OverrideScope{}
}

// Push layers own's overrides under this scope's already-resolved ones:
// for any block name both define, the existing (outer) entry wins.
func (s *OverrideScope) Push(own map[string][]parse.Node) *OverrideScope {
	var existing map[string][]parse.Node
	if s != nil {
		existing = s.resolved
	}
	if len(own) == 0 {
		return &OverrideScope{resolved: existing}
	}
	merged := make(map[string][]parse.Node, len(own)+len(existing))
	for k, v := range own {
		merged[k] = v
	}
	for k, v := range existing {
		merged[k] = v // outer already-resolved entries win
	}
	return &OverrideScope{resolved: merged}
}

// Lookup returns the override children for a block name, if any scope in
// the chain supplied one.
func (s *OverrideScope) Lookup(name string) ([]parse.Node, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.resolved[name]
	return v, ok
}
