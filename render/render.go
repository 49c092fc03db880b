package render

import (
	"strings"

	"github.com/inkwell-templates/mustache/delim"
	"github.com/inkwell-templates/mustache/internal/tracelog"
	"github.com/inkwell-templates/mustache/parse"
	"github.com/inkwell-templates/mustache/stack"
)

// state carries the pieces of the walk that don't change shape as the
// tree is descended: options, the partial source table, and the
// current nested-expansion depth.
type state struct {
	opts     Options
	resolver PartialResolver
	depth    int
}

// Render walks tree against data (wrapped with stack.Native unless it
// already implements stack.Value) and returns the rendered output.
func Render(tree *parse.Tree, data any, resolver PartialResolver, opts Options) (string, error) {
	if resolver == nil {
		resolver = MapResolver(nil)
	}
	cs := stack.New(stack.Native(data))
	ov := stack.NewOverrideScope()
	st := &state{opts: opts, resolver: resolver}

	var out strings.Builder
	if err := renderNodes(tree.Root, cs, ov, st, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

func renderNodes(nodes []parse.Node, cs *stack.Stack, ov *stack.OverrideScope, st *state, out *strings.Builder) error {
	for _, n := range nodes {
		if err := renderNode(n, cs, ov, st, out); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(n parse.Node, cs *stack.Stack, ov *stack.OverrideScope, st *state, out *strings.Builder) error {
	switch node := n.(type) {
	case *parse.TextNode:
		out.WriteString(node.Text)
		return nil

	case *parse.InterpolationNode:
		return renderInterpolation(node, cs, st, out)

	case *parse.SectionNode:
		return renderSection(node, cs, ov, st, out)

	case *parse.PartialNode:
		return renderInclude(node.Name, node.Dynamic, node.Indent, nil, cs, ov, st, out)

	case *parse.ParentNode:
		return renderInclude(node.Name, node.Dynamic, node.Indent, node.Overrides, cs, ov, st, out)

	case *parse.BlockNode:
		if children, ok := ov.Lookup(node.Name); ok {
			return renderNodes(children, cs, ov, st, out)
		}
		return renderNodes(node.Default, cs, ov, st, out)
	}
	return nil
}

func renderInterpolation(node *parse.InterpolationNode, cs *stack.Stack, st *state, out *strings.Builder) error {
	v, ok := cs.Lookup(node.Name)
	if !ok {
		if st.opts.StrictLookup {
			return &Error{Reason: ReasonStrictLookupFailed, Name: node.Name.String()}
		}
		return nil
	}
	if v == nil || v.Kind() == stack.KindNull {
		return nil
	}
	s, err := v.Render()
	if err != nil {
		return &Error{Reason: ReasonStringify, Name: node.Name.String(), Err: err}
	}
	if node.Escape {
		s = escapeHTML(s)
	}
	out.WriteString(s)
	return nil
}

func renderSection(node *parse.SectionNode, cs *stack.Stack, ov *stack.OverrideScope, st *state, out *strings.Builder) error {
	v, ok := cs.Lookup(node.Name)
	if !ok || v == nil {
		if node.Inverted {
			return renderNodes(node.Children, cs, ov, st, out)
		}
		return nil
	}
	return dispatchSectionValue(v, node, cs, ov, st, out)
}

// dispatchSectionValue implements the Kind-based section rules,
// re-entering itself when a Callable hands back a fresh value to
// dispatch as if it were the section's own data.
func dispatchSectionValue(v stack.Value, node *parse.SectionNode, cs *stack.Stack, ov *stack.OverrideScope, st *state, out *strings.Builder) error {
	switch v.Kind() {
	case stack.KindNull:
		if node.Inverted {
			return renderNodes(node.Children, cs, ov, st, out)
		}
		return nil

	case stack.KindBool:
		truthy := v.Truthy()
		if node.Inverted {
			if !truthy {
				return renderNodes(node.Children, cs, ov, st, out)
			}
			return nil
		}
		if !truthy {
			return nil
		}
		return renderNodes(node.Children, cs.Push(v), ov, st, out)

	case stack.KindSequence:
		items, _ := v.Iter()
		if node.Inverted {
			if len(items) == 0 {
				return renderNodes(node.Children, cs, ov, st, out)
			}
			return nil
		}
		for _, item := range items {
			if err := renderNodes(node.Children, cs.Push(item), ov, st, out); err != nil {
				return err
			}
		}
		return nil

	case stack.KindNumber, stack.KindString:
		truthy := v.Truthy()
		if node.Inverted {
			if !truthy {
				return renderNodes(node.Children, cs, ov, st, out)
			}
			return nil
		}
		if !truthy {
			return nil
		}
		return renderNodes(node.Children, cs.Push(v), ov, st, out)

	case stack.KindMapping:
		if node.Inverted {
			return nil // mappings are always truthy
		}
		return renderNodes(node.Children, cs.Push(v), ov, st, out)

	case stack.KindCallable:
		if node.Inverted {
			return nil // callables are always truthy, per the Bool/Number/String/Mapping convention
		}
		callable := v.(stack.Callable)
		result, err := callable.CallSection(node.SourceSlice, cs)
		if err != nil {
			return &Error{Reason: ReasonStringify, Name: node.Name.String(), Err: err}
		}
		if result == nil {
			return nil
		}
		return dispatchSectionValue(result, node, cs, ov, st, out)
	}
	return nil
}

// renderInclude implements Partial and Parent: resolve the (possibly
// dynamic) name, look it up in the resolver, parse it fresh, render it
// under a bumped recursion depth, and apply the node's indent to every
// line of the result.
func renderInclude(name parse.DottedName, dynamic bool, indent string, overrides map[string][]parse.Node, cs *stack.Stack, ov *stack.OverrideScope, st *state, out *strings.Builder) error {
	resolvedName, ok := resolveIncludeName(name, dynamic, cs)
	if !ok {
		return nil
	}
	src, ok := st.resolver.Resolve(resolvedName)
	if !ok {
		return nil
	}
	if st.depth+1 > st.opts.maxDepth() {
		return &Error{Reason: ReasonRecursionExceeded, Name: resolvedName}
	}

	tree, err := parse.Parse(src, delim.Default())
	if err != nil {
		return err
	}
	tracelog.Tracef("mustache: expanding include %q at depth %d", resolvedName, st.depth+1)

	childOv := ov
	if overrides != nil {
		childOv = ov.Push(overrides)
	}
	childState := &state{opts: st.opts, resolver: st.resolver, depth: st.depth + 1}

	var sub strings.Builder
	if err := renderNodes(tree.Root, cs, childOv, childState, &sub); err != nil {
		return err
	}
	out.WriteString(applyIndent(sub.String(), indent))
	return nil
}

func resolveIncludeName(name parse.DottedName, dynamic bool, cs *stack.Stack) (string, bool) {
	if !dynamic {
		return name.String(), true
	}
	v, ok := cs.Lookup(name)
	if !ok || v == nil {
		return "", false
	}
	s, err := v.Render()
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
