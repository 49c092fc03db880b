package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/inkwell-templates/mustache/delim"
)

// TestParseTreeStructuralDiff checks the whole shape of a parsed tree at
// once (section nesting, dotted names, inversion) rather than asserting
// on one field at a time.
func TestParseTreeStructuralDiff(t *testing.T) {
	tree, err := Parse("{{#a}}{{b}}{{^c}}no{{/c}}{{/a}}", delim.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []Node{
		&SectionNode{
			Name: DottedName{Segments: []string{"a"}},
			Children: []Node{
				&InterpolationNode{Name: DottedName{Segments: []string{"b"}}, Escape: true},
				&SectionNode{
					Name:        DottedName{Segments: []string{"c"}},
					Inverted:    true,
					Children:    []Node{&TextNode{Text: "no"}},
					SourceSlice: "no",
				},
			},
			SourceSlice: "{{b}}{{^c}}no{{/c}}",
		},
	}

	if diff := cmp.Diff(want, tree.Root); diff != "" {
		t.Fatalf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}
