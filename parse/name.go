package parse

import "strings"

// DottedName is a resolvable name within a rendering context: either the
// implicit-iterator marker "." or an ordered, non-empty list of segments
// such as {"a", "b", "c"} for "a.b.c".
type DottedName struct {
	Implicit bool
	Segments []string
}

// ParseDottedName splits raw on '.' into a DottedName, recognizing the
// bare "." implicit-iterator marker.
func ParseDottedName(raw string) DottedName {
	if raw == "." {
		return DottedName{Implicit: true}
	}
	return DottedName{Segments: strings.Split(raw, ".")}
}

func (d DottedName) String() string {
	if d.Implicit {
		return "."
	}
	return strings.Join(d.Segments, ".")
}

// Equal reports whether two dotted names refer to the same path.
func (d DottedName) Equal(o DottedName) bool {
	if d.Implicit != o.Implicit {
		return false
	}
	if d.Implicit {
		return true
	}
	if len(d.Segments) != len(o.Segments) {
		return false
	}
	for i, s := range d.Segments {
		if s != o.Segments[i] {
			return false
		}
	}
	return true
}
