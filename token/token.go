// Package token implements the Mustache tokenizer: it segments template
// source into a flat stream of literal-text and tag tokens, tracking
// dynamic delimiter reconfiguration and the whitespace context each tag
// sits in (used by the parser to apply standalone-line trimming).
package token

import (
	"fmt"

	"github.com/inkwell-templates/mustache/span"
)

// Kind identifies what a Token represents.
type Kind int

const (
	Text Kind = iota
	Interpolation
	InterpolationUnescaped
	SectionOpen
	InvertedOpen
	Close // closes Section, InvertedOpen, Parent, or Block — matched by name
	Partial
	Parent
	Block
	Comment
	SetDelim
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Interpolation:
		return "Interpolation"
	case InterpolationUnescaped:
		return "InterpolationUnescaped"
	case SectionOpen:
		return "SectionOpen"
	case InvertedOpen:
		return "InvertedOpen"
	case Close:
		return "Close"
	case Partial:
		return "Partial"
	case Parent:
		return "Parent"
	case Block:
		return "Block"
	case Comment:
		return "Comment"
	case SetDelim:
		return "SetDelim"
	default:
		return "Unknown"
	}
}

// Token is one lexical unit of a template: either a run of literal text,
// or a recognized tag. Raw is the trimmed tag content with the sigil
// removed (but a leading '*' dynamic-name marker retained); for Text
// tokens Raw holds the literal bytes.
type Token struct {
	Kind Kind
	Raw  string

	Start, End int
	Pos        span.Pos

	// LineLeading is true when only whitespace precedes this token since
	// the start of its line. LineTrailing is true when only whitespace
	// follows it up to (and not including) the next newline or EOF.
	LineLeading  bool
	LineTrailing bool
}

// Error reports a fatal tokenizer failure with its source location.
type Error struct {
	Pos span.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("mustache: tokenizer error at %s: %s", e.Pos, e.Msg)
}
