package parse

import (
	"fmt"
	"strings"

	"github.com/inkwell-templates/mustache/delim"
	"github.com/inkwell-templates/mustache/span"
	"github.com/inkwell-templates/mustache/token"
)

// Error reports a fatal parser failure (mismatched section close, an
// open section at end of input) with its source location.
type Error struct {
	Pos span.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("mustache: parse error at %s: %s", e.Pos, e.Msg)
}

// Parse tokenizes and parses src under the given initial delimiters.
func Parse(src string, delims delim.Pair) (*Tree, error) {
	toks, err := token.Tokenize(src, delims)
	if err != nil {
		return nil, err
	}
	return ParseTokens(src, toks)
}

type frameKind int

const (
	frameSection frameKind = iota
	frameParent
	frameBlock
)

// openFrame tracks one not-yet-closed Section/Parent/Block tag while
// folding the token stream into a tree.
type openFrame struct {
	kind frameKind

	matchName string // name the matching Close tag's Raw must equal
	pos       span.Pos

	// Section
	name        DottedName
	inverted    bool
	sourceStart int // byte offset right after the open tag, for SourceSlice

	// Parent
	dynamic   bool
	indent    string
	overrides map[string][]Node

	// shared body accumulator: Section/Block children, or Parent's
	// discarded-scratch (Parent itself never accumulates into children).
	children []Node
}

type parser struct {
	src    string
	root   []Node
	stack  []*openFrame
	tokens []token.Token
}

// ParseTokens builds a Node tree from an already-tokenized template. src
// must be the exact string the tokens were produced from (SectionNode's
// SourceSlice and standalone-trim both index into it).
func ParseTokens(src string, toks []token.Token) (*Tree, error) {
	p := &parser{src: src, tokens: toks}
	skipUntil := -1

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		if t.Kind == token.Text {
			start, end := t.Start, t.End
			if skipUntil >= 0 {
				if end <= skipUntil {
					continue
				}
				if start < skipUntil {
					start = skipUntil
				}
			}
			if start < end {
				p.append(&TextNode{Text: src[start:end]})
			}
			continue
		}

		standalone, indent, removeTo := false, "", -1
		if isStandaloneEligible(t.Kind) {
			standalone, indent, removeTo = detectStandalone(src, t)
		}
		if standalone {
			p.truncateTrailingIndent(t.Start)
			skipUntil = removeTo
		}

		switch t.Kind {
		case token.Interpolation:
			p.append(&InterpolationNode{Name: ParseDottedName(t.Raw), Escape: true})
		case token.InterpolationUnescaped:
			p.append(&InterpolationNode{Name: ParseDottedName(t.Raw), Escape: false})
		case token.Comment:
			// no AST node
		case token.SetDelim:
			// delimiters already applied by the tokenizer; nothing to record
		case token.SectionOpen, token.InvertedOpen:
			p.stack = append(p.stack, &openFrame{
				kind: frameSection, matchName: t.Raw, pos: t.Pos,
				name: ParseDottedName(t.Raw), inverted: t.Kind == token.InvertedOpen,
				sourceStart: t.End,
			})
		case token.Block:
			p.stack = append(p.stack, &openFrame{
				kind: frameBlock, matchName: t.Raw, pos: t.Pos,
			})
		case token.Parent:
			dynamic, name := splitDynamic(t.Raw)
			f := &openFrame{
				kind: frameParent, matchName: name, pos: t.Pos,
				name: ParseDottedName(name), dynamic: dynamic,
				overrides: map[string][]Node{},
			}
			if standalone {
				f.indent = indent
			}
			p.stack = append(p.stack, f)
		case token.Partial:
			dynamic, name := splitDynamic(t.Raw)
			pn := &PartialNode{Name: ParseDottedName(name), Dynamic: dynamic}
			if standalone {
				pn.Indent = indent
			}
			p.append(pn)
		case token.Close:
			if err := p.closeFrame(t); err != nil {
				return nil, err
			}
		}
	}

	if len(p.stack) != 0 {
		top := p.stack[len(p.stack)-1]
		return nil, &Error{Pos: top.pos, Msg: fmt.Sprintf("unclosed %s %q at end of input", frameKindName(top.kind), top.matchName)}
	}
	return &Tree{Root: p.root}, nil
}

// splitDynamic strips exactly one leading '*' dynamic-name marker.
func splitDynamic(raw string) (dynamic bool, name string) {
	if strings.HasPrefix(raw, "*") {
		return true, raw[1:]
	}
	return false, raw
}

func frameKindName(k frameKind) string {
	switch k {
	case frameSection:
		return "section"
	case frameParent:
		return "parent"
	case frameBlock:
		return "block"
	default:
		return "frame"
	}
}

func isStandaloneEligible(k token.Kind) bool {
	switch k {
	case token.SectionOpen, token.InvertedOpen, token.Close,
		token.Partial, token.Parent, token.Block,
		token.Comment, token.SetDelim:
		return true
	default:
		return false
	}
}

// append adds a completed node either to the innermost open frame or,
// for a Parent frame, into its Overrides map (discarding anything that
// is not a Block, per spec: "non-Block children inside a Parent scope
// are discarded").
func (p *parser) append(n Node) {
	if len(p.stack) == 0 {
		p.root = append(p.root, n)
		return
	}
	top := p.stack[len(p.stack)-1]
	if top.kind == frameParent {
		if bn, ok := n.(*BlockNode); ok {
			top.overrides[bn.Name] = append(top.overrides[bn.Name], bn.Default...)
		}
		return
	}
	top.children = append(top.children, n)
}

// truncateTrailingIndent removes the whitespace-only tail of the most
// recently appended Text node, back to (but not including) the prior
// newline, because a standalone tag's leading indent belongs to the
// tag's own Indent field, not to surrounding Text.
func (p *parser) truncateTrailingIndent(indentStart int) {
	var list *[]Node
	if len(p.stack) == 0 {
		list = &p.root
	} else {
		top := p.stack[len(p.stack)-1]
		if top.kind == frameParent {
			return // Parent frames don't accumulate Text at all
		}
		list = &top.children
	}
	if len(*list) == 0 {
		return
	}
	tn, ok := (*list)[len(*list)-1].(*TextNode)
	if !ok {
		return
	}
	if idx := strings.LastIndexByte(tn.Text, '\n'); idx >= 0 {
		tn.Text = tn.Text[:idx+1]
	} else {
		tn.Text = ""
	}
}

func (p *parser) closeFrame(t token.Token) error {
	if len(p.stack) == 0 {
		return &Error{Pos: t.Pos, Msg: fmt.Sprintf("unmatched close tag %q", t.Raw)}
	}
	top := p.stack[len(p.stack)-1]
	closeName := t.Raw
	if top.kind == frameParent {
		_, closeName = splitDynamic(closeName)
	}
	if top.matchName != closeName {
		return &Error{Pos: t.Pos, Msg: fmt.Sprintf("mismatched close tag: opened %q, closed %q", top.matchName, t.Raw)}
	}
	p.stack = p.stack[:len(p.stack)-1]

	switch top.kind {
	case frameSection:
		p.append(&SectionNode{
			Name: top.name, Inverted: top.inverted, Children: top.children,
			SourceSlice: p.src[top.sourceStart:t.Start],
		})
	case frameBlock:
		p.append(&BlockNode{Name: top.matchName, Default: top.children})
	case frameParent:
		p.append(&ParentNode{
			Name: top.name, Dynamic: top.dynamic, Indent: top.indent,
			Overrides: top.overrides,
		})
	}
	return nil
}

// detectStandalone reports whether t sits alone on its line (only
// whitespace before it since the last newline, and only whitespace after
// it up to the next newline or EOF). On success it returns the leading
// indent and the byte offset through which following Text should be
// trimmed (past the trailing line terminator, if any).
func detectStandalone(src string, t token.Token) (standalone bool, indent string, removeTo int) {
	if !t.LineLeading || !t.LineTrailing {
		return false, "", 0
	}
	lineStart := t.Start
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	indent = src[lineStart:t.Start]

	lineEnd := t.End
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}
	if lineEnd < len(src) {
		removeTo = lineEnd + 1
	} else {
		removeTo = lineEnd
	}
	return true, indent, removeTo
}
