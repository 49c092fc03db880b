package token

import (
	"fmt"
	"strings"

	"github.com/inkwell-templates/mustache/delim"
	"github.com/inkwell-templates/mustache/internal/tracelog"
	"github.com/inkwell-templates/mustache/span"
)

// Tokenize scans src left-to-right under the given initial delimiters,
// producing a flat token stream. Set-delimiter tags reconfigure the
// delimiters used for everything after them; the reconfiguration is
// local to this call and never observed by the caller.
func Tokenize(src string, initial delim.Pair) ([]Token, error) {
	if err := initial.Validate(); err != nil {
		return nil, &Error{Pos: span.Pos{Line: 1, Col: 1}, Msg: err.Error()}
	}
	lx := &lexer{src: src, open: initial.Open, close: initial.Close}
	for lx.i < len(src) {
		if err := lx.step(); err != nil {
			return nil, err
		}
	}
	lx.markLineContext()
	return lx.tokens, nil
}

type lexer struct {
	src         string
	open, close string
	i           int
	tokens      []Token
}

func (lx *lexer) errAt(offset int, format string, args ...any) *Error {
	return &Error{Pos: span.Locate(lx.src, offset), Msg: fmt.Sprintf(format, args...)}
}

func (lx *lexer) step() error {
	idx := strings.Index(lx.src[lx.i:], lx.open)
	if idx < 0 {
		lx.emitText(lx.i, len(lx.src))
		lx.i = len(lx.src)
		return nil
	}
	idx += lx.i
	if idx > lx.i {
		lx.emitText(lx.i, idx)
	}
	lx.i = idx
	return lx.lexTag()
}

func (lx *lexer) emitText(start, end int) {
	if start >= end {
		return
	}
	lx.tokens = append(lx.tokens, Token{
		Kind: Text, Raw: lx.src[start:end],
		Start: start, End: end, Pos: span.Locate(lx.src, start),
	})
}

// lexTag consumes one tag starting at lx.i (which points at the open
// delimiter) and advances lx.i past its close delimiter.
func (lx *lexer) lexTag() error {
	tagStart := lx.i
	bodyStart := lx.i + len(lx.open)

	// Skip leading spaces/tabs to find the sigil, for triple-mustache
	// recognition (it must come straight after the open delimiter modulo
	// whitespace).
	j := bodyStart
	for j < len(lx.src) && (lx.src[j] == ' ' || lx.src[j] == '\t') {
		j++
	}

	if j < len(lx.src) && lx.src[j] == '{' {
		return lx.lexTripleMustache(tagStart, j)
	}

	end := strings.Index(lx.src[bodyStart:], lx.close)
	if end < 0 {
		return lx.errAt(tagStart, "unbalanced tag: no matching %q", lx.close)
	}
	end += bodyStart
	content := lx.src[bodyStart:end]
	tagEnd := end + len(lx.close)
	trimmed := strings.TrimSpace(content)

	if trimmed == "" {
		return lx.errAt(tagStart, "empty tag name")
	}

	sigil := trimmed[0]
	switch sigil {
	case '!':
		lx.emit(Comment, "", tagStart, tagEnd)
	case '=':
		return lx.lexSetDelim(tagStart, tagEnd, trimmed)
	case '&':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(InterpolationUnescaped, name, tagStart, tagEnd)
	case '#':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(SectionOpen, name, tagStart, tagEnd)
	case '^':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(InvertedOpen, name, tagStart, tagEnd)
	case '/':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(Close, name, tagStart, tagEnd)
	case '>':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(Partial, name, tagStart, tagEnd)
	case '<':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(Parent, name, tagStart, tagEnd)
	case '$':
		name := strings.TrimSpace(trimmed[1:])
		if name == "" {
			return lx.errAt(tagStart, "empty tag name")
		}
		lx.emit(Block, name, tagStart, tagEnd)
	default:
		lx.emit(Interpolation, trimmed, tagStart, tagEnd)
	}
	lx.i = tagEnd
	return nil
}

func (lx *lexer) lexTripleMustache(tagStart, braceAt int) error {
	extendedClose := "}" + lx.close
	searchFrom := braceAt + 1
	end := strings.Index(lx.src[searchFrom:], extendedClose)
	if end < 0 {
		return lx.errAt(tagStart, "unclosed triple-mustache (expected %q)", extendedClose)
	}
	end += searchFrom
	name := strings.TrimSpace(lx.src[searchFrom:end])
	if name == "" {
		return lx.errAt(tagStart, "empty tag name")
	}
	tagEnd := end + len(extendedClose)
	lx.emit(InterpolationUnescaped, name, tagStart, tagEnd)
	lx.i = tagEnd
	return nil
}

func (lx *lexer) lexSetDelim(tagStart, tagEnd int, trimmed string) error {
	if !strings.HasSuffix(trimmed, "=") || len(trimmed) < 2 {
		return lx.errAt(tagStart, "malformed set-delimiter tag %q", trimmed)
	}
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	parts := strings.Fields(inner)
	if len(parts) != 2 {
		return lx.errAt(tagStart, "malformed set-delimiter tag: want exactly two delimiters, got %q", inner)
	}
	newPair := delim.Pair{Open: parts[0], Close: parts[1]}
	if err := newPair.Validate(); err != nil {
		return lx.errAt(tagStart, "invalid set-delimiter tag: %s", err.Error())
	}
	lx.emit(SetDelim, parts[0]+" "+parts[1], tagStart, tagEnd)
	tracelog.Debugf("token: set-delimiters %q %q -> %q %q", lx.open, lx.close, newPair.Open, newPair.Close)
	lx.open, lx.close = newPair.Open, newPair.Close
	lx.i = tagEnd
	return nil
}

func (lx *lexer) emit(k Kind, raw string, start, end int) {
	tracelog.Tracef("token: %s %q [%d,%d)", k, raw, start, end)
	lx.tokens = append(lx.tokens, Token{
		Kind: k, Raw: raw, Start: start, End: end, Pos: span.Locate(lx.src, start),
	})
}

// markLineContext fills in LineLeading/LineTrailing for every token using
// whole-source whitespace scans once the full token stream is known.
func (lx *lexer) markLineContext() {
	for i := range lx.tokens {
		t := &lx.tokens[i]
		lineStart := t.Start
		for lineStart > 0 && lx.src[lineStart-1] != '\n' {
			lineStart--
		}
		t.LineLeading = isWhitespaceOnly(lx.src[lineStart:t.Start])

		lineEnd := t.End
		for lineEnd < len(lx.src) && lx.src[lineEnd] != '\n' {
			lineEnd++
		}
		t.LineTrailing = isWhitespaceOnly(lx.src[t.End:lineEnd])
	}
}

func isWhitespaceOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' && s[i] != '\r' {
			return false
		}
	}
	return true
}
