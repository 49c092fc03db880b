package token

import (
	"testing"

	"github.com/inkwell-templates/mustache/delim"
)

func TestTokenizeBasic(t *testing.T) {
	toks, err := Tokenize("Hello, {{name}}!", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Text, Interpolation, Text}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got kind %s, want %s", i, toks[i].Kind, k)
		}
	}
	if toks[1].Raw != "name" {
		t.Fatalf("interpolation raw = %q, want %q", toks[1].Raw, "name")
	}
}

func TestTokenizeTripleMustache(t *testing.T) {
	toks, err := Tokenize("{{{company}}}", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != InterpolationUnescaped || toks[0].Raw != "company" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeAmpersandUnescaped(t *testing.T) {
	toks, err := Tokenize("{{& company}}", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != InterpolationUnescaped || toks[0].Raw != "company" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeSections(t *testing.T) {
	toks, err := Tokenize("{{#a}}{{^b}}{{/b}}{{/a}}", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{SectionOpen, InvertedOpen, Close, Close}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %s want %s", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeDynamicPartialRetainsStar(t *testing.T) {
	toks, err := Tokenize("{{>*which}}", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Kind != Partial || toks[0].Raw != "*which" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeSetDelimiters(t *testing.T) {
	toks, err := Tokenize("{{=<% %>=}}<%name%>", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Kind != SetDelim || toks[1].Kind != Interpolation || toks[1].Raw != "name" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeUnbalancedTagIsFatal(t *testing.T) {
	_, err := Tokenize("{{name", delim.Default())
	if err == nil {
		t.Fatal("expected error for unbalanced tag")
	}
	var tokErr *Error
	if !asError(err, &tokErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
}

func TestTokenizeEmptyTagNameIsFatal(t *testing.T) {
	_, err := Tokenize("{{ }}", delim.Default())
	if err == nil {
		t.Fatal("expected error for empty tag name")
	}
}

func TestTokenizeLineContextFlags(t *testing.T) {
	toks, err := Tokenize("  {{#sec}}  \ncontent", delim.Default())
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != Text || toks[0].Raw != "  " {
		t.Fatalf("got %+v", toks[0])
	}
	sec := toks[1]
	if sec.Kind != SectionOpen {
		t.Fatalf("got %+v", sec)
	}
	if !sec.LineLeading {
		t.Fatalf("expected LineLeading=true, got %+v", sec)
	}
	if !sec.LineTrailing {
		t.Fatalf("expected LineTrailing=true, got %+v", sec)
	}
}

func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
