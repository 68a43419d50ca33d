package lexer

import (
	"testing"

	"github.com/eap-lang/eap/pkg/token"
)

func tokenTypes(t *testing.T, toks []token.Token) []token.Type {
	t.Helper()
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize_GreekAndEnglishKeywordsFoldTogether(t *testing.T) {
	for _, src := range []string{"ΕΑΝ", "εαν", "ΈΑΝ", "έαν", "IF", "if"} {
		toks, errs := Tokenize(src)
		if len(errs) != 0 {
			t.Fatalf("%q: unexpected lexer errors: %v", src, errs)
		}
		if len(toks) != 2 || toks[0].Type != token.IF {
			t.Fatalf("%q: expected a single IF token, got %v", src, toks)
		}
	}
}

func TestTokenize_CompoundKeywordRecognizedAtomically(t *testing.T) {
	toks, errs := Tokenize("ΕΑΝ-ΤΕΛΟΣ")
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	if len(toks) != 2 || toks[0].Type != token.END_IF {
		t.Fatalf("expected a single END_IF token, got %v", toks)
	}
}

func TestTokenize_HyphenFallsBackToMinusWhenNotCompound(t *testing.T) {
	toks, errs := Tokenize("a-b")
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	got := tokenTypes(t, toks)
	want := []token.Type{token.IDENT, token.MINUS, token.IDENT, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestTokenize_RealVsIntegerLiterals(t *testing.T) {
	toks, errs := Tokenize("3.14 42 3..5")
	if len(errs) != 0 {
		t.Fatalf("unexpected lexer errors: %v", errs)
	}
	if toks[0].Type != token.REAL || toks[0].Literal != "3.14" {
		t.Fatalf("expected REAL 3.14, got %v", toks[0])
	}
	if toks[1].Type != token.INT || toks[1].Literal != "42" {
		t.Fatalf("expected INT 42, got %v", toks[1])
	}
	if toks[2].Type != token.INT || toks[3].Type != token.RANGE {
		t.Fatalf("expected 3 then .. (range), got %v %v", toks[2], toks[3])
	}
}

func TestTokenize_IllegalCharacterIsReported(t *testing.T) {
	_, errs := Tokenize("x := 1 @ 2")
	if len(errs) != 1 {
		t.Fatalf("expected exactly one lexer error, got %v", errs)
	}
}

func TestContainsAlgorithmKeyword(t *testing.T) {
	if !ContainsAlgorithmKeyword("ΑΛΓΟΡΙΘΜΟΣ Test;") {
		t.Fatal("expected ALGORITHM keyword to be detected")
	}
	if ContainsAlgorithmKeyword("ΑΡΧΗ ΤΕΛΟΣ") {
		t.Fatal("did not expect ALGORITHM keyword to be detected")
	}
}
