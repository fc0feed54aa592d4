package template

import (
	"errors"
	"testing"
)

func hints(words ...string) []Hint {
	hs := make([]Hint, len(words))
	for i, w := range words {
		hs[i] = Hint{Word: w}
	}
	return hs
}

func TestBuildTokenSequence(t *testing.T) {
	tpl, err := Build("I __ to the _____", hints("go", "store"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	tokens := tpl.Tokens()
	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5", len(tokens))
	}

	wantKinds := []TokenKind{TokenLiteral, TokenBlank, TokenLiteral, TokenLiteral, TokenBlank}
	wantHints := []int{-1, 0, -1, -1, 1}
	for i, tok := range tokens {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d kind = %v, want %v", i, tok.Kind, wantKinds[i])
		}
		if tok.HintIndex != wantHints[i] {
			t.Errorf("token %d hint index = %d, want %d", i, tok.HintIndex, wantHints[i])
		}
	}

	if tpl.Blanks() != 2 {
		t.Errorf("blanks = %d, want 2", tpl.Blanks())
	}
}

func TestBuildMismatchRejected(t *testing.T) {
	tests := []struct {
		name   string
		masked string
		hints  []Hint
	}{
		{"too few hints", "I __ to the _____", hints("go")},
		{"too many hints", "I __ home", hints("go", "store")},
		{"no blanks with hints", "I go home", hints("go")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.masked, tt.hints)
			var merr *MalformedTemplateError
			if !errors.As(err, &merr) {
				t.Fatalf("got err %v, want MalformedTemplateError", err)
			}
		})
	}
}

func TestBuildNoBlanks(t *testing.T) {
	tpl, err := Build("plain sentence here", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if tpl.Blanks() != 0 {
		t.Errorf("blanks = %d, want 0", tpl.Blanks())
	}
}

func TestRevealIdempotent(t *testing.T) {
	tpl, err := Build("I __ to the _____", hints("go", "store"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	w1, err := tpl.Reveal(1)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	w2, err := tpl.Reveal(1)
	if err != nil {
		t.Fatalf("second reveal: %v", err)
	}
	if w1 != "store" || w2 != "store" {
		t.Errorf("reveal(1) = %q, %q; want store both times", w1, w2)
	}

	// Index 0 stays masked.
	if _, ok := tpl.Revealed(0); ok {
		t.Error("index 0 should remain masked")
	}
	if w, ok := tpl.Revealed(1); !ok || w != "store" {
		t.Errorf("revealed(1) = %q, %v; want store, true", w, ok)
	}
	if tpl.RevealedCount() != 1 {
		t.Errorf("revealed count = %d, want 1", tpl.RevealedCount())
	}
}

func TestRevealOutOfRange(t *testing.T) {
	tpl, err := Build("__ home", hints("go"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := tpl.Reveal(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("reveal(1) err = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := tpl.Reveal(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("reveal(-1) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDuplicateHintWordsRevealIndependently(t *testing.T) {
	tpl, err := Build("the __ saw the __", hints("dog", "dog"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if _, err := tpl.Reveal(0); err != nil {
		t.Fatalf("reveal(0): %v", err)
	}
	if _, ok := tpl.Revealed(1); ok {
		t.Error("revealing index 0 must not reveal index 1")
	}
}
