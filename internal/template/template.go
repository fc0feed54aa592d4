// Package template models a target-language sentence with masked blanks.
//
// A template string like "I __ to the _____" is split on whitespace; any
// segment containing the blank marker '_' becomes a blank that consumes the
// next hint in positional order. Reveal state is keyed by hint index, not by
// word identity, so duplicate hint words at different positions reveal
// independently.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the character that marks a masked segment.
const Marker = '_'

// TokenKind distinguishes literal words from masked blanks.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenBlank
)

// Token is one whitespace-delimited segment of the template.
type Token struct {
	Kind TokenKind
	// Text is the literal word, or the mask placeholder for blanks.
	Text string
	// HintIndex is the positional hint this blank consumes. -1 for literals.
	HintIndex int
}

// Hint is the word hidden behind one blank.
type Hint struct {
	Word string
}

// MalformedTemplateError reports a blank/hint count mismatch. It indicates a
// bad question payload from the provider, not a user error, and the question
// must not be rendered.
type MalformedTemplateError struct {
	Blanks int
	Hints  int
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template: %d blanks but %d hints", e.Blanks, e.Hints)
}

// ErrIndexOutOfRange is returned by Reveal for an index with no hint.
var ErrIndexOutOfRange = errors.New("reveal index out of range")

// Template is a masked sentence with monotonic per-blank reveal state.
type Template struct {
	tokens   []Token
	hints    []Hint
	revealed []bool
}

// Build parses a masked sentence into tokens, consuming hints positionally.
// The blank count must equal len(hints); a mismatch is rejected rather than
// silently truncated or padded, since either would corrupt the exercise.
func Build(masked string, hints []Hint) (*Template, error) {
	var tokens []Token
	blankCount := 0

	for _, part := range strings.Fields(masked) {
		if strings.ContainsRune(part, Marker) {
			tokens = append(tokens, Token{
				Kind:      TokenBlank,
				Text:      part,
				HintIndex: blankCount,
			})
			blankCount++
			continue
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: part, HintIndex: -1})
	}

	if blankCount != len(hints) {
		return nil, &MalformedTemplateError{Blanks: blankCount, Hints: len(hints)}
	}

	return &Template{
		tokens:   tokens,
		hints:    hints,
		revealed: make([]bool, len(hints)),
	}, nil
}

// Tokens returns the ordered token sequence.
func (t *Template) Tokens() []Token {
	return t.tokens
}

// Blanks returns the number of blank tokens.
func (t *Template) Blanks() int {
	return len(t.hints)
}

// Reveal discloses the hint word at index. Revealing is idempotent and
// monotonic: a revealed blank stays revealed for the life of the template.
func (t *Template) Reveal(index int) (string, error) {
	if index < 0 || index >= len(t.hints) {
		return "", ErrIndexOutOfRange
	}
	t.revealed[index] = true
	return t.hints[index].Word, nil
}

// Revealed reports whether the blank at index has been revealed, and if so
// returns its word.
func (t *Template) Revealed(index int) (string, bool) {
	if index < 0 || index >= len(t.hints) || !t.revealed[index] {
		return "", false
	}
	return t.hints[index].Word, true
}

// RevealedCount returns how many blanks have been revealed so far.
func (t *Template) RevealedCount() int {
	n := 0
	for _, r := range t.revealed {
		if r {
			n++
		}
	}
	return n
}
