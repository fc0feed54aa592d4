// Package speech synthesizes English words and sentences through a system
// text-to-speech engine. A new utterance interrupts whatever is currently
// playing.
package speech

import "strings"

// Sanitize prepares a token for dictation: sentence punctuation is dropped
// (apostrophes stay, "don't" must survive) and a bare "I" is lowercased so
// engines read the word rather than spelling the letter.
func Sanitize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		switch r {
		case '.', ',', '!', '?':
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "I" {
		return "i"
	}
	return out
}
