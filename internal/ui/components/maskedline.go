package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Imaliure/adaptive-language-learning/internal/template"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/theme"
)

// MaskedLine renders a masked sentence token by token. A word cursor
// highlights the token the learner is on; blanks show their underscore run
// until revealed.
type MaskedLine struct {
	Tmpl    *template.Template
	Cursor  int
	Focused bool
}

// NewMaskedLine creates a masked line over tmpl with the cursor on the
// first token.
func NewMaskedLine(tmpl *template.Template) MaskedLine {
	return MaskedLine{Tmpl: tmpl}
}

// MoveLeft moves the cursor one token left, stopping at the first.
func (m *MaskedLine) MoveLeft() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveRight moves the cursor one token right, stopping at the last.
func (m *MaskedLine) MoveRight() {
	if m.Tmpl != nil && m.Cursor < len(m.Tmpl.Tokens())-1 {
		m.Cursor++
	}
}

// Current returns the token under the cursor.
func (m MaskedLine) Current() (template.Token, bool) {
	if m.Tmpl == nil {
		return template.Token{}, false
	}
	toks := m.Tmpl.Tokens()
	if m.Cursor < 0 || m.Cursor >= len(toks) {
		return template.Token{}, false
	}
	return toks[m.Cursor], true
}

// View renders the sentence as one styled line.
func (m MaskedLine) View() string {
	if m.Tmpl == nil {
		return ""
	}

	parts := make([]string, 0, len(m.Tmpl.Tokens()))
	for i, tok := range m.Tmpl.Tokens() {
		var text string
		var style lipgloss.Style

		if tok.Kind == template.TokenLiteral {
			text = tok.Text
			style = theme.LiteralWord
		} else if word, ok := m.Tmpl.Revealed(tok.HintIndex); ok {
			text = word
			style = theme.RevealedWord
		} else {
			text = tok.Text
			style = theme.MaskedWord
		}

		if m.Focused && i == m.Cursor {
			style = theme.TokenCursor
		}
		parts = append(parts, style.Render(text))
	}

	return strings.Join(parts, " ")
}
