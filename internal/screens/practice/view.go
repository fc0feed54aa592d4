package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Imaliure/adaptive-language-learning/internal/exercise"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/components"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.round.Phase() == exercise.PhaseLoading {
		return renderLoading(width)
	}
	return s.renderRound(width)
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n  " + msg + "\n\n  Ctrl+N to retry, Esc to go back.")
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Fetching question...")
}

func (s *PracticeScreen) renderRound(width int) string {
	q := s.round.Question()
	var b strings.Builder

	// Metadata badges.
	badges := make([]string, 0, 3)
	if q.Level != "" {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(q.Level))
	}
	if q.Topic != "" {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Topic))
	}
	if q.WordCount > 0 {
		badges = append(badges, lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d words", q.WordCount)))
	}
	if len(badges) > 0 {
		b.WriteString("  " + strings.Join(badges, "  ·  "))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Turkish prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(q.Source))
	b.WriteString("\n\n")

	// Masked sentence.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.line.View()))

	tmpl := s.round.Template()
	if tmpl != nil && tmpl.Blanks() > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d/%d revealed", tmpl.RevealedCount(), tmpl.Blanks())))
	}
	b.WriteString("\n\n")

	// Answer box with the submit affordance.
	check := components.NewButton("Check (Enter)", s.round.CanEdit() && !s.sentenceFocus, nil)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View() + "  " + check.View()))
	b.WriteString("\n")

	// Status / recording indicator.
	if s.round.Recording() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.RecordingLive.Render("● REC ") + theme.Hint.Render("Ctrl+R to stop")))
		b.WriteString("\n")
	} else if s.status != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.status))
		b.WriteString("\n")
	}

	// Result panel.
	if res := s.round.Result(); res != nil {
		b.WriteString("\n")
		b.WriteString(s.renderResult(width))
	}

	return b.String()
}

func (s *PracticeScreen) renderResult(width int) string {
	res := s.round.Result()
	var b strings.Builder

	verdict := theme.Incorrect.Render("✗ Not quite")
	if res.IsCorrect {
		verdict = theme.Correct.Render("✓ Correct!")
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(verdict))
	b.WriteString("\n")

	bar := components.NewProgressBar("Similarity", res.Similarity, true, min(width-8, 48))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	// Side-by-side comparison when wrong.
	if !res.IsCorrect {
		yours := theme.Hint.Render("yours:   ") + theme.Incorrect.Render(res.UserAnswer)
		correct := theme.Hint.Render("correct: ") + theme.Correct.Render(res.CorrectAnswer)
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(yours))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(correct))
		b.WriteString("\n")
	}

	if len(s.fb) > 0 {
		card := components.FeedbackCard{Items: s.fb, Width: min(width-8, 64)}
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card.View()))
		b.WriteString("\n")
	}

	next := components.NewButton("Next question (Ctrl+N)", true, nil)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(next.View()))

	return b.String()
}
