// Package history lists past attempts with their verdicts and an overall
// accuracy summary.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Imaliure/adaptive-language-learning/internal/router"
	"github.com/Imaliure/adaptive-language-learning/internal/screen"
	"github.com/Imaliure/adaptive-language-learning/internal/store"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/layout"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Stats    store.Stats
	Err      error
}

// HistoryScreen displays past attempts.
type HistoryScreen struct {
	attempts store.AttemptRepo
	rows     []store.Attempt
	stats    store.Stats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		attempts: attempts,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rows, err := s.attempts.Recent(ctx, pageSize)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := s.attempts.Summary(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: rows, Err: err}
		}
		return historyLoadedMsg{Attempts: rows, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.rows = msg.Attempts
		s.stats = msg.Stats
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No attempts yet. Go practice!")
	}

	var b strings.Builder

	summary := fmt.Sprintf("  %d attempts  ·  %.0f%% correct  ·  %.0f%% similarity  ·  %d reveals",
		s.stats.Total,
		s.stats.Accuracy()*100,
		s.stats.MeanSimilarity*100,
		s.stats.Reveals,
	)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(summary))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.rows) && i < start+visible; i++ {
		b.WriteString(s.renderRow(i, width))
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(i, width int) string {
	row := s.rows[i]

	verdict := theme.Incorrect.Render("✗")
	if row.Correct {
		verdict = theme.Correct.Render("✓")
	}

	line := fmt.Sprintf(" %s  %s  %s",
		verdict,
		row.Timestamp.Format("Jan 02 15:04"),
		row.MaskedEN,
	)
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = theme.Selected
		line = "▸" + line
	} else {
		line = " " + line
	}

	out := style.Render(truncate(line, width-2)) + "\n"

	if s.expanded[i] {
		detail := fmt.Sprintf(
			"      prompt:  %s\n      yours:   %s\n      correct: %s\n      similarity: %.0f%%",
			row.PromptTR, row.UserAnswer, row.CorrectAnswer, row.Similarity*100,
		)
		if row.Feedback != "" {
			detail += "\n      feedback: " + row.Feedback
		}
		out += theme.Hint.Render(detail) + "\n"
	}
	return out
}

func truncate(s string, limit int) string {
	if limit <= 3 || len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
