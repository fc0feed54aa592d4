package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: calm, study-friendly
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Sentence tokens
var (
	// MaskedWord renders an unrevealed blank.
	MaskedWord = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// RevealedWord renders a blank after its word was uncovered.
	RevealedWord = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Underline(true)

	// LiteralWord renders the visible words of the sentence.
	LiteralWord = lipgloss.NewStyle().
			Foreground(Text)

	// TokenCursor marks the token under the word cursor.
	TokenCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true)
)

// Feedback categories
var (
	FeedbackTypo    = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	FeedbackMissing = lipgloss.NewStyle().Foreground(Error).Bold(true)
	FeedbackExtra   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	FeedbackSpacing = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	FeedbackOther   = lipgloss.NewStyle().Foreground(TextDim).Bold(true)
)

// Recording states
var (
	RecordingLive = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Blink(true)

	RecordingBusy = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
