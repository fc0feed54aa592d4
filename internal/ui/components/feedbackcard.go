package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Imaliure/adaptive-language-learning/internal/feedback"
	"github.com/Imaliure/adaptive-language-learning/internal/ui/theme"
)

// FeedbackCard renders classified grading feedback, one line per item with
// a category-colored label.
type FeedbackCard struct {
	Items []feedback.Item
	Width int
}

func categoryStyle(c feedback.Category) lipgloss.Style {
	switch c {
	case feedback.CategoryTypo:
		return theme.FeedbackTypo
	case feedback.CategoryMissingWord:
		return theme.FeedbackMissing
	case feedback.CategoryExtraWord:
		return theme.FeedbackExtra
	case feedback.CategorySpacing:
		return theme.FeedbackSpacing
	default:
		return theme.FeedbackOther
	}
}

// View renders the card, empty string when there are no items.
func (f FeedbackCard) View() string {
	if len(f.Items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(f.Items))
	for _, item := range f.Items {
		label := categoryStyle(item.Category).Render(item.Label)
		detail := theme.Body.Render(item.Detail)
		lines = append(lines, label+"  "+detail)
	}

	card := theme.Card
	if f.Width > 0 {
		card = card.Width(f.Width)
	}
	return card.Render(strings.Join(lines, "\n"))
}
