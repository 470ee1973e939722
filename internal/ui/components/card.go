package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

// CardWidth returns the inner width used for question cards: room for the
// text plus padding, clamped to [20, 60].
func CardWidth(text string) int {
	return max(20, min(lipgloss.Width(text)+6, 60))
}

// QuestionCard wraps a question in a rounded-border card.
func QuestionCard(text string) string {
	return theme.Card.
		Width(CardWidth(text)).
		Align(lipgloss.Center).
		Render(theme.Question.Render(text))
}
