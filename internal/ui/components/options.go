package components

import (
	"strings"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

// OptionList renders labeled multiple-choice options, one per line.
// Marked, when non-negative, is the index shown as the correct option.
type OptionList struct {
	Labels  []string
	Options []string
	Marked  int
}

// View renders the option list.
func (o OptionList) View() string {
	lines := make([]string, 0, len(o.Options))
	for i, opt := range o.Options {
		label := ""
		if i < len(o.Labels) {
			label = o.Labels[i]
		}
		text := theme.Body.Render(opt)
		if i == o.Marked {
			text = theme.Correct.Render(opt + "  ✓")
		}
		lines = append(lines, "  "+theme.OptionLabel.Render(label+")")+" "+text)
	}
	return strings.Join(lines, "\n")
}
