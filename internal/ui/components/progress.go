package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathrush/internal/ui/theme"
)

// percentWidth is the space reserved for "  100%".
const percentWidth = 6

// ProgressBar displays a horizontal ratio bar, e.g. the share of a tier's
// questions that came from the fallback path.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns how many of the bar's cells are filled.
func (p ProgressBar) Filled() int {
	barWidth := p.barWidth()
	filled := int(float64(barWidth) * p.Percent)
	return max(0, min(filled, barWidth))
}

func (p ProgressBar) barWidth() int {
	w := p.Width
	if p.Label != "" {
		w -= lipgloss.Width(p.Label) + 2
	}
	if p.ShowPercent {
		w -= percentWidth
	}
	return max(w, 4)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	filled := p.Filled()
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", p.barWidth()-filled)))

	if p.ShowPercent {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%*d%%", percentWidth-1, int(p.Percent*100))))
	}

	return b.String()
}
