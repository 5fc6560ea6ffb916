package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single row of block glyphs scaled onto
// [0, max]. Values above max clamp to the top block; an empty series
// renders as an empty string so callers can suppress the chart entirely.
func Sparkline(values []float64, max float64, style lipgloss.Style) string {
	if len(values) == 0 || max <= 0 {
		return ""
	}
	var sb strings.Builder
	top := len(sparkRunes) - 1
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / max * float64(top))
		if idx > top {
			idx = top
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return style.Render(sb.String())
}
