package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSparklineScalesOntoBlocks(t *testing.T) {
	t.Parallel()
	plain := lipgloss.NewStyle()

	got := Sparkline([]float64{0, 5, 10}, 10, plain)
	if got != "▁▄█" {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestSparklineClampsOutOfRangeValues(t *testing.T) {
	t.Parallel()
	plain := lipgloss.NewStyle()

	got := Sparkline([]float64{-3, 15}, 10, plain)
	if got != "▁█" {
		t.Fatalf("out-of-range values must clamp, got %q", got)
	}
}

func TestSparklineEmptyInputsRenderNothing(t *testing.T) {
	t.Parallel()
	plain := lipgloss.NewStyle()

	if got := Sparkline(nil, 10, plain); got != "" {
		t.Fatalf("empty series must render empty, got %q", got)
	}
	if got := Sparkline([]float64{1, 2}, 0, plain); got != "" {
		t.Fatalf("non-positive max must render empty, got %q", got)
	}
}
