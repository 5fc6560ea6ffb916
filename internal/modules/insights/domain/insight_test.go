package domain_test

import (
	"testing"

	"mindbloom/internal/modules/insights/domain"
)

func TestAnalysisSufficient(t *testing.T) {
	t.Parallel()
	if (domain.Analysis{}).Sufficient() {
		t.Fatalf("fully empty analysis must be insufficient")
	}
	if !(domain.Analysis{Stats: &domain.StatsSummary{TotalEntries: 5}}).Sufficient() {
		t.Fatalf("stats alone are sufficient")
	}
	if !(domain.Analysis{Insights: []domain.Insight{{Title: "x"}}}).Sufficient() {
		t.Fatalf("insights alone are sufficient")
	}
	if !(domain.Analysis{Recommendations: []domain.Recommendation{{Title: "x"}}}).Sufficient() {
		t.Fatalf("recommendations alone are sufficient")
	}
}

func TestSleepCaption(t *testing.T) {
	t.Parallel()
	if got := domain.SleepCaption(7); got != "good" {
		t.Fatalf("7h must read good, got %q", got)
	}
	if got := domain.SleepCaption(8.5); got != "good" {
		t.Fatalf("8.5h must read good, got %q", got)
	}
	if got := domain.SleepCaption(6.9); got != "could be better" {
		t.Fatalf("6.9h must read could be better, got %q", got)
	}
}

func TestStressCaption(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		avg  float64
		want string
	}{
		{1, "low"},
		{4, "low"},
		{4.1, "moderate"},
		{7, "moderate"},
		{7.1, "high"},
		{10, "high"},
	} {
		if got := domain.StressCaption(tc.avg); got != tc.want {
			t.Fatalf("StressCaption(%.1f) = %q, want %q", tc.avg, got, tc.want)
		}
	}
}

func TestPriorityHigh(t *testing.T) {
	t.Parallel()
	if !domain.PriorityHigh.High() {
		t.Fatalf("high priority must be urgent")
	}
	// The backend emits "medium" for the normal tier.
	for _, p := range []domain.Priority{domain.PriorityNormal, "medium", "low", ""} {
		if p.High() {
			t.Fatalf("priority %q must not be urgent", p)
		}
	}
}

func TestParseIconClosedSet(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"Moon", "Wind", "Footprints", "Brain", "Heart", "Zap", "Sparkles"} {
		icon := domain.ParseIcon(name)
		if icon == domain.IconDefault {
			t.Fatalf("known icon %q must not fall back", name)
		}
		if icon.Glyph() == "" {
			t.Fatalf("icon %q must have a glyph", name)
		}
	}
	for _, name := range []string{"", "moon", "Rocket", "<script>"} {
		if icon := domain.ParseIcon(name); icon != domain.IconDefault {
			t.Fatalf("unknown icon %q must fall back to default, got %q", name, icon)
		}
	}
	if got := domain.Icon("bogus").Glyph(); got != domain.IconDefault.Glyph() {
		t.Fatalf("glyph of unknown icon must be the default glyph, got %q", got)
	}
}
