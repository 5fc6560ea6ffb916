package domain_test

import (
	"testing"

	"mindbloom/internal/modules/diary/domain"
)

func TestDraftValidate(t *testing.T) {
	t.Parallel()
	valid := domain.Draft{Mood: 7, SleepHours: 7.5, StressLevel: 5}

	for name, tc := range map[string]struct {
		mutate func(*domain.Draft)
		ok     bool
	}{
		"baseline":             {func(d *domain.Draft) {}, true},
		"mood lower bound":     {func(d *domain.Draft) { d.Mood = 1 }, true},
		"mood upper bound":     {func(d *domain.Draft) { d.Mood = 10 }, true},
		"mood too low":         {func(d *domain.Draft) { d.Mood = 0 }, false},
		"mood too high":        {func(d *domain.Draft) { d.Mood = 11 }, false},
		"stress too low":       {func(d *domain.Draft) { d.StressLevel = 0 }, false},
		"stress too high":      {func(d *domain.Draft) { d.StressLevel = 11 }, false},
		"sleep zero":           {func(d *domain.Draft) { d.SleepHours = 0 }, true},
		"sleep negative":       {func(d *domain.Draft) { d.SleepHours = -0.5 }, false},
		"sleep half step":      {func(d *domain.Draft) { d.SleepHours = 6.5 }, true},
		"sleep off grid":       {func(d *domain.Draft) { d.SleepHours = 7.25 }, false},
		"known activities":     {func(d *domain.Draft) { d.Activities = []domain.Activity{domain.ActivityWalk, domain.ActivityNone} }, true},
		"unknown activity":     {func(d *domain.Draft) { d.Activities = []domain.Activity{"jogging"} }, false},
		"notes are free form":  {func(d *domain.Draft) { d.Notes = "slept badly, skipped lunch" }, true},
		"empty activity value": {func(d *domain.Draft) { d.Activities = []domain.Activity{""} }, false},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			draft := valid
			tc.mutate(&draft)
			err := draft.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid draft, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error, got nil")
			}
		})
	}
}

func TestValidWindow(t *testing.T) {
	t.Parallel()
	for _, days := range []int{7, 14, 30, 90} {
		if !domain.ValidWindow(days) {
			t.Fatalf("window %d must be allowed", days)
		}
	}
	for _, days := range []int{0, 1, 6, 15, 31, 365, -7} {
		if domain.ValidWindow(days) {
			t.Fatalf("window %d must be rejected", days)
		}
	}
}

func TestActivityLabel(t *testing.T) {
	t.Parallel()
	if got := domain.ActivityNone.Label(); got != "Rest day" {
		t.Fatalf("expected Rest day, got %q", got)
	}
	if got := domain.ActivityMeditation.Label(); got != "Meditation" {
		t.Fatalf("expected Meditation, got %q", got)
	}
}
