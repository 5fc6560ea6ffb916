package journal

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	diarydto "mindbloom/internal/modules/diary/dto"
	apperrors "mindbloom/internal/platform/errors"
)

type stubPort struct {
	mu          sync.Mutex
	listCalls   int
	submitCalls int
	submitMood  int
	submitActs  []string
	submitErr   error
}

func (s *stubPort) ListWindow(context.Context, string, int, int) (diarydto.WindowOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return diarydto.WindowOutput{}, nil
}

func (s *stubPort) Submit(_ context.Context, _ string, mood int, _ float64, _ int, activities []string, _ string) (diarydto.EntryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitCalls++
	s.submitMood = mood
	s.submitActs = activities
	if s.submitErr != nil {
		return diarydto.EntryOutput{}, s.submitErr
	}
	return diarydto.EntryOutput{ID: "e-1", Mood: mood}, nil
}

func sizedModel(port DiaryPort) Model {
	m := New(port, "u-1")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFirstLoadSettlesWithSeededToken(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	// The initial fetch carries the token seeded by New; its response
	// must not be treated as stale.
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})
	if m.loading {
		t.Fatalf("first response must settle the view")
	}
}

func TestLoadFailureDegradesToEmptyDashboard(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Err: apperrors.ErrTransport})

	view := m.View()
	if !strings.Contains(view, "No entries yet") {
		t.Fatalf("failed load must render the neutral empty state:\n%s", view)
	}
	if !strings.Contains(view, apperrors.ErrTransport.Error()) {
		t.Fatalf("load error must stay visible:\n%s", view)
	}
}

func TestDashboardDefaultsWithoutEntries(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})

	view := m.View()
	// Mood 7, sleep 7h and stress 5 are the placeholder summary values.
	for _, want := range []string{"Mood 7/10", "Sleep 7.0h (good)", "Stress 5/10 (moderate)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q on the empty dashboard:\n%s", want, view)
		}
	}
}

func TestLatestEntryDrivesSummaryCards(t *testing.T) {
	t.Parallel()
	latest := diarydto.EntryOutput{Mood: 3, SleepHours: 5.5, StressLevel: 2}
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{
		Entries: []diarydto.EntryOutput{latest},
		Series:  []diarydto.PointOutput{{Date: "30 Aug", Mood: 3, Sleep: 5.5, Stress: 2}},
		Latest:  &latest,
	}})

	view := m.View()
	for _, want := range []string{"Mood 3/10", "Sleep 5.5h (could be better)", "Stress 2/10 (low)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q on the dashboard:\n%s", want, view)
		}
	}
}

func TestSuccessfulSubmitClosesFormAndRefetches(t *testing.T) {
	t.Parallel()
	port := &stubPort{}
	m := sizedModel(port)
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})

	m, _ = m.Update(keyMsg("a"))
	if !m.FormOpen() {
		t.Fatalf("a must open the entry form")
	}

	// Simulate the submit round-trip succeeding.
	m, cmd := m.Update(EntrySubmittedMsg{Entry: diarydto.EntryOutput{ID: "e-1"}})
	if m.FormOpen() {
		t.Fatalf("successful submit must close the form")
	}
	if !m.loading || cmd == nil {
		t.Fatalf("successful submit must trigger a window re-fetch, never an optimistic append")
	}
	if m.reqSeq != 2 {
		t.Fatalf("re-fetch must carry a fresh token, got %d", m.reqSeq)
	}

	// The pre-submit window response is now stale.
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})
	if !m.loading {
		t.Fatalf("stale window response must be dropped after a submit")
	}
}

func TestFailedSubmitKeepsFormAndInputs(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})
	m, _ = m.Update(keyMsg("a"))
	m, _ = m.Update(keyMsg("9")) // mood field is focused first

	m, _ = m.Update(EntrySubmittedMsg{Err: apperrors.ErrTransport})
	if !m.FormOpen() {
		t.Fatalf("failed submit must keep the form open")
	}
	if got := m.form.mood.Value(); got != "9" {
		t.Fatalf("failed submit must preserve typed input, got %q", got)
	}
	if !strings.Contains(m.View(), apperrors.ErrTransport.Error()) {
		t.Fatalf("submit error must be rendered on the form")
	}
}

func TestActivityTogglesOnNumberKeys(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})
	m, _ = m.Update(keyMsg("a"))

	// tab to the activities field: mood -> sleep -> stress -> activities.
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = m.Update(keyMsg("1"))
	m, _ = m.Update(keyMsg("5"))
	if !m.form.selected["walk"] || !m.form.selected["reading"] {
		t.Fatalf("number keys must toggle activities, got %+v", m.form.selected)
	}
	m, _ = m.Update(keyMsg("1"))
	if m.form.selected["walk"] {
		t.Fatalf("second press must untoggle the activity")
	}
}

func TestEscCancelsAndResetsForm(t *testing.T) {
	t.Parallel()
	m := sizedModel(&stubPort{})
	m, _ = m.Update(WindowLoadedMsg{Seq: 1, Window: diarydto.WindowOutput{}})
	m, _ = m.Update(keyMsg("a"))
	m, _ = m.Update(keyMsg("9"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.FormOpen() {
		t.Fatalf("esc must close the form")
	}
	m, _ = m.Update(keyMsg("a"))
	if got := m.form.mood.Value(); got != "" {
		t.Fatalf("reopened form must start clean, got %q", got)
	}
}
