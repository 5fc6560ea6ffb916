package dto

import "time"

type ListEntriesInput struct {
	UserID     string
	WindowDays int
}

type SubmitEntryInput struct {
	UserID      string
	Mood        int
	SleepHours  float64
	StressLevel int
	Activities  []string
	Notes       string
}

type EntryOutput struct {
	ID          string
	EntryDate   time.Time
	Mood        int
	SleepHours  float64
	StressLevel int
	Activities  []string
	Notes       string
}

type PointOutput struct {
	Date   string
	Mood   int
	Sleep  float64
	Stress int
}

// WindowOutput is the render-ready shape of one fetched entry window.
// FetchedAt is set only when the window came from the local cache.
type WindowOutput struct {
	Entries   []EntryOutput
	Series    []PointOutput
	Latest    *EntryOutput
	FetchedAt time.Time
}
