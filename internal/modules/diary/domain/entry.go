package domain

import (
	"fmt"
	"math"
	"time"
)

type Activity string

const (
	ActivityWalk       Activity = "walk"
	ActivityWorkout    Activity = "workout"
	ActivityYoga       Activity = "yoga"
	ActivityMeditation Activity = "meditation"
	ActivityReading    Activity = "reading"
	ActivityNone       Activity = "none"
)

// DashboardWindowDays is the fixed entry window for the home journal view.
const DashboardWindowDays = 7

// AnalyticsWindows are the selectable entry windows for analytics views.
var AnalyticsWindows = []int{7, 14, 30, 90}

func (a Activity) Validate() error {
	switch a {
	case ActivityWalk, ActivityWorkout, ActivityYoga, ActivityMeditation, ActivityReading, ActivityNone:
		return nil
	default:
		return fmt.Errorf("unsupported activity %q", string(a))
	}
}

// Label returns the display name shown on the journal form.
func (a Activity) Label() string {
	switch a {
	case ActivityWalk:
		return "Walk"
	case ActivityWorkout:
		return "Workout"
	case ActivityYoga:
		return "Yoga"
	case ActivityMeditation:
		return "Meditation"
	case ActivityReading:
		return "Reading"
	case ActivityNone:
		return "Rest day"
	}
	return string(a)
}

// Entry is a stored diary record. Entries are immutable on the client:
// the store assigns the ID and the client only renders them.
type Entry struct {
	ID          string
	UserID      string
	EntryDate   time.Time
	Mood        int
	SleepHours  float64
	StressLevel int
	Activities  []Activity
	Notes       string
	CreatedAt   time.Time
}

// Draft is a not-yet-submitted entry. Validate rejects it before any
// network call is made.
type Draft struct {
	Mood        int
	SleepHours  float64
	StressLevel int
	Activities  []Activity
	Notes       string
}

func (d Draft) Validate() error {
	if d.Mood < 1 || d.Mood > 10 {
		return fmt.Errorf("mood must be within 1..10, got %d", d.Mood)
	}
	if d.StressLevel < 1 || d.StressLevel > 10 {
		return fmt.Errorf("stress level must be within 1..10, got %d", d.StressLevel)
	}
	if d.SleepHours < 0 {
		return fmt.Errorf("sleep hours must not be negative, got %.1f", d.SleepHours)
	}
	if half := d.SleepHours * 2; half != math.Trunc(half) {
		return fmt.Errorf("sleep hours must be in 0.5 steps, got %.2f", d.SleepHours)
	}
	for _, a := range d.Activities {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidWindow reports whether days is an allowed analytics window.
func ValidWindow(days int) bool {
	for _, w := range AnalyticsWindows {
		if w == days {
			return true
		}
	}
	return false
}
