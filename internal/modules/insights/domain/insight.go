package domain

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

// High reports whether the recommendation should carry the urgent badge.
// The backend historically emitted "medium" for the normal tier; anything
// that is not "high" renders as normal.
func (p Priority) High() bool { return p == PriorityHigh }

// Insight is a backend-derived behavioral pattern. The client treats it
// as opaque display data.
type Insight struct {
	Kind        string
	Title       string
	Description string
	Impact      Impact
	Metric      string
}

// Recommendation is a backend-derived suggestion with a display icon.
type Recommendation struct {
	Title       string
	Description string
	Action      string
	Icon        Icon
	Priority    Priority
}

// StatsSummary is computed entirely server-side; the client renders it
// and never re-derives any field.
type StatsSummary struct {
	AvgMood      float64
	AvgSleep     float64
	AvgStress    float64
	BestMood     int
	WorstMood    int
	TotalEntries int
	MoodTrend    string
}

const TrendImproving = "improving"

// Analysis aggregates one analytics response. Any of the three parts may
// be absent on sparse data; absence means "insufficient data", never an
// error.
type Analysis struct {
	Stats           *StatsSummary
	Insights        []Insight
	Recommendations []Recommendation
}

// Sufficient reports whether there is anything worth rendering.
func (a Analysis) Sufficient() bool {
	return a.Stats != nil || len(a.Insights) > 0 || len(a.Recommendations) > 0
}

// SleepCaption bands average sleep the way the stat cards do.
func SleepCaption(avgSleep float64) string {
	if avgSleep >= 7 {
		return "good"
	}
	return "could be better"
}

// StressCaption bands average stress: low <= 4, moderate <= 7, else high.
func StressCaption(avgStress float64) string {
	switch {
	case avgStress <= 4:
		return "low"
	case avgStress <= 7:
		return "moderate"
	default:
		return "high"
	}
}
