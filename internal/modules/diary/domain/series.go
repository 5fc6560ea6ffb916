package domain

// Point is one plot-ready sample of a trend chart.
type Point struct {
	Date   string
	Mood   int
	Sleep  float64
	Stress int
}

// MaxDashboardPoints bounds the home chart; MaxAnalyticsPoints bounds
// analytics charts even when a wider window (90 days) was fetched.
const (
	MaxDashboardPoints = 7
	MaxAnalyticsPoints = 30
)

// BuildSeries shapes a newest-first entry window into a chronologically
// ascending series of at most maxPoints samples. Missing calendar days
// stay absent: no gap filling, no de-duplication. Empty input yields an
// empty series and the chart is suppressed downstream.
func BuildSeries(entries []Entry, maxPoints int) []Point {
	if maxPoints <= 0 || len(entries) == 0 {
		return nil
	}
	n := maxPoints
	if len(entries) < n {
		n = len(entries)
	}
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		e := entries[n-1-i]
		points[i] = Point{
			Date:   e.EntryDate.Format("2 Jan"),
			Mood:   e.Mood,
			Sleep:  e.SleepHours,
			Stress: e.StressLevel,
		}
	}
	return points
}
