package dto

type GetAnalysisInput struct {
	UserID     string
	WindowDays int
}

type StatsOutput struct {
	AvgMood      float64
	AvgSleep     float64
	AvgStress    float64
	BestMood     int
	WorstMood    int
	TotalEntries int
	Improving    bool
	SleepNote    string
	StressNote   string
}

type InsightOutput struct {
	Title       string
	Description string
	Positive    bool
	Metric      string
}

type RecommendationOutput struct {
	Title       string
	Description string
	Glyph       string
	Urgent      bool
}

type AnalysisOutput struct {
	Stats           *StatsOutput
	Insights        []InsightOutput
	Recommendations []RecommendationOutput

	// Sufficient is false when the backend had too little data; the view
	// renders the neutral "add more entries" card instead of the report.
	Sufficient bool
}
