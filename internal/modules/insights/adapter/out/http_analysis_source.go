package out

import (
	"context"
	"net/url"
	"strconv"

	"mindbloom/internal/modules/insights/domain"
	insightsout "mindbloom/internal/modules/insights/port/out"
	"mindbloom/internal/platform/httpx"
)

type HTTPAnalysisSource struct {
	client  *httpx.Client
	baseURL string
}

func NewHTTPAnalysisSource(client *httpx.Client, baseURL string) insightsout.AnalysisSource {
	return &HTTPAnalysisSource{client: client, baseURL: baseURL}
}

type wireStats struct {
	AvgMood      float64 `json:"avg_mood"`
	AvgSleep     float64 `json:"avg_sleep"`
	AvgStress    float64 `json:"avg_stress"`
	BestMood     int     `json:"best_mood"`
	WorstMood    int     `json:"worst_mood"`
	TotalEntries int     `json:"total_entries"`
	MoodTrend    string  `json:"mood_trend"`
}

type wireInsight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Metric      string `json:"metric"`
}

type wireRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Icon        string `json:"icon"`
	Priority    string `json:"priority"`
}

type analysisEnvelope struct {
	Insights        []wireInsight        `json:"insights"`
	Recommendations []wireRecommendation `json:"recommendations"`
	Stats           *wireStats           `json:"stats"`
}

func (s *HTTPAnalysisSource) GetAnalysis(ctx context.Context, userID string, windowDays int) (domain.Analysis, error) {
	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("days", strconv.Itoa(windowDays))

	var envelope analysisEnvelope
	if err := s.client.GetJSON(ctx, s.baseURL, query, &envelope); err != nil {
		return domain.Analysis{}, err
	}

	analysis := domain.Analysis{}
	if envelope.Stats != nil {
		analysis.Stats = &domain.StatsSummary{
			AvgMood:      envelope.Stats.AvgMood,
			AvgSleep:     envelope.Stats.AvgSleep,
			AvgStress:    envelope.Stats.AvgStress,
			BestMood:     envelope.Stats.BestMood,
			WorstMood:    envelope.Stats.WorstMood,
			TotalEntries: envelope.Stats.TotalEntries,
			MoodTrend:    envelope.Stats.MoodTrend,
		}
	}
	for _, w := range envelope.Insights {
		analysis.Insights = append(analysis.Insights, domain.Insight{
			Kind:        w.Type,
			Title:       w.Title,
			Description: w.Description,
			Impact:      domain.Impact(w.Impact),
			Metric:      w.Metric,
		})
	}
	for _, w := range envelope.Recommendations {
		analysis.Recommendations = append(analysis.Recommendations, domain.Recommendation{
			Title:       w.Title,
			Description: w.Description,
			Action:      w.Action,
			Icon:        domain.ParseIcon(w.Icon),
			Priority:    domain.Priority(w.Priority),
		})
	}
	return analysis, nil
}
