package usecase

import (
	"context"

	"mindbloom/internal/modules/insights/domain"
	"mindbloom/internal/modules/insights/dto"
	insightsin "mindbloom/internal/modules/insights/port/in"
	"mindbloom/internal/modules/insights/service"
)

type Interactor struct {
	svc *service.AnalysisService
}

func NewInteractor(svc *service.AnalysisService) insightsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetAnalysis(ctx context.Context, input dto.GetAnalysisInput) (dto.AnalysisOutput, error) {
	analysis, err := i.svc.GetAnalysis(ctx, input.UserID, input.WindowDays)
	if err != nil {
		return dto.AnalysisOutput{}, err
	}

	out := dto.AnalysisOutput{Sufficient: analysis.Sufficient()}
	if stats := analysis.Stats; stats != nil {
		out.Stats = &dto.StatsOutput{
			AvgMood:      stats.AvgMood,
			AvgSleep:     stats.AvgSleep,
			AvgStress:    stats.AvgStress,
			BestMood:     stats.BestMood,
			WorstMood:    stats.WorstMood,
			TotalEntries: stats.TotalEntries,
			Improving:    stats.MoodTrend == domain.TrendImproving,
			SleepNote:    domain.SleepCaption(stats.AvgSleep),
			StressNote:   domain.StressCaption(stats.AvgStress),
		}
	}
	for _, insight := range analysis.Insights {
		out.Insights = append(out.Insights, dto.InsightOutput{
			Title:       insight.Title,
			Description: insight.Description,
			Positive:    insight.Impact == domain.ImpactPositive,
			Metric:      insight.Metric,
		})
	}
	for _, rec := range analysis.Recommendations {
		out.Recommendations = append(out.Recommendations, dto.RecommendationOutput{
			Title:       rec.Title,
			Description: rec.Description,
			Glyph:       rec.Icon.Glyph(),
			Urgent:      rec.Priority.High(),
		})
	}
	return out, nil
}
