package service

import (
	"context"
	"fmt"
	"strings"

	diarydomain "mindbloom/internal/modules/diary/domain"
	"mindbloom/internal/modules/insights/domain"
	insightsout "mindbloom/internal/modules/insights/port/out"
	apperrors "mindbloom/internal/platform/errors"
)

type AnalysisService struct {
	source insightsout.AnalysisSource
}

func NewAnalysisService(source insightsout.AnalysisSource) *AnalysisService {
	return &AnalysisService{source: source}
}

func (s *AnalysisService) GetAnalysis(ctx context.Context, userID string, windowDays int) (domain.Analysis, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Analysis{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if !diarydomain.ValidWindow(windowDays) {
		return domain.Analysis{}, fmt.Errorf("%w: unsupported window %d days", apperrors.ErrInvalidInput, windowDays)
	}
	return s.source.GetAnalysis(ctx, userID, windowDays)
}
