package in

import (
	"context"

	"mindbloom/internal/modules/insights/dto"
)

type Usecase interface {
	GetAnalysis(ctx context.Context, input dto.GetAnalysisInput) (dto.AnalysisOutput, error)
}
