package in

import (
	"context"

	"mindbloom/internal/modules/insights/dto"
	insightsin "mindbloom/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetAnalysis(ctx context.Context, userID string, windowDays int) (dto.AnalysisOutput, error) {
	return h.usecase.GetAnalysis(ctx, dto.GetAnalysisInput{UserID: userID, WindowDays: windowDays})
}
