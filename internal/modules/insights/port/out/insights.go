package out

import (
	"context"

	"mindbloom/internal/modules/insights/domain"
)

// AnalysisSource is the remote analytics service. All computation is
// server-side; the client only shapes the result for display.
type AnalysisSource interface {
	GetAnalysis(ctx context.Context, userID string, windowDays int) (domain.Analysis, error)
}
