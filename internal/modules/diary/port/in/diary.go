package in

import (
	"context"

	"mindbloom/internal/modules/diary/dto"
)

type Usecase interface {
	// ListWindow fetches the trailing window and shapes it for display.
	// maxPoints bounds the chart series (7 dashboard, 30 analytics).
	ListWindow(ctx context.Context, input dto.ListEntriesInput, maxPoints int) (dto.WindowOutput, error)

	// ListCached serves the last successfully fetched window from the
	// local cache without touching the network.
	ListCached(ctx context.Context, userID string, maxPoints int) (dto.WindowOutput, error)

	// Submit validates the draft client-side and posts it. The caller
	// re-fetches the window after a successful submission.
	Submit(ctx context.Context, input dto.SubmitEntryInput) (dto.EntryOutput, error)
}
