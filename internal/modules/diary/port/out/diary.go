package out

import (
	"context"
	"time"

	"mindbloom/internal/modules/diary/domain"
)

// EntryStore is the remote diary service. ListEntries returns entries
// newest first; the window bound is enforced server-side.
type EntryStore interface {
	ListEntries(ctx context.Context, userID string, windowDays int) ([]domain.Entry, error)
	SubmitEntry(ctx context.Context, userID string, draft domain.Draft) (domain.Entry, error)
}

// WindowCache is the local read-only projection of the most recently
// fetched entry window. Load also reports when that window was fetched
// so offline reads can say how old their data is.
type WindowCache interface {
	Replace(ctx context.Context, userID string, entries []domain.Entry) error
	Load(ctx context.Context, userID string) ([]domain.Entry, time.Time, error)
}
