package in

import (
	"context"

	"mindbloom/internal/modules/subscription/dto"
)

type Usecase interface {
	// Status fetches the record; the backend creates a default
	// free/trial row on first query.
	Status(ctx context.Context, userID string) (dto.StatusOutput, error)

	// Activate posts the activate action and re-fetches the full record
	// (the activate payload is partial). Safe to retry server-side.
	Activate(ctx context.Context, userID string) (dto.ActivateOutput, error)
}
