package out

import (
	"context"

	"mindbloom/internal/modules/subscription/domain"
)

// SubscriptionClient is the remote billing-status service.
type SubscriptionClient interface {
	FetchStatus(ctx context.Context, userID string) (domain.Status, error)
	Activate(ctx context.Context, userID string) (bool, string, error)
}
