package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"mindbloom/internal/modules/subscription/domain"
	subscriptionout "mindbloom/internal/modules/subscription/port/out"
	apperrors "mindbloom/internal/platform/errors"
)

type SubscriptionService struct {
	client subscriptionout.SubscriptionClient

	// activating guards the activate trigger: while one call is
	// outstanding no second concurrent call may be issued.
	activating atomic.Bool
}

func NewSubscriptionService(client subscriptionout.SubscriptionClient) *SubscriptionService {
	return &SubscriptionService{client: client}
}

func (s *SubscriptionService) Status(ctx context.Context, userID string) (domain.Status, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Status{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.client.FetchStatus(ctx, userID)
}

// Activate posts the activation and, on success, re-fetches the full
// status record. Repeated calls are retryable server-side; client-side
// re-entrancy is rejected with ErrActionInFlight.
func (s *SubscriptionService) Activate(ctx context.Context, userID string) (bool, string, domain.Status, error) {
	if strings.TrimSpace(userID) == "" {
		return false, "", domain.Status{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if !s.activating.CompareAndSwap(false, true) {
		return false, "", domain.Status{}, apperrors.ErrActionInFlight
	}
	defer s.activating.Store(false)

	ok, message, err := s.client.Activate(ctx, userID)
	if err != nil {
		return false, "", domain.Status{}, err
	}
	if !ok {
		return false, message, domain.Status{}, nil
	}
	status, err := s.client.FetchStatus(ctx, userID)
	if err != nil {
		return true, message, domain.Status{}, err
	}
	return true, message, status, nil
}
