package usecase

import (
	"context"

	"mindbloom/internal/modules/subscription/domain"
	"mindbloom/internal/modules/subscription/dto"
	subscriptionin "mindbloom/internal/modules/subscription/port/in"
	"mindbloom/internal/modules/subscription/service"
)

type Interactor struct {
	svc *service.SubscriptionService
}

func NewInteractor(svc *service.SubscriptionService) subscriptionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(ctx context.Context, userID string) (dto.StatusOutput, error) {
	status, err := i.svc.Status(ctx, userID)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	return toStatusOutput(status), nil
}

func (i *Interactor) Activate(ctx context.Context, userID string) (dto.ActivateOutput, error) {
	ok, message, status, err := i.svc.Activate(ctx, userID)
	if err != nil {
		return dto.ActivateOutput{}, err
	}
	out := dto.ActivateOutput{Success: ok, Message: message}
	if ok {
		out.Status = toStatusOutput(status)
	}
	return out, nil
}

func toStatusOutput(status domain.Status) dto.StatusOutput {
	display := domain.EvaluateAccess(status)
	out := dto.StatusOutput{
		UserID:              status.UserID,
		Plan:                string(status.Plan),
		Lifecycle:           string(status.Lifecycle),
		HasAccess:           status.HasAccess,
		IsTrial:             status.IsTrial,
		DaysLeft:            status.DaysLeft,
		TrialEndDate:        status.TrialEndDate,
		SubscriptionEndDate: status.SubscriptionEndDate,
		Label:               string(display.Label),
		Badge:               string(display.Badge),
		CTA:                 string(display.CTA),
	}
	if err := status.CheckInvariant(); err != nil {
		out.InvariantNote = err.Error()
	}
	return out
}
