package in

import (
	"context"

	"mindbloom/internal/modules/subscription/dto"
	subscriptionin "mindbloom/internal/modules/subscription/port/in"
)

type CLIHandler struct {
	usecase subscriptionin.Usecase
}

func NewCLIHandler(usecase subscriptionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context, userID string) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx, userID)
}

func (h CLIHandler) Activate(ctx context.Context, userID string) (dto.ActivateOutput, error) {
	return h.usecase.Activate(ctx, userID)
}
