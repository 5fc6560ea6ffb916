package in

import (
	"context"

	"mindbloom/internal/modules/diary/dto"
	diaryin "mindbloom/internal/modules/diary/port/in"
)

type CLIHandler struct {
	usecase diaryin.Usecase
}

func NewCLIHandler(usecase diaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListWindow(ctx context.Context, userID string, windowDays, maxPoints int) (dto.WindowOutput, error) {
	return h.usecase.ListWindow(ctx, dto.ListEntriesInput{UserID: userID, WindowDays: windowDays}, maxPoints)
}

func (h CLIHandler) ListCached(ctx context.Context, userID string, maxPoints int) (dto.WindowOutput, error) {
	return h.usecase.ListCached(ctx, userID, maxPoints)
}

func (h CLIHandler) Submit(ctx context.Context, userID string, mood int, sleepHours float64, stress int, activities []string, notes string) (dto.EntryOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitEntryInput{
		UserID:      userID,
		Mood:        mood,
		SleepHours:  sleepHours,
		StressLevel: stress,
		Activities:  activities,
		Notes:       notes,
	})
}
