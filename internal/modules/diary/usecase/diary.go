package usecase

import (
	"context"

	"mindbloom/internal/modules/diary/domain"
	"mindbloom/internal/modules/diary/dto"
	diaryin "mindbloom/internal/modules/diary/port/in"
	"mindbloom/internal/modules/diary/service"
)

type Interactor struct {
	svc *service.EntryService
}

func NewInteractor(svc *service.EntryService) diaryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListWindow(ctx context.Context, input dto.ListEntriesInput, maxPoints int) (dto.WindowOutput, error) {
	entries, err := i.svc.ListWindow(ctx, input.UserID, input.WindowDays)
	if err != nil {
		return dto.WindowOutput{}, err
	}
	return toWindowOutput(entries, maxPoints), nil
}

func (i *Interactor) ListCached(ctx context.Context, userID string, maxPoints int) (dto.WindowOutput, error) {
	entries, fetchedAt, err := i.svc.ListCached(ctx, userID)
	if err != nil {
		return dto.WindowOutput{}, err
	}
	out := toWindowOutput(entries, maxPoints)
	out.FetchedAt = fetchedAt
	return out, nil
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitEntryInput) (dto.EntryOutput, error) {
	activities := make([]domain.Activity, 0, len(input.Activities))
	for _, a := range input.Activities {
		activities = append(activities, domain.Activity(a))
	}
	entry, err := i.svc.Submit(ctx, input.UserID, domain.Draft{
		Mood:        input.Mood,
		SleepHours:  input.SleepHours,
		StressLevel: input.StressLevel,
		Activities:  activities,
		Notes:       input.Notes,
	})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toEntryOutput(entry), nil
}

func toWindowOutput(entries []domain.Entry, maxPoints int) dto.WindowOutput {
	out := dto.WindowOutput{Entries: make([]dto.EntryOutput, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, toEntryOutput(e))
	}
	if len(out.Entries) > 0 {
		latest := out.Entries[0]
		out.Latest = &latest
	}
	for _, p := range domain.BuildSeries(entries, maxPoints) {
		out.Series = append(out.Series, dto.PointOutput{Date: p.Date, Mood: p.Mood, Sleep: p.Sleep, Stress: p.Stress})
	}
	return out
}

func toEntryOutput(e domain.Entry) dto.EntryOutput {
	activities := make([]string, 0, len(e.Activities))
	for _, a := range e.Activities {
		activities = append(activities, string(a))
	}
	return dto.EntryOutput{
		ID:          e.ID,
		EntryDate:   e.EntryDate,
		Mood:        e.Mood,
		SleepHours:  e.SleepHours,
		StressLevel: e.StressLevel,
		Activities:  activities,
		Notes:       e.Notes,
	}
}
