package out

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"mindbloom/internal/modules/diary/domain"
	diaryout "mindbloom/internal/modules/diary/port/out"
	apperrors "mindbloom/internal/platform/errors"
	"mindbloom/internal/platform/httpx"
)

type HTTPEntryStore struct {
	client  *httpx.Client
	baseURL string
}

func NewHTTPEntryStore(client *httpx.Client, baseURL string) diaryout.EntryStore {
	return &HTTPEntryStore{client: client, baseURL: baseURL}
}

type wireEntry struct {
	ID          any      `json:"id"`
	EntryDate   string   `json:"entry_date"`
	Mood        int      `json:"mood"`
	SleepHours  float64  `json:"sleep_hours"`
	StressLevel int      `json:"stress_level"`
	Activities  []string `json:"activities"`
	Notes       string   `json:"notes"`
	CreatedAt   string   `json:"created_at"`
}

type listEnvelope struct {
	Entries []wireEntry `json:"entries"`
}

type submitEnvelope struct {
	Entry wireEntry `json:"entry"`
}

type submitBody struct {
	UserID      string   `json:"user_id"`
	Mood        int      `json:"mood"`
	SleepHours  float64  `json:"sleep_hours"`
	StressLevel int      `json:"stress_level"`
	Activities  []string `json:"activities"`
	Notes       string   `json:"notes"`
}

func (s *HTTPEntryStore) ListEntries(ctx context.Context, userID string, windowDays int) ([]domain.Entry, error) {
	query := url.Values{}
	query.Set("user_id", userID)
	query.Set("days", strconv.Itoa(windowDays))

	var envelope listEnvelope
	if err := s.client.GetJSON(ctx, s.baseURL, query, &envelope); err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(envelope.Entries))
	for _, w := range envelope.Entries {
		entry, err := w.toDomain(userID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *HTTPEntryStore) SubmitEntry(ctx context.Context, userID string, draft domain.Draft) (domain.Entry, error) {
	activities := make([]string, 0, len(draft.Activities))
	for _, a := range draft.Activities {
		activities = append(activities, string(a))
	}
	body := submitBody{
		UserID:      userID,
		Mood:        draft.Mood,
		SleepHours:  draft.SleepHours,
		StressLevel: draft.StressLevel,
		Activities:  activities,
		Notes:       draft.Notes,
	}
	var envelope submitEnvelope
	if err := s.client.PostJSON(ctx, s.baseURL, body, &envelope); err != nil {
		return domain.Entry{}, err
	}
	return envelope.Entry.toDomain(userID)
}

func (w wireEntry) toDomain(userID string) (domain.Entry, error) {
	entryDate, err := parseWireTime(w.EntryDate)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("%w: entry_date %q", apperrors.ErrDecode, w.EntryDate)
	}
	createdAt, _ := parseWireTime(w.CreatedAt)

	activities := make([]domain.Activity, 0, len(w.Activities))
	for _, a := range w.Activities {
		activities = append(activities, domain.Activity(a))
	}
	return domain.Entry{
		ID:          fmt.Sprint(w.ID),
		UserID:      userID,
		EntryDate:   entryDate,
		Mood:        w.Mood,
		SleepHours:  w.SleepHours,
		StressLevel: w.StressLevel,
		Activities:  activities,
		Notes:       w.Notes,
		CreatedAt:   createdAt,
	}, nil
}

// parseWireTime accepts the two shapes the store emits: a bare ISO date
// for entry_date and a full timestamp for created_at.
func parseWireTime(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", raw)
}
