package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindbloom/internal/modules/diary/domain"
	diaryout "mindbloom/internal/modules/diary/port/out"
	apperrors "mindbloom/internal/platform/errors"
)

type EntryService struct {
	store diaryout.EntryStore
	cache diaryout.WindowCache
}

func NewEntryService(store diaryout.EntryStore, cache diaryout.WindowCache) *EntryService {
	return &EntryService{store: store, cache: cache}
}

// ListWindow fetches the trailing window for userID. A successful fetch
// replaces the local window cache; a cache write failure never fails the
// read.
func (s *EntryService) ListWindow(ctx context.Context, userID string, windowDays int) ([]domain.Entry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if windowDays != domain.DashboardWindowDays && !domain.ValidWindow(windowDays) {
		return nil, fmt.Errorf("%w: unsupported window %d days", apperrors.ErrInvalidInput, windowDays)
	}
	entries, err := s.store.ListEntries(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Replace(ctx, userID, entries)
	}
	return entries, nil
}

// ListCached reads the last fetched window without the network, along
// with the time that window was fetched.
func (s *EntryService) ListCached(ctx context.Context, userID string) ([]domain.Entry, time.Time, error) {
	if s.cache == nil {
		return nil, time.Time{}, apperrors.ErrInsufficientData
	}
	entries, fetchedAt, err := s.cache.Load(ctx, userID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if len(entries) == 0 {
		return nil, time.Time{}, apperrors.ErrInsufficientData
	}
	return entries, fetchedAt, nil
}

// Submit rejects invalid drafts before any network call is made.
func (s *EntryService) Submit(ctx context.Context, userID string, draft domain.Draft) (domain.Entry, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Entry{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if err := draft.Validate(); err != nil {
		return domain.Entry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.store.SubmitEntry(ctx, userID, draft)
}
