package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mindbloom/internal/modules/diary/domain"
	diaryout "mindbloom/internal/modules/diary/port/out"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testFetchTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T) diaryout.WindowCache {
	t.Helper()
	cache, err := NewSQLiteWindowCache(filepath.Join(t.TempDir(), "cache", "mindbloom.db"), fixedClock{now: testFetchTime})
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return cache
}

func cachedEntry(id string, date time.Time, activities ...domain.Activity) domain.Entry {
	return domain.Entry{
		ID:          id,
		EntryDate:   date,
		Mood:        7,
		SleepHours:  7.5,
		StressLevel: 4,
		Activities:  activities,
		Notes:       "note " + id,
		CreatedAt:   date.Add(9 * time.Hour),
	}
}

func TestWindowCacheReplaceAndLoad(t *testing.T) {
	t.Parallel()
	cache := newTestCache(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	entries := []domain.Entry{
		cachedEntry("b", base.AddDate(0, 0, -1), domain.ActivityYoga),
		cachedEntry("c", base.AddDate(0, 0, -2)),
		cachedEntry("a", base, domain.ActivityWalk, domain.ActivityReading),
	}
	if err := cache.Replace(ctx, "u-1", entries); err != nil {
		t.Fatalf("replace: %v", err)
	}

	loaded, fetchedAt, err := cache.Load(ctx, "u-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(loaded))
	}
	// Load returns newest first regardless of insertion order.
	if loaded[0].ID != "a" || loaded[1].ID != "b" || loaded[2].ID != "c" {
		t.Fatalf("unexpected order: %s %s %s", loaded[0].ID, loaded[1].ID, loaded[2].ID)
	}
	if len(loaded[0].Activities) != 2 || loaded[0].Activities[1] != domain.ActivityReading {
		t.Fatalf("activities must round-trip, got %+v", loaded[0].Activities)
	}
	if loaded[1].Notes != "note b" {
		t.Fatalf("notes must round-trip, got %q", loaded[1].Notes)
	}
	if !fetchedAt.Equal(testFetchTime) {
		t.Fatalf("window must be stamped with the fetch time, got %v", fetchedAt)
	}
}

func TestWindowCacheReplaceSwapsWholeWindow(t *testing.T) {
	t.Parallel()
	cache := newTestCache(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	if err := cache.Replace(ctx, "u-1", []domain.Entry{
		cachedEntry("old-1", base.AddDate(0, 0, -5)),
		cachedEntry("old-2", base.AddDate(0, 0, -6)),
	}); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := cache.Replace(ctx, "u-1", []domain.Entry{cachedEntry("new", base)}); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	loaded, _, err := cache.Load(ctx, "u-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "new" {
		t.Fatalf("replace must drop the previous window, got %+v", loaded)
	}
}

func TestWindowCacheIsolatesUsers(t *testing.T) {
	t.Parallel()
	cache := newTestCache(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	if err := cache.Replace(ctx, "u-1", []domain.Entry{cachedEntry("a", base)}); err != nil {
		t.Fatalf("replace u-1: %v", err)
	}
	if err := cache.Replace(ctx, "u-2", []domain.Entry{cachedEntry("x", base)}); err != nil {
		t.Fatalf("replace u-2: %v", err)
	}

	loaded, _, err := cache.Load(ctx, "u-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "a" {
		t.Fatalf("windows must be per-user, got %+v", loaded)
	}
}

func TestWindowCacheEmptyLoad(t *testing.T) {
	t.Parallel()
	cache := newTestCache(t)
	loaded, fetchedAt, err := cache.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty window, got %d entries", len(loaded))
	}
	if !fetchedAt.IsZero() {
		t.Fatalf("never-fetched window must have a zero stamp, got %v", fetchedAt)
	}
}
