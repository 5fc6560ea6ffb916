package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mindbloom/internal/modules/diary/domain"
	diaryout "mindbloom/internal/modules/diary/port/out"
	"mindbloom/internal/platform/clock"

	_ "modernc.org/sqlite"
)

// SQLiteWindowCache keeps a read-only copy of the most recently fetched
// entry window so the CLI can answer offline. Replace swaps the whole
// window and stamps it with the fetch time; entries are never edited in
// place.
type SQLiteWindowCache struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteWindowCache(dbPath string, clk clock.Clock) (diaryout.WindowCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteWindowCache{db: db, clock: clk}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteWindowCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS entry_window (
  id TEXT NOT NULL,
  user_id TEXT NOT NULL,
  entry_date TEXT NOT NULL,
  mood INTEGER NOT NULL,
  sleep_hours REAL NOT NULL,
  stress_level INTEGER NOT NULL,
  activities TEXT,
  notes TEXT,
  created_at TEXT,
  PRIMARY KEY (user_id, id)
);
CREATE TABLE IF NOT EXISTS window_meta (
  user_id TEXT PRIMARY KEY,
  fetched_at TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create cache tables: %w", err)
	}
	return nil
}

func (c *SQLiteWindowCache) Replace(ctx context.Context, userID string, entries []domain.Entry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin window replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_window WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear window: %w", err)
	}
	const stmt = `
INSERT INTO entry_window (id, user_id, entry_date, mood, sleep_hours, stress_level, activities, notes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	for _, e := range entries {
		activities := make([]string, 0, len(e.Activities))
		for _, a := range e.Activities {
			activities = append(activities, string(a))
		}
		_, err := tx.ExecContext(ctx, stmt,
			e.ID,
			userID,
			e.EntryDate.Format("2006-01-02"),
			e.Mood,
			e.SleepHours,
			e.StressLevel,
			strings.Join(activities, ","),
			e.Notes,
			e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		)
		if err != nil {
			return fmt.Errorf("insert cached entry: %w", err)
		}
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO window_meta (user_id, fetched_at) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET fetched_at = excluded.fetched_at`,
		userID, c.clock.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("stamp window: %w", err)
	}
	return tx.Commit()
}

func (c *SQLiteWindowCache) Load(ctx context.Context, userID string) ([]domain.Entry, time.Time, error) {
	const query = `
SELECT id, entry_date, mood, sleep_hours, stress_level, activities, notes, created_at
FROM entry_window
WHERE user_id = ?
ORDER BY entry_date DESC;
`
	rows, err := c.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load cached window: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.Entry
	for rows.Next() {
		var (
			e          domain.Entry
			entryDate  string
			activities string
			createdAt  string
		)
		if err := rows.Scan(&e.ID, &entryDate, &e.Mood, &e.SleepHours, &e.StressLevel, &activities, &e.Notes, &createdAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan cached entry: %w", err)
		}
		e.UserID = userID
		if e.EntryDate, err = parseWireTime(entryDate); err != nil {
			return nil, time.Time{}, fmt.Errorf("cached entry_date: %w", err)
		}
		e.CreatedAt, _ = parseWireTime(createdAt)
		if activities != "" {
			for _, a := range strings.Split(activities, ",") {
				e.Activities = append(e.Activities, domain.Activity(a))
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}
	return entries, c.fetchedAt(ctx, userID), nil
}

// fetchedAt is best-effort; a missing stamp reads as the zero time.
func (c *SQLiteWindowCache) fetchedAt(ctx context.Context, userID string) time.Time {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM window_meta WHERE user_id = ?`, userID).Scan(&raw)
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
