package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
)

// AppendLog stores a new entry. Entries are never updated afterwards.
func (s *Storage) AppendLog(ctx context.Context, entry models.WorkoutLogEntry) error {
	return appendLog(ctx, s.DB, entry)
}

func appendLog(ctx context.Context, q querier, entry models.WorkoutLogEntry) error {
	sets := entry.CompletedSets
	if sets == nil {
		sets = []models.CompletedSet{}
	}
	setsJSON, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("encoding completed sets: %w", err)
	}
	loggedAt := entry.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO workout_logs (id, date, lift, completed_sets, training_max_used, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.LogID,
		entry.Date,
		string(entry.Exercise),
		string(setsJSON),
		entry.TrainingMaxUsed,
		loggedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to append log %s: %w", entry.LogID, err)
	}
	return nil
}

const logColumns = `id, date, lift, completed_sets, training_max_used, logged_at`

// ListLogs returns the whole history, oldest first.
func (s *Storage) ListLogs(ctx context.Context) ([]models.WorkoutLogEntry, error) {
	return s.queryLogs(ctx,
		`SELECT `+logColumns+` FROM workout_logs ORDER BY date ASC, logged_at ASC`)
}

// RecentLogs returns up to n entries for lift, most recent date first.
// A non-positive n returns all of them.
func (s *Storage) RecentLogs(ctx context.Context, lift models.Lift, n int) ([]models.WorkoutLogEntry, error) {
	if n <= 0 {
		return s.queryLogs(ctx,
			`SELECT `+logColumns+` FROM workout_logs WHERE lift = ? ORDER BY date DESC, logged_at DESC`,
			string(lift))
	}
	return s.queryLogs(ctx,
		`SELECT `+logColumns+` FROM workout_logs WHERE lift = ? ORDER BY date DESC, logged_at DESC LIMIT ?`,
		string(lift), n)
}

// LogsBetween returns the entries dated from..to inclusive, oldest first.
func (s *Storage) LogsBetween(ctx context.Context, from, to string) ([]models.WorkoutLogEntry, error) {
	return s.queryLogs(ctx,
		`SELECT `+logColumns+` FROM workout_logs WHERE date >= ? AND date <= ? ORDER BY date ASC, logged_at ASC`,
		from, to)
}

func (s *Storage) queryLogs(ctx context.Context, query string, args ...any) ([]models.WorkoutLogEntry, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workout logs: %w", err)
	}
	defer rows.Close()

	var logs []models.WorkoutLogEntry
	for rows.Next() {
		entry, err := s.scanLog(rows)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			logs = append(logs, *entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout logs: %w", err)
	}
	return logs, nil
}

func (s *Storage) scanLog(rows *sql.Rows) (*models.WorkoutLogEntry, error) {
	var entry models.WorkoutLogEntry
	var lift, setsJSON, loggedAt string
	if err := rows.Scan(&entry.LogID, &entry.Date, &lift, &setsJSON, &entry.TrainingMaxUsed, &loggedAt); err != nil {
		return nil, fmt.Errorf("scanning workout log: %w", err)
	}
	entry.Exercise = models.Lift(lift)

	if err := json.Unmarshal([]byte(setsJSON), &entry.CompletedSets); err != nil {
		// Skip it; one bad row must not hide the rest of the history.
		s.log.Warn("skipping unreadable workout log", "id", entry.LogID, "error", err)
		return nil, nil
	}
	entry.LoggedAt, _ = time.Parse(time.RFC3339Nano, loggedAt)
	return &entry, nil
}
