package storage

import (
	"context"
)

func (s *Storage) HasProfile(ctx context.Context) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile").Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func logExists(ctx context.Context, q querier, id string) (bool, error) {
	var count int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM workout_logs WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
