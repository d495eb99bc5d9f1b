package storage

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/wendler/internal/models"
)

// LiftStat summarizes the logged history of one lift.
type LiftStat struct {
	Sessions   int
	LastLogged string
}

func (s *Storage) LiftStats(ctx context.Context) (map[models.Lift]LiftStat, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT lift, COUNT(*), MAX(date) FROM workout_logs GROUP BY lift`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lift stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[models.Lift]LiftStat)
	for rows.Next() {
		var lift string
		var st LiftStat
		if err := rows.Scan(&lift, &st.Sessions, &st.LastLogged); err != nil {
			return nil, fmt.Errorf("scanning lift stats: %w", err)
		}
		stats[models.Lift(lift)] = st
	}
	return stats, rows.Err()
}
