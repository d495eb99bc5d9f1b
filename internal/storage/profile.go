package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
)

// ErrNoProfile is returned when no usable profile is stored. Callers send the
// user to setup.
var ErrNoProfile = wendler.ErrNoProfile

type profileRow struct {
	id, name, startDate, unitSystem, weightDisplay string
	schedule, oneRepMaxes, trainingMaxes           string
}

func (s *Storage) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return s.getProfile(ctx, s.DB)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Storage) getProfile(ctx context.Context, q querier) (*models.UserProfile, error) {
	var row profileRow
	var name sql.NullString
	err := q.QueryRowContext(ctx,
		`SELECT id, name, start_date, unit_system, weight_display, schedule, one_rep_maxes, training_maxes
		FROM profile WHERE singleton = 1`,
	).Scan(
		&row.id,
		&name,
		&row.startDate,
		&row.unitSystem,
		&row.weightDisplay,
		&row.schedule,
		&row.oneRepMaxes,
		&row.trainingMaxes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	row.name = name.String

	profile, err := row.decode()
	if err != nil {
		// A profile we cannot read is worse than none: drop it and start over.
		s.log.Warn("discarding unreadable profile", "id", row.id, "error", err)
		if _, delErr := q.ExecContext(ctx, `DELETE FROM profile WHERE id = ?`, row.id); delErr != nil {
			return nil, fmt.Errorf("failed to discard profile: %w", delErr)
		}
		return nil, ErrNoProfile
	}
	return profile, nil
}

func (r profileRow) decode() (*models.UserProfile, error) {
	p := &models.UserProfile{
		ID:            r.id,
		Name:          r.name,
		StartDate:     r.startDate,
		UnitSystem:    models.UnitSystem(r.unitSystem),
		WeightDisplay: models.WeightDisplay(r.weightDisplay),
	}
	if err := json.Unmarshal([]byte(r.schedule), &p.Schedule); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if err := json.Unmarshal([]byte(r.oneRepMaxes), &p.OneRepMaxes); err != nil {
		return nil, fmt.Errorf("one rep maxes: %w", err)
	}
	if err := json.Unmarshal([]byte(r.trainingMaxes), &p.TrainingMaxes); err != nil {
		return nil, fmt.Errorf("training maxes: %w", err)
	}
	return p, nil
}

// SaveProfile replaces the stored profile. The training maxes are written as
// given; they are never recomputed here.
func (s *Storage) SaveProfile(ctx context.Context, p *models.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveProfile(ctx, tx, p); err != nil {
		return err
	}
	return tx.Commit()
}

func saveProfile(ctx context.Context, tx *sql.Tx, p *models.UserProfile) error {
	schedule := p.Schedule
	if schedule == nil {
		schedule = []models.ScheduleEntry{}
	}
	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	ormJSON, err := json.Marshal(nonNil(p.OneRepMaxes))
	if err != nil {
		return fmt.Errorf("encoding one rep maxes: %w", err)
	}
	tmJSON, err := json.Marshal(nonNil(p.TrainingMaxes))
	if err != nil {
		return fmt.Errorf("encoding training maxes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM profile`); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO profile
			(id, singleton, name, start_date, unit_system, weight_display, schedule, one_rep_maxes, training_maxes, updated_at)
			VALUES (?, 1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Name,
		p.StartDate,
		string(p.UnitSystem),
		string(p.WeightDisplay),
		string(scheduleJSON),
		string(ormJSON),
		string(tmJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func nonNil(m map[models.Lift]float64) map[models.Lift]float64 {
	if m == nil {
		return map[models.Lift]float64{}
	}
	return m
}

// ResetProgress zeroes every max, clears the schedule, moves the start date to
// today and wipes the workout log, all in one transaction.
func (s *Storage) ResetProgress(ctx context.Context, today time.Time) (*models.UserProfile, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := s.getProfile(ctx, tx)
	if errors.Is(err, ErrNoProfile) {
		// Commit so an unreadable row dropped by getProfile stays dropped.
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit discard: %w", err)
		}
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	reset := current.Reset(today)
	if err := saveProfile(ctx, tx, &reset); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_logs`); err != nil {
		return nil, fmt.Errorf("clearing workout log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reset: %w", err)
	}
	s.log.Info("progress reset", "start_date", reset.StartDate)
	return &reset, nil
}
