package health

import (
	"context"
	"errors"
	"time"

	"github.com/rokufv/itadaki/internal/db"
	"github.com/rokufv/itadaki/internal/fuji"

	"github.com/google/uuid"
)

var (
	ErrInvalidCondition = errors.New("condition must be between 1 and 5")
	ErrInvalidFatigue   = errors.New("fatigue level must be between 1 and 5")
	ErrInvalidSleep     = errors.New("sleep hours must not be negative")
)

type Service struct {
	db  db.Querier
	now func() time.Time
}

func NewService(db db.Querier) *Service {
	return &Service{db: db, now: time.Now}
}

func (s *Service) RecordHealth(ctx context.Context, input Record) (Record, error) {
	if input.Condition < 1 || input.Condition > 5 {
		return Record{}, ErrInvalidCondition
	}
	if input.FatigueLevel < 1 || input.FatigueLevel > 5 {
		return Record{}, ErrInvalidFatigue
	}
	if input.SleepHours != nil && *input.SleepHours < 0 {
		return Record{}, ErrInvalidSleep
	}

	input.ID = uuid.NewString()
	if input.RecordedAt.IsZero() {
		input.RecordedAt = s.now()
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO health_records (id, member_id, condition, sleep_hours, fatigue_level, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING recorded_at
	`, input.ID, input.MemberID, input.Condition, input.SleepHours, input.FatigueLevel, input.RecordedAt)
	if err := row.Scan(&input.RecordedAt); err != nil {
		return Record{}, err
	}
	return input, nil
}

func (s *Service) Records(ctx context.Context, memberID string) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, member_id, condition, sleep_hours, fatigue_level, recorded_at
		FROM health_records WHERE member_id=$1
		ORDER BY recorded_at DESC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.MemberID, &r.Condition, &r.SleepHours, &r.FatigueLevel, &r.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Score computes the member's current safety score from their record history.
func (s *Service) Score(ctx context.Context, memberID string) (int, error) {
	records, err := s.Records(ctx, memberID)
	if err != nil {
		return 0, err
	}
	return SafetyScore(records, s.now()), nil
}

// HasRecentRecord reports whether the member logged any health record inside
// the 48h pre-departure window.
func (s *Service) HasRecentRecord(ctx context.Context, memberID string) (bool, error) {
	cutoff := s.now().Add(-fuji.RecentHealthCheckWindow)
	var ok bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM health_records
			WHERE member_id=$1 AND recorded_at >= $2
		)
	`, memberID, cutoff).Scan(&ok)
	return ok, err
}
