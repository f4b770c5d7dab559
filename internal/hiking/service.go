package hiking

import (
	"context"
	"errors"

	"github.com/rokufv/itadaki/internal/db"

	"github.com/google/uuid"
)

var (
	ErrInvalidElevation    = errors.New("elevation must be between 0 and 9000")
	ErrInvalidDistance     = errors.New("distance must be between 0 and 1000")
	ErrInvalidGain         = errors.New("elevation gain must not be negative")
	ErrMountainNameTaken   = errors.New("mountain name already exists")
	ErrMountainNameMissing = errors.New("mountain name required")
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) AddRecord(ctx context.Context, input Record) (Record, error) {
	if input.ElevationGainM < 0 {
		return Record{}, ErrInvalidGain
	}
	if input.DistanceKm < 0 {
		return Record{}, ErrInvalidDistance
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO hiking_records (id, member_id, mountain_name, elevation_gain_m, distance_km, difficulty, date, weather, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING recorded_at
	`, input.ID, input.MemberID, input.MountainName, input.ElevationGainM, input.DistanceKm,
		input.Difficulty, input.Date, input.Weather, input.Notes)
	if err := row.Scan(&input.RecordedAt); err != nil {
		return Record{}, err
	}
	return input, nil
}

func (s *Service) Records(ctx context.Context, memberID string) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, member_id, mountain_name, elevation_gain_m, distance_km, difficulty, date, weather, notes, recorded_at
		FROM hiking_records WHERE member_id=$1
		ORDER BY recorded_at DESC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.MemberID, &r.MountainName, &r.ElevationGainM, &r.DistanceKm,
			&r.Difficulty, &r.Date, &r.Weather, &r.Notes, &r.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *Service) DeleteRecord(ctx context.Context, recordID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM hiking_records WHERE id=$1`, recordID)
	return err
}

func (s *Service) AddMountain(ctx context.Context, input Mountain) (Mountain, error) {
	if input.Name == "" {
		return Mountain{}, ErrMountainNameMissing
	}
	if input.ElevationM < 0 || input.ElevationM > 9000 {
		return Mountain{}, ErrInvalidElevation
	}
	if input.DistanceKm < 0 || input.DistanceKm > 1000 {
		return Mountain{}, ErrInvalidDistance
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM mountains WHERE name=$1)
	`, input.Name).Scan(&exists); err != nil {
		return Mountain{}, err
	}
	if exists {
		return Mountain{}, ErrMountainNameTaken
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO mountains (id, name, elevation_m, distance_km)
		VALUES ($1,$2,$3,$4)
		RETURNING added_at
	`, input.ID, input.Name, input.ElevationM, input.DistanceKm)
	if err := row.Scan(&input.AddedAt); err != nil {
		return Mountain{}, err
	}
	return input, nil
}

func (s *Service) Mountains(ctx context.Context) ([]Mountain, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, elevation_m, distance_km, added_at
		FROM mountains ORDER BY added_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mountains []Mountain
	for rows.Next() {
		var m Mountain
		if err := rows.Scan(&m.ID, &m.Name, &m.ElevationM, &m.DistanceKm, &m.AddedAt); err != nil {
			return nil, err
		}
		mountains = append(mountains, m)
	}
	return mountains, nil
}
