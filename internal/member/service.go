package member

import (
	"context"
	"errors"

	"github.com/rokufv/itadaki/internal/db"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("name must be 1-50 characters")
	ErrInvalidAge       = errors.New("age must be between 0 and 150")
	ErrInvalidLevel     = errors.New("unknown experience level")
	ErrDuplicateName    = errors.New("member name already exists")
	ErrMemberNotFound   = errors.New("member not found")
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateMember(ctx context.Context, input Member) (Member, error) {
	if len([]rune(input.Name)) == 0 || len([]rune(input.Name)) > 50 {
		return Member{}, ErrInvalidName
	}
	if input.Age != nil && (*input.Age < 0 || *input.Age > 150) {
		return Member{}, ErrInvalidAge
	}
	if input.Experience == "" {
		input.Experience = LevelBeginner
	}
	if !input.Experience.Valid() {
		return Member{}, ErrInvalidLevel
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM members WHERE name=$1)
	`, input.Name).Scan(&exists); err != nil {
		return Member{}, err
	}
	if exists {
		return Member{}, ErrDuplicateName
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO members (id, name, age, experience_level)
		VALUES ($1,$2,$3,$4)
		RETURNING joined_at
	`, input.ID, input.Name, input.Age, input.Experience)
	if err := row.Scan(&input.JoinedAt); err != nil {
		return Member{}, err
	}
	return input, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (Member, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, age, experience_level, joined_at
		FROM members WHERE id=$1
	`, id)
	var m Member
	if err := row.Scan(&m.ID, &m.Name, &m.Age, &m.Experience, &m.JoinedAt); err != nil {
		return Member{}, ErrMemberNotFound
	}
	return m, nil
}

func (s *Service) Members(ctx context.Context) ([]Member, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, age, experience_level, joined_at
		FROM members ORDER BY joined_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Age, &m.Experience, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

// DeleteMember removes a member together with all of their health records,
// hiking records and gear checklist rows. Other members' data is untouched.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.GetMember(ctx, id); err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM health_records WHERE member_id=$1`, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM hiking_records WHERE member_id=$1`, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM gear_checks WHERE member_id=$1`, id); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	return err
}
