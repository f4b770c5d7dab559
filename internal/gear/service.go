package gear

import (
	"context"
	"errors"

	"github.com/rokufv/itadaki/internal/db"
	"github.com/rokufv/itadaki/internal/fuji"
)

var ErrUnknownItem = errors.New("unknown gear item")

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// SetItem marks a catalog item checked or unchecked for a member.
func (s *Service) SetItem(ctx context.Context, memberID, itemID string, checked bool) error {
	if !catalogHasItem(itemID) {
		return ErrUnknownItem
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO gear_checks (member_id, item_id, checked)
		VALUES ($1,$2,$3)
		ON CONFLICT (member_id, item_id) DO UPDATE SET checked=EXCLUDED.checked
	`, memberID, itemID, checked)
	return err
}

// Checklist returns the member's item states. Items absent from the map
// were never touched and count as unchecked.
func (s *Service) Checklist(ctx context.Context, memberID string) (map[string]bool, error) {
	rows, err := s.db.Query(ctx, `
		SELECT item_id, checked
		FROM gear_checks WHERE member_id=$1
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checklist := map[string]bool{}
	for rows.Next() {
		var itemID string
		var checked bool
		if err := rows.Scan(&itemID, &checked); err != nil {
			return nil, err
		}
		checklist[itemID] = checked
	}
	return checklist, nil
}

func (s *Service) Score(ctx context.Context, memberID string) (int, error) {
	checklist, err := s.Checklist(ctx, memberID)
	if err != nil {
		return 0, err
	}
	return Score(checklist), nil
}

func (s *Service) CriticalMissing(ctx context.Context, memberID string) (bool, error) {
	checklist, err := s.Checklist(ctx, memberID)
	if err != nil {
		return false, err
	}
	return HasCriticalMissing(checklist), nil
}

func catalogHasItem(itemID string) bool {
	for _, cat := range fuji.GearCategories {
		for _, item := range cat.Items {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}
