package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/rokufv/itadaki/internal/db"
	"github.com/rokufv/itadaki/internal/fuji"
	"github.com/rokufv/itadaki/internal/shared/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEntryIncomplete   = errors.New("time and activity are required")
	ErrEntryNotFound     = errors.New("plan entry not found")
	ErrSelectionRequired = errors.New("route and hut must be selected first")
	ErrHutNotFound       = errors.New("hut not found on route")
)

// Broadcaster pushes plan updates to watching clients. The stream hub
// satisfies this; a nil broadcaster disables pushes.
type Broadcaster interface {
	Broadcast(teamID string, payload []byte)
}

type Service struct {
	db  db.Querier
	hub Broadcaster
	now func() time.Time
}

func NewService(db db.Querier, hub Broadcaster) *Service {
	return &Service{db: db, hub: hub, now: time.Now}
}

// Get returns the team's plan with entries in display order. A team
// without a saved plan gets an empty one.
func (s *Service) Get(ctx context.Context, teamID string) (Plan, error) {
	p := Plan{TeamID: teamID, Entries: []Entry{}}

	row := s.db.QueryRow(ctx, `
		SELECT date, hut, route FROM plans WHERE team_id=$1
	`, teamID)
	if err := row.Scan(&p.Date, &p.Hut, &p.Route); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Plan{}, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, time, activity, ord FROM plan_entries WHERE team_id=$1
	`, teamID)
	if err != nil {
		return Plan{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Time, &e.Activity, &e.Order); err != nil {
			return Plan{}, err
		}
		p.Entries = append(p.Entries, e)
	}
	p.Entries = SortEntries(p.Entries)
	return p, nil
}

// SetMeta stores the selected date, hut and route for a team.
func (s *Service) SetMeta(ctx context.Context, teamID string, meta Meta) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plans (team_id, date, hut, route)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (team_id) DO UPDATE
		SET date=EXCLUDED.date, hut=EXCLUDED.hut, route=EXCLUDED.route
	`, teamID, meta.Date, meta.Hut, meta.Route)
	if err != nil {
		return err
	}
	s.broadcast(ctx, teamID, "meta_updated")
	return nil
}

// AddEntry appends a manual timeline entry after the highest existing
// order number.
func (s *Service) AddEntry(ctx context.Context, teamID, entryTime, activity string) (Entry, error) {
	activity = strings.TrimSpace(activity)
	if entryTime == "" || activity == "" {
		return Entry{}, ErrEntryIncomplete
	}

	var maxOrder int
	row := s.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(ord), -1) FROM plan_entries WHERE team_id=$1
	`, teamID)
	if err := row.Scan(&maxOrder); err != nil {
		return Entry{}, err
	}

	next := maxOrder + 1
	e := Entry{ID: uuid.NewString(), Time: entryTime, Activity: activity, Order: &next}
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_entries (id, team_id, time, activity, ord)
		VALUES ($1,$2,$3,$4,$5)
	`, e.ID, teamID, e.Time, e.Activity, *e.Order)
	if err != nil {
		return Entry{}, err
	}
	s.broadcast(ctx, teamID, "entry_added")
	return e, nil
}

func (s *Service) DeleteEntry(ctx context.Context, teamID, entryID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM plan_entries WHERE team_id=$1 AND id=$2
	`, teamID, entryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	s.broadcast(ctx, teamID, "entry_deleted")
	return nil
}

// ClearEntries removes every timeline entry but keeps the plan header.
func (s *Service) ClearEntries(ctx context.Context, teamID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM plan_entries WHERE team_id=$1`, teamID); err != nil {
		return err
	}
	s.broadcast(ctx, teamID, "entries_cleared")
	return nil
}

// Clear resets the whole plan: header and entries.
func (s *Service) Clear(ctx context.Context, teamID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM plan_entries WHERE team_id=$1`, teamID); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM plans WHERE team_id=$1`, teamID); err != nil {
		return err
	}
	s.broadcast(ctx, teamID, "plan_cleared")
	return nil
}

// Generate replaces the team's entries with the standard goraiko
// itinerary for the given route and hut. Route and hut fall back to the
// stored plan header when omitted. The caller must confirm before
// invoking: all existing entries are discarded.
func (s *Service) Generate(ctx context.Context, teamID, route, hutName string) ([]Entry, error) {
	if route == "" || hutName == "" {
		stored, err := s.Get(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if route == "" {
			route = stored.Route
		}
		if hutName == "" {
			hutName = stored.Hut
		}
	}
	if route == "" || hutName == "" {
		return nil, ErrSelectionRequired
	}

	hut, ok := fuji.FindHut(route, hutName)
	if !ok {
		return nil, ErrHutNotFound
	}

	items := GoraikoSchedule(route, hut)

	if _, err := s.db.Exec(ctx, `DELETE FROM plan_entries WHERE team_id=$1`, teamID); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		ord := i
		e := Entry{ID: uuid.NewString(), Time: item.Time, Activity: item.Activity, Order: &ord}
		_, err := s.db.Exec(ctx, `
			INSERT INTO plan_entries (id, team_id, time, activity, ord)
			VALUES ($1,$2,$3,$4,$5)
		`, e.ID, teamID, e.Time, e.Activity, *e.Order)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO plans (team_id, date, hut, route)
		VALUES ($1,'',$2,$3)
		ON CONFLICT (team_id) DO UPDATE SET hut=EXCLUDED.hut, route=EXCLUDED.route
	`, teamID, hutName, route)
	if err != nil {
		return nil, err
	}

	s.broadcast(ctx, teamID, "plan_generated")
	return entries, nil
}

// Export renders the plan as the shareable plain-text summary. Entries
// are listed in clock order with the gap from the previous entry.
func (s *Service) Export(ctx context.Context, teamID, teamName string) (string, error) {
	p, err := s.Get(ctx, teamID)
	if err != nil {
		return "", err
	}
	if teamName == "" {
		teamName = "チーム"
	}

	lines := []string{
		teamName + " - 富士山登頂計画",
		"作成日時: " + s.now().Format("2006/01/02 15:04:05"),
		"",
		"予定日: " + orUnset(p.Date),
		"山小屋: " + orUnset(p.Hut),
		"",
		"スケジュール:",
	}

	sorted := make([]Entry, len(p.Entries))
	copy(sorted, p.Entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	if len(sorted) == 0 {
		lines = append(lines, "（未登録）")
	}
	for i, e := range sorted {
		line := fmt.Sprintf("%s - %s", e.Time, e.Activity)
		if i > 0 {
			if d := timeutil.Duration(sorted[i-1].Time, e.Time); d != "" {
				line += " (+" + d + ")"
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Service) broadcast(ctx context.Context, teamID, event string) {
	if s.hub == nil {
		return
	}
	p, err := s.Get(ctx, teamID)
	if err != nil {
		log.Printf("plan broadcast skipped: %v", err)
		return
	}
	payload, err := json.Marshal(map[string]any{"event": event, "plan": p})
	if err != nil {
		return
	}
	s.hub.Broadcast(teamID, payload)
}

func orUnset(s string) string {
	if s == "" {
		return "未設定"
	}
	return s
}
