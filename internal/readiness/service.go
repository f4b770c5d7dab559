package readiness

import (
	"context"
	"math"
	"time"

	"github.com/rokufv/itadaki/internal/gear"
	"github.com/rokufv/itadaki/internal/health"
	"github.com/rokufv/itadaki/internal/hiking"
	"github.com/rokufv/itadaki/internal/member"
)

// Bundle is the readiness report for one member: the three component
// scores, the derived experience level next to the self-declared one,
// the capped overall percentage and the short-term risk label.
type Bundle struct {
	MemberID      string            `json:"member_id"`
	Name          string            `json:"name"`
	Safety        int               `json:"safety"`
	Gear          int               `json:"gear"`
	Experience    hiking.Experience `json:"experience"`
	DeclaredLevel member.Level      `json:"declared_level"`
	Overall       int               `json:"overall"`
	Risk          string            `json:"risk"`
}

// Summary is the whole-team readiness overview.
type Summary struct {
	Members      []Bundle `json:"members"`
	AverageScore int      `json:"average_score"`
}

type Service struct {
	members *member.Service
	health  *health.Service
	gear    *gear.Service
	hiking  *hiking.Service
	now     func() time.Time
}

func NewService(members *member.Service, healthSvc *health.Service, gearSvc *gear.Service, hikingSvc *hiking.Service) *Service {
	return &Service{
		members: members,
		health:  healthSvc,
		gear:    gearSvc,
		hiking:  hikingSvc,
		now:     time.Now,
	}
}

// Bundle builds the readiness report for one member.
func (s *Service) Bundle(ctx context.Context, memberID string) (Bundle, error) {
	m, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		return Bundle{}, err
	}

	healthRecords, err := s.health.Records(ctx, memberID)
	if err != nil {
		return Bundle{}, err
	}
	now := s.now()
	safety := health.SafetyScore(healthRecords, now)

	hasRecent, err := s.health.HasRecentRecord(ctx, memberID)
	if err != nil {
		return Bundle{}, err
	}

	checklist, err := s.gear.Checklist(ctx, memberID)
	if err != nil {
		return Bundle{}, err
	}
	gearScore := gear.Score(checklist)
	criticalMissing := gear.HasCriticalMissing(checklist)

	hikingRecords, err := s.hiking.Records(ctx, memberID)
	if err != nil {
		return Bundle{}, err
	}
	experience := hiking.ExperienceScore(m.Experience, hikingRecords)

	return Bundle{
		MemberID:      m.ID,
		Name:          m.Name,
		Safety:        safety,
		Gear:          gearScore,
		Experience:    experience,
		DeclaredLevel: m.Experience,
		Overall:       Overall(safety, gearScore, experience.Score, criticalMissing, hasRecent),
		Risk:          RiskLevel(healthRecords, now),
	}, nil
}

// TeamSummary bundles every member and averages their overall scores.
func (s *Service) TeamSummary(ctx context.Context) (Summary, error) {
	members, err := s.members.Members(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Members: []Bundle{}}
	total := 0
	for _, m := range members {
		b, err := s.Bundle(ctx, m.ID)
		if err != nil {
			return Summary{}, err
		}
		summary.Members = append(summary.Members, b)
		total += b.Overall
	}
	if len(summary.Members) > 0 {
		summary.AverageScore = int(math.Round(float64(total) / float64(len(summary.Members))))
	}
	return summary, nil
}
