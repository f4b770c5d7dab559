package health

import "time"

// Record is one append-only health check entry. Records are never updated,
// only created and cascade-deleted with their member.
type Record struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"member_id"`
	Condition    int       `json:"condition"`
	SleepHours   *float64  `json:"sleep_hours,omitempty"`
	FatigueLevel int       `json:"fatigue_level"`
	RecordedAt   time.Time `json:"recorded_at"`
}
