package hiking

import "time"

// Record is one past hiking trip in a member's history. Append-only.
type Record struct {
	ID             string    `json:"id"`
	MemberID       string    `json:"member_id"`
	MountainName   string    `json:"mountain_name"`
	ElevationGainM int       `json:"elevation_gain_m"`
	DistanceKm     float64   `json:"distance_km"`
	Difficulty     string    `json:"difficulty"`
	Date           string    `json:"date"`
	Weather        string    `json:"weather"`
	Notes          string    `json:"notes,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// Mountain is a user-addable catalog entry used to pre-fill record forms.
type Mountain struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ElevationM int       `json:"elevation_m"`
	DistanceKm float64   `json:"distance_km"`
	AddedAt    time.Time `json:"added_at"`
}
