package hiking

import "github.com/rokufv/itadaki/internal/member"

const highAltitudeGainM = 1000

// Experience is the scored hiking experience of one member. Level is derived
// from the score and may disagree with the member's self-declared level;
// both are surfaced to callers.
type Experience struct {
	Score int          `json:"score"`
	Level member.Level `json:"level"`
}

// ExperienceScore rates a member's hiking background 0-100: a base from the
// self-declared level, up to 30 points for trip count and up to 20 for
// high-altitude trips (elevation gain above 1000m).
func ExperienceScore(declared member.Level, records []Record) Experience {
	score := 0
	switch declared {
	case member.LevelIntermediate:
		score += 30
	case member.LevelAdvanced:
		score += 50
	}

	trips := len(records) * 10
	if trips > 30 {
		trips = 30
	}
	score += trips

	high := 0
	for _, r := range records {
		if r.ElevationGainM > highAltitudeGainM {
			high++
		}
	}
	high *= 5
	if high > 20 {
		high = 20
	}
	score += high

	level := member.LevelBeginner
	switch {
	case score >= 70:
		level = member.LevelAdvanced
	case score >= 40:
		level = member.LevelIntermediate
	}
	return Experience{Score: score, Level: level}
}
