package member

import "time"

// Level is a self-declared experience level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        *int      `json:"age,omitempty"`
	Experience Level     `json:"experience_level"`
	JoinedAt   time.Time `json:"joined_at"`
}
