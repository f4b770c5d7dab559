// Package fuji holds the static Mt. Fuji reference data and the tuning
// constants used by schedule generation and readiness scoring.
package fuji

import "time"

// Climbing calculation constants.
const (
	ClimbingRateMPerHour = 300
	SummitElevationM     = 3776
	SunriseTime          = "05:00"
	DescentTimeRatio     = 0.7
	StartTime            = "10:00"
	ClimbingStartTime    = "10:30"
	MinDinnerHour        = 17
	MaxDinnerHour        = 19
	MinBedtimeHour       = 19
	MaxBedtimeHour       = 21
	DescentStartTime     = "07:00"
)

// Health and safety thresholds.
const (
	MinSleepHours              = 5.0
	HealthRecordWindowDays     = 3
	RecentHealthCheckWindow    = 48 * time.Hour
	CriticalConditionThreshold = 2
	HighFatigueThreshold       = 4
)

// Readiness weights and caps.
const (
	SafetyWeight     = 0.40
	GearWeight       = 0.35
	ExperienceWeight = 0.25

	SafetyLowCap         = 70
	CriticalGearCap      = 60
	NoRecentHealthCap    = 80
	SafetyLowThreshold   = 50
	SafetyBaselineScore  = 70
	DefaultAvgSleepHours = 7.0
)

// Gear category weights.
const (
	EssentialGearWeight   = 0.7
	RecommendedGearWeight = 0.2
	SeasonalGearWeight    = 0.1
)

// DefaultStartElevationM is used when a route name is unknown
// (falls back to the Yoshida fifth station).
const DefaultStartElevationM = 2305

// RouteStartElevations maps route name to fifth-station elevation in meters.
var RouteStartElevations = map[string]int{
	"吉田ルート":  2305,
	"富士宮ルート": 2400,
	"須走ルート":  2000,
	"御殿場ルート": 1440,
}

// CriticalGearIDs are the essential items whose absence caps the gear score.
var CriticalGearIDs = []string{"boots", "rain_jacket", "rain_pants", "headlamp"}
