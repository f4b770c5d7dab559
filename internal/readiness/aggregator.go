package readiness

import (
	"math"

	"github.com/rokufv/itadaki/internal/fuji"
)

// Overall combines the three component scores into the readiness
// percentage. Three caps apply independently: low safety caps at 70,
// missing critical gear at 60 and a stale health check at 80; the final
// value is the minimum of the weighted score and every triggered cap.
func Overall(safety, gear, experience int, criticalGearMissing, hasRecentHealth bool) int {
	overall := int(math.Round(
		float64(safety)*fuji.SafetyWeight +
			float64(gear)*fuji.GearWeight +
			float64(experience)*fuji.ExperienceWeight))

	if safety < fuji.SafetyLowThreshold && overall > fuji.SafetyLowCap {
		overall = fuji.SafetyLowCap
	}
	if criticalGearMissing && overall > fuji.CriticalGearCap {
		overall = fuji.CriticalGearCap
	}
	if !hasRecentHealth && overall > fuji.NoRecentHealthCap {
		overall = fuji.NoRecentHealthCap
	}
	return overall
}
