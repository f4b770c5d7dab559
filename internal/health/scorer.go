package health

import (
	"math"
	"time"

	"github.com/rokufv/itadaki/internal/fuji"
)

// SafetyScore aggregates a member's recent health records into a 0-100
// score. Records outside the 3-day window are ignored; with no usable
// records the conservative baseline of 70 is returned. A single red-flag
// record (condition <= 2, fatigue >= 4 or sleep < 5h) caps the result at 60.
func SafetyScore(records []Record, now time.Time) int {
	windowStart := now.AddDate(0, 0, -fuji.HealthRecordWindowDays)

	var recent []Record
	for _, r := range records {
		if !r.RecordedAt.Before(windowStart) {
			recent = append(recent, r)
		}
	}
	if len(recent) == 0 {
		return fuji.SafetyBaselineScore
	}

	var conditionSum, fatigueSum float64
	var sleepSum float64
	var sleepCount int
	for _, r := range recent {
		conditionSum += float64(r.Condition)
		fatigueSum += float64(r.FatigueLevel)
		if r.SleepHours != nil && !math.IsNaN(*r.SleepHours) {
			sleepSum += *r.SleepHours
			sleepCount++
		}
	}

	avgCondition := conditionSum / float64(len(recent))
	avgFatigue := fatigueSum / float64(len(recent))
	avgSleep := fuji.DefaultAvgSleepHours
	if sleepCount > 0 {
		avgSleep = sleepSum / float64(sleepCount)
	}

	conditionScore := clamp01((avgCondition-1)/4) * 100
	fatigueScore := clamp01((5-avgFatigue)/4) * 100
	sleepScore := clamp01(avgSleep/fuji.DefaultAvgSleepHours) * 100

	score := int(math.Round(conditionScore*0.5 + fatigueScore*0.3 + sleepScore*0.2))

	if hasRedFlag(recent) && score > 60 {
		score = 60
	}
	return score
}

func hasRedFlag(records []Record) bool {
	for _, r := range records {
		if r.Condition <= fuji.CriticalConditionThreshold {
			return true
		}
		if r.FatigueLevel >= fuji.HighFatigueThreshold {
			return true
		}
		if r.SleepHours != nil && !math.IsNaN(*r.SleepHours) && *r.SleepHours < fuji.MinSleepHours {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
