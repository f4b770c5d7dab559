package readiness

import (
	"math"
	"time"

	"github.com/rokufv/itadaki/internal/fuji"
	"github.com/rokufv/itadaki/internal/health"
)

// Risk labels derived from the last two days of health records.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
	RiskNoData = "no-data"
)

const riskWindowDays = 2

// RiskLevel classifies a member from their recent health averages.
// Unlike the safety score this looks at averages only, with no single
// record red-flagging the member.
func RiskLevel(records []health.Record, now time.Time) string {
	windowStart := now.AddDate(0, 0, -riskWindowDays)

	var recent []health.Record
	for _, r := range records {
		if !r.RecordedAt.Before(windowStart) {
			recent = append(recent, r)
		}
	}
	if len(recent) == 0 {
		return RiskNoData
	}

	var conditionSum, fatigueSum, sleepSum float64
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

	switch {
	case avgCondition <= 2 || avgFatigue >= 4 || avgSleep < 5:
		return RiskHigh
	case avgCondition <= 3 || avgFatigue >= 3 || avgSleep < 6:
		return RiskMedium
	}
	return RiskLow
}
