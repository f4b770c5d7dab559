package health

import (
	"math"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestSafetyScoreBaselineWithoutRecords(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

	if got := SafetyScore(nil, now); got != 70 {
		t.Fatalf("expected baseline 70, got %d", got)
	}

	// records outside the 3-day window are ignored
	old := []Record{{Condition: 5, FatigueLevel: 1, SleepHours: fptr(8), RecordedAt: now.AddDate(0, 0, -4)}}
	if got := SafetyScore(old, now); got != 70 {
		t.Fatalf("expected baseline for stale records, got %d", got)
	}
}

func TestSafetyScorePerfect(t *testing.T) {
	now := time.Now()
	records := []Record{
		{Condition: 5, FatigueLevel: 1, SleepHours: fptr(7), RecordedAt: now.Add(-time.Hour)},
	}
	if got := SafetyScore(records, now); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestSafetyScoreRedFlagCaps(t *testing.T) {
	now := time.Now()

	// weighted sum would be well above 60, one short sleep caps it
	records := []Record{
		{Condition: 5, FatigueLevel: 1, SleepHours: fptr(7), RecordedAt: now.Add(-time.Hour)},
		{Condition: 5, FatigueLevel: 1, SleepHours: fptr(4.9), RecordedAt: now.Add(-2 * time.Hour)},
	}
	if got := SafetyScore(records, now); got != 60 {
		t.Fatalf("expected cap at 60, got %d", got)
	}

	// already below the cap stays untouched
	bad := []Record{
		{Condition: 1, FatigueLevel: 5, SleepHours: fptr(3), RecordedAt: now.Add(-time.Hour)},
	}
	if got := SafetyScore(bad, now); got > 60 {
		t.Fatalf("expected red flag result <= 60, got %d", got)
	}
}

func TestSafetyScoreMissingSleepDefaults(t *testing.T) {
	now := time.Now()
	// no sleep data at all: average defaults to 7h (full sleep score)
	records := []Record{
		{Condition: 3, FatigueLevel: 3, RecordedAt: now.Add(-time.Hour)},
	}
	// condition (3-1)/4=0.5 -> 50*0.5=25, fatigue (5-3)/4=0.5 -> 50*0.3=15, sleep 100*0.2=20
	if got := SafetyScore(records, now); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestSafetyScoreIgnoresNaNSleep(t *testing.T) {
	now := time.Now()
	nan := math.NaN()
	records := []Record{
		{Condition: 5, FatigueLevel: 1, SleepHours: &nan, RecordedAt: now.Add(-time.Hour)},
	}
	// NaN neither contributes to the average nor raises a red flag
	if got := SafetyScore(records, now); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestSafetyScoreConditionRedFlag(t *testing.T) {
	now := time.Now()
	records := []Record{
		{Condition: 2, FatigueLevel: 1, SleepHours: fptr(8), RecordedAt: now.Add(-time.Hour)},
		{Condition: 5, FatigueLevel: 1, SleepHours: fptr(8), RecordedAt: now.Add(-2 * time.Hour)},
	}
	if got := SafetyScore(records, now); got > 60 {
		t.Fatalf("expected condition red flag cap, got %d", got)
	}
}
