// Package timeutil provides clock-string arithmetic for "HH:MM" values.
// All functions are total: malformed input degrades to zero components or
// an empty duration string instead of returning an error.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseTime splits an "HH:MM" string into hour and minute components.
// Non-numeric or missing components default to 0. Out-of-range values
// are tolerated and passed through.
func ParseTime(s string) (hours, minutes int) {
	parts := strings.Split(s, ":")
	if len(parts) > 0 {
		hours, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return hours, minutes
}

// FormatTime converts decimal hours to a zero-padded "HH:MM" string,
// wrapping into [00:00, 23:59]. Day counts are not carried; callers that
// need day boundaries must track them separately.
func FormatTime(decimalHours float64) string {
	total := int(math.Round(decimalHours * 60))
	for total < 0 {
		total += minutesPerDay
	}
	total %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatMinutes formats signed minutes-from-midnight as "HH:MM" with the
// same wraparound behavior as FormatTime.
func FormatMinutes(m int) string {
	for m < 0 {
		m += minutesPerDay
	}
	m %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddHours shifts an "HH:MM" time by delta hours (negative allowed).
func AddHours(t string, delta float64) string {
	h, m := ParseTime(t)
	return FormatTime(float64(h) + float64(m)/60 + delta)
}

// Duration returns the elapsed time between t1 and t2 as a composite
// string like "2時間30分", omitting zero components. A negative difference
// is treated as a next-day rollover. Malformed input yields "".
func Duration(t1, t2 string) string {
	h1, m1, ok1 := parseStrict(t1)
	h2, m2, ok2 := parseStrict(t2)
	if !ok1 || !ok2 {
		return ""
	}
	minutes := (h2*60 + m2) - (h1*60 + m1)
	if minutes < 0 {
		minutes += minutesPerDay
	}
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%d時間%d分", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d時間", hours)
	case mins > 0:
		return fmt.Sprintf("%d分", mins)
	}
	return ""
}

func parseStrict(s string) (hours, minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return h, m, true
}
