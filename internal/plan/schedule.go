package plan

import (
	"fmt"
	"math"

	"github.com/rokufv/itadaki/internal/fuji"
	"github.com/rokufv/itadaki/internal/shared/timeutil"
)

// ScheduleItem is one generated itinerary step before it is persisted as
// an Entry.
type ScheduleItem struct {
	Time     string
	Activity string
}

const minutesPerHour = 60

// HoursToSummit estimates the night climb from the hut to the summit,
// clamped to 1-6 hours.
func HoursToSummit(hutElevationM int) float64 {
	hours := float64(fuji.SummitElevationM-hutElevationM) / fuji.ClimbingRateMPerHour
	return math.Max(1, math.Min(hours, 6))
}

// HoursToHut estimates the day-one climb from the fifth station to the
// hut, at least 30 minutes.
func HoursToHut(route string, hutElevationM int) float64 {
	start := fuji.StartElevation(route)
	hours := float64(hutElevationM-start) / fuji.ClimbingRateMPerHour
	return math.Max(hours, 0.5)
}

// GoraikoSchedule builds the standard two-day sunrise-summit itinerary
// for a route and hut. Day two runs before dawn, so its arithmetic is
// done in signed minutes from midnight and only formatted at the end;
// a negative departure means the climb starts late on day one.
func GoraikoSchedule(route string, hut fuji.Hut) []ScheduleItem {
	hoursToSummit := HoursToSummit(hut.ElevationM)
	hoursToHut := HoursToHut(route, hut.ElevationM)

	var schedule []ScheduleItem

	// Day 1
	schedule = append(schedule,
		ScheduleItem{Time: fuji.StartTime, Activity: "⛰️ 五合目集合"},
		ScheduleItem{Time: fuji.ClimbingStartTime, Activity: "📋 装備確認・登山開始"},
	)

	if hoursToHut >= 3 {
		schedule = append(schedule, ScheduleItem{
			Time:     timeutil.FormatTime(10.5 + hoursToHut/2),
			Activity: "🍙 休憩・水分補給",
		})
	}

	hutArrival := timeutil.FormatTime(10.5 + hoursToHut)
	hutArrivalHour, _ := timeutil.ParseTime(hutArrival)
	schedule = append(schedule, ScheduleItem{
		Time:     hutArrival,
		Activity: "🏠 " + hut.Name + "到着",
	})

	dinnerHour := clampInt(hutArrivalHour+1, fuji.MinDinnerHour, fuji.MaxDinnerHour)
	schedule = append(schedule, ScheduleItem{
		Time:     fmt.Sprintf("%02d:00", dinnerHour),
		Activity: "🍱 夕食",
	})

	bedtimeHour := clampInt(dinnerHour+2, fuji.MinBedtimeHour, fuji.MaxBedtimeHour)
	schedule = append(schedule, ScheduleItem{
		Time:     fmt.Sprintf("%02d:00", bedtimeHour),
		Activity: "🌙 就寝",
	})

	// Day 2: back off from the 05:00 sunrise by the whole hours needed
	// to reach the summit. Negative minutes wrap to the previous evening.
	departure := 5*minutesPerHour - int(math.Ceil(hoursToSummit))*minutesPerHour

	wakeUp := departure - minutesPerHour
	if departure >= 0 && wakeUp < minutesPerHour {
		wakeUp = minutesPerHour
	}
	schedule = append(schedule, ScheduleItem{
		Time:     timeutil.FormatMinutes(wakeUp),
		Activity: "⏰ 起床・準備",
	})

	if departure >= 0 && departure < minutesPerHour {
		departure = minutesPerHour
	}
	schedule = append(schedule,
		ScheduleItem{Time: timeutil.FormatMinutes(departure), Activity: "🔦 山小屋出発（ヘッドライト装着）"},
		ScheduleItem{Time: fuji.SunriseTime, Activity: fmt.Sprintf("🌅 山頂でご来光（標高%dm）", fuji.SummitElevationM)},
		ScheduleItem{Time: "06:00", Activity: "📸 記念撮影・休憩"},
		ScheduleItem{Time: fuji.DescentStartTime, Activity: "⬇️ 下山開始"},
		ScheduleItem{Time: timeutil.FormatTime(7 + hoursToHut*fuji.DescentTimeRatio), Activity: "⛰️ 五合目到着・解散"},
	)

	return schedule
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
