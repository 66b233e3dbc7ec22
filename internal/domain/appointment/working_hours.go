package appointment

import (
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

const hmLayout = "15:04"

// ValidHM reports whether s is a HH:MM clock time.
func ValidHM(s string) bool {
	_, err := time.Parse(hmLayout, s)
	return err == nil
}

// ValidWindow checks an agenda definition: start before end and, when a break
// is set, the break inside the window.
func ValidWindow(ag models.Agenda) bool {
	if ag.Weekday < 0 || ag.Weekday > 6 {
		return false
	}
	if !ValidHM(ag.StartTime) || !ValidHM(ag.EndTime) || ag.StartTime >= ag.EndTime {
		return false
	}
	if ag.BreakStart == "" && ag.BreakEnd == "" {
		return true
	}
	if !ValidHM(ag.BreakStart) || !ValidHM(ag.BreakEnd) || ag.BreakStart >= ag.BreakEnd {
		return false
	}
	return ag.BreakStart >= ag.StartTime && ag.BreakEnd <= ag.EndTime
}

// atClock places a HH:MM time on the calendar day of ref, in ref's location.
func atClock(ref time.Time, hm string) time.Time {
	t, _ := time.Parse(hmLayout, hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}

// FitsAgenda validates that [start, end) is inside the agenda window and does
// not touch its break.
func FitsAgenda(ag models.Agenda, start, end time.Time) bool {
	if !ag.Active || ag.StartTime == "" || ag.EndTime == "" {
		return false
	}
	if int(start.Weekday()) != ag.Weekday {
		return false
	}

	workStart := atClock(start, ag.StartTime)
	workEnd := atClock(start, ag.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	if ag.BreakStart != "" && ag.BreakEnd != "" {
		breakStart := atClock(start, ag.BreakStart)
		breakEnd := atClock(start, ag.BreakEnd)
		if Overlaps(start, end, breakStart, breakEnd) {
			return false
		}
	}

	return true
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
