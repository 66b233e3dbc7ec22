package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

type TimeSlot struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// FreeSlots walks every active agenda window of the day in steps of
// slotDuration and keeps the slots that avoid the break and every busy
// appointment. busy must hold only slot-holding appointments.
func FreeSlots(
	day time.Time,
	agendas []models.Agenda,
	busy []models.Appointment,
	slotDuration time.Duration,
) []TimeSlot {

	slots := []TimeSlot{}
	if slotDuration <= 0 {
		return slots
	}

	sorted := make([]models.Appointment, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	for _, ag := range agendas {
		if !ag.Active || ag.Weekday != int(day.Weekday()) {
			continue
		}

		dayStart := atClock(day, ag.StartTime)
		dayEnd := atClock(day, ag.EndTime)

		for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
			slotStart := cur
			slotEnd := cur.Add(slotDuration)

			if !FitsAgenda(ag, slotStart, slotEnd) {
				continue
			}

			conflict := false
			for _, ap := range sorted {
				if !ap.StartTime.Before(slotEnd) {
					break
				}
				if Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, TimeSlot{
					Start: slotStart.Format(hmLayout),
					End:   slotEnd.Format(hmLayout),
				})
			}
		}
	}

	return slots
}
