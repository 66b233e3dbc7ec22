package company

import (
	"time"

	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Weekdays are the accepted keys of an operating-hours map, indexed like
// time.Weekday.
var Weekdays = []string{
	"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado",
}

func validHM(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidOperatingHours rejects unknown day keys and windows that are not
// HH:MM with start before end. A nil window means closed.
func ValidOperatingHours(h models.OperatingHours) bool {
	for day, window := range h {
		known := false
		for _, d := range Weekdays {
			if d == day {
				known = true
				break
			}
		}
		if !known {
			return false
		}
		if window == nil {
			continue
		}
		if !validHM(window.Start) || !validHM(window.End) || window.Start >= window.End {
			return false
		}
	}
	return true
}
