package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ParseDate reads a YYYY-MM-DD day at midnight in tz.
func ParseDate(tz, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

// ParseDateTime reads a YYYY-MM-DD day and HH:MM time in tz.
func ParseDateTime(tz, date, hm string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, date+" "+hm, Location(tz))
}
