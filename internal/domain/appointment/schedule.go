package appointment

import (
	"time"

	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
)

// Bookings start on the hour, between 8am and 5pm inclusive.
const (
	OpeningHour = 8
	ClosingHour = 17
)

// A bare date parses to midnight, which the business-hours check then
// rejects on its own.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseScheduleDate parses an ISO-8601-like date-time string in loc and
// truncates it to the start of its hour.
func ParseScheduleDate(input string, loc *time.Location) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		t, err := time.ParseInLocation(layout, input, loc)
		if err != nil {
			continue
		}
		return StartOfHour(t), nil
	}
	return time.Time{}, httperr.ErrBusiness("invalid_schedule_date", "Invalid schedule date")
}

func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// ValidateSchedule enforces the wall-clock rules against an already
// truncated date. Order matters: past date is rejected before the
// business-hours window is looked at.
func ValidateSchedule(date time.Time, now time.Time) error {
	if date.Before(now) {
		return httperr.ErrPastDate
	}

	if date.Hour() < OpeningHour || date.Hour() > ClosingHour {
		return httperr.ErrOutsideBusinessHours
	}

	return nil
}
