package appointment

import (
	"strings"
	"time"

	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
)

const dateLayout = "2006-01-02"

// NormalizeDate strips any time component from a date value so that
// slot comparison always happens on the plain YYYY-MM-DD form.
// Comparing full ISO datetimes across differing offsets is wrong.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return s
}

// ClockMinutes parses an HH:MM value into minutes since midnight.
func ClockMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateSchedule rejects slots in the past relative to now.
// Past dates are rejected outright; a slot today is rejected only when
// its time is strictly earlier than the current minute. There is no
// upper bound on how far ahead a slot may be.
func ValidateSchedule(date, hm string, now time.Time) error {
	d := NormalizeDate(date)
	if _, err := time.Parse(dateLayout, d); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	// Lexicographic compare is safe on zero-padded ISO dates.
	today := now.Format(dateLayout)
	if d < today {
		return httperr.ErrBusiness("date_in_past")
	}

	mins, err := ClockMinutes(hm)
	if err != nil {
		return err
	}

	if d == today && mins < now.Hour()*60+now.Minute() {
		return httperr.ErrBusiness("time_in_past")
	}
	return nil
}

// StartsAt builds the wall-clock instant of the slot in loc.
func StartsAt(date, hm string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" 15:04", NormalizeDate(date)+" "+hm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}
