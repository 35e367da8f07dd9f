package appointment

import "github.com/neal92/ServiceBooking-sub000/internal/models"

// HasConflict reports whether any appointment other than excludeID
// already occupies the exact (date, time) slot. Pass excludeID = 0 when
// creating.
//
// Status is deliberately not consulted: a cancelled appointment keeps
// its slot occupied. Changing that is a behaviour change, not a cleanup.
func HasConflict(existing []models.Appointment, date, hm string, excludeID uint) bool {
	d := NormalizeDate(date)
	for i := range existing {
		ap := &existing[i]
		if ap.ID == excludeID {
			continue
		}
		if NormalizeDate(ap.Date) == d && ap.Time == hm {
			return true
		}
	}
	return false
}
