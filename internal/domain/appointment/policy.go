package appointment

import "github.com/neal92/ServiceBooking-sub000/internal/models"

// IsOwner reports whether email identifies the client that the
// appointment was booked for.
func IsOwner(ap *models.Appointment, email string) bool {
	return email != "" && ap.ClientEmail == email
}

// CanDelete is the single deletion policy for every call site.
//
// An admin may only delete finished business: completed or cancelled
// appointments. Active ones must be cancelled first. A client may
// delete their own appointment in any status.
func CanDelete(ap *models.Appointment, actor Actor, email string) bool {
	switch actor {
	case ActorAdmin:
		return Status(ap.Status).IsTerminal()
	case ActorClient:
		return IsOwner(ap, email)
	default:
		return false
	}
}
