package appointment

import (
	"context"

	"github.com/neal92/ServiceBooking-sub000/internal/audit"
	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditor,
	}
}

// Execute hard-deletes an appointment after the deletion policy check.
// The UI is responsible for the confirmation step; by the time the call
// reaches here it is irreversible.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actor domain.Actor,
	actorEmail string,
	actorID *uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.CanDelete(ap, actor, actorEmail) {
		return httperr.ErrBusiness("delete_not_allowed")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": ap.Status},
	})

	return nil
}
