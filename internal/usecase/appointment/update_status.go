package appointment

import (
	"context"
	"time"

	"github.com/neal92/ServiceBooking-sub000/internal/audit"
	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

// UpdateStatus is the single path for every status change: manual
// transitions from the API and system promotions from the monitor.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateStatus(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	loc *time.Location,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditor,
		loc:   loc,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id uint,
	to domain.Status,
	actor domain.Actor,
	actorEmail string,
	actorID *uint,
) (*models.Appointment, error) {

	if !to.IsValid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if actor == domain.ActorClient && !domain.IsOwner(ap, actorEmail) {
		return nil, httperr.ErrBusiness("transition_forbidden")
	}

	from := domain.Status(ap.Status)

	now := time.Now().In(uc.loc)
	if err := domain.Transition(ap, to, actor, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from":  string(from),
			"to":    string(to),
			"actor": string(actor),
		},
	})

	return ap, nil
}
