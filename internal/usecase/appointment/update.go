package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/neal92/ServiceBooking-sub000/internal/audit"
	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

type UpdateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// UpdateAppointment edits the booking fields of an existing
// appointment. Status changes go through UpdateStatus instead.
type UpdateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	create *CreateAppointment
	loc    *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log zerolog.Logger,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		audit:  auditor,
		create: NewCreateAppointment(repo, auditor, log, loc),
		loc:    loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in UpdateAppointmentInput,
	actorID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := time.Now().In(uc.loc)
	if err := domain.ValidateSchedule(in.Date, in.Time, now); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// The appointment being edited must not conflict with itself.
	if err := uc.create.checkSlot(ctx, in.Date, in.Time, ap.ID, actorID); err != nil {
		return nil, err
	}

	ap.ClientName = in.ClientName
	ap.ClientEmail = in.ClientEmail
	ap.ClientPhone = in.ClientPhone
	ap.ServiceID = svc.ID
	ap.Date = domain.NormalizeDate(in.Date)
	ap.Time = in.Time
	ap.Notes = in.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
