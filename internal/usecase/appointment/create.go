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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID uint

	Date  string
	Time  string
	Notes string

	CreatedBy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log zerolog.Logger,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditor,
		log:   log,
		loc:   loc,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	actorID *uint,
) (*models.Appointment, error) {

	now := time.Now().In(uc.loc)

	if err := domain.ValidateSchedule(in.Date, in.Time, now); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	if err := uc.checkSlot(ctx, in.Date, in.Time, 0, actorID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		ServiceID:   svc.ID,
		Date:        domain.NormalizeDate(in.Date),
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// checkSlot runs the advisory slot check. A failed list read is logged
// and skipped so a transient storage error never blocks a booking.
func (uc *CreateAppointment) checkSlot(
	ctx context.Context,
	date string,
	hm string,
	excludeID uint,
	actorID *uint,
) error {

	existing, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("slot check skipped: appointment list unavailable")
		return nil
	}

	if domain.HasConflict(existing, date, hm, excludeID) {
		uc.audit.Dispatch(audit.Event{
			UserID: actorID,
			Action: "appointment_conflict",
			Entity: "appointment",
			Metadata: map[string]string{
				"date": domain.NormalizeDate(date),
				"time": hm,
			},
		})
		return httperr.ErrBusiness("slot_taken")
	}

	return nil
}
