package appointment

import (
	"context"

	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/dto"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentView, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentViews(aps), nil
}

func (uc *ListAppointments) ByClient(
	ctx context.Context,
	email string,
) ([]dto.AppointmentView, error) {

	aps, err := uc.repo.ListAppointmentsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentViews(aps), nil
}

func (uc *ListAppointments) One(
	ctx context.Context,
	id uint,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	view := dto.NewAppointmentView(*ap)
	return &view, nil
}
