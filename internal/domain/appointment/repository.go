package appointment

import (
	"context"

	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)
}
