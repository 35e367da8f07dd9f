package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

func newUpdateUC(repo *mockRepository) *UpdateAppointment {
	return NewUpdateAppointment(repo, newTestAuditor(), zerolog.Nop(), time.UTC)
}

func TestUpdateAppointment_OwnSlotIsNotAConflict(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(7)).Return(
		&models.Appointment{ID: 7, Date: futureDate, Time: futureTime, Status: "pending"}, nil)
	repo.On("GetService", mock.Anything, uint(3)).Return(activeService(), nil)
	repo.On("ListAppointments", mock.Anything).Return([]models.Appointment{
		{ID: 7, Date: futureDate, Time: futureTime, Status: "pending"},
	}, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := newUpdateUC(repo).Execute(context.Background(), 7, UpdateAppointmentInput{
		ClientName: "Ana Silva",
		ServiceID:  3,
		Date:       futureDate,
		Time:       futureTime,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", ap.ClientName)
	repo.AssertExpectations(t)
}

func TestUpdateAppointment_MovingOntoTakenSlot(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(7)).Return(
		&models.Appointment{ID: 7, Date: futureDate, Time: "10:00", Status: "pending"}, nil)
	repo.On("GetService", mock.Anything, uint(3)).Return(activeService(), nil)
	repo.On("ListAppointments", mock.Anything).Return([]models.Appointment{
		{ID: 7, Date: futureDate, Time: "10:00", Status: "pending"},
		{ID: 8, Date: futureDate, Time: futureTime, Status: "confirmed"},
	}, nil)

	_, err := newUpdateUC(repo).Execute(context.Background(), 7, UpdateAppointmentInput{
		ClientName: "Ana Silva",
		ServiceID:  3,
		Date:       futureDate,
		Time:       futureTime,
	}, nil)

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(99)).Return(nil, assert.AnError)

	_, err := newUpdateUC(repo).Execute(context.Background(), 99, UpdateAppointmentInput{
		ClientName: "Ana Silva",
		ServiceID:  3,
		Date:       futureDate,
		Time:       futureTime,
	}, nil)

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateAppointment_PastScheduleRejected(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetAppointment", mock.Anything, uint(7)).Return(
		&models.Appointment{ID: 7, Status: "pending"}, nil)

	_, err := newUpdateUC(repo).Execute(context.Background(), 7, UpdateAppointmentInput{
		ClientName: "Ana Silva",
		ServiceID:  3,
		Date:       "2020-01-01",
		Time:       "10:00",
	}, nil)

	assert.True(t, httperr.IsBusiness(err, "date_in_past"))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}
