package appointment

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/neal92/ServiceBooking-sub000/internal/audit"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) DeleteAppointment(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

// newTestAuditor returns a dispatcher whose writes go nowhere.
func newTestAuditor() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.Nop())
}
