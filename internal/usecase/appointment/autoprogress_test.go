package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

// fakeRepo is a stateful in-memory repository, so that a promotion in
// one sweep is visible to the next.
type fakeRepo struct {
	appointments map[uint]*models.Appointment
	listErr      error
}

func newFakeRepo(aps ...*models.Appointment) *fakeRepo {
	r := &fakeRepo{appointments: make(map[uint]*models.Appointment)}
	for _, ap := range aps {
		r.appointments[ap.ID] = ap
	}
	return r
}

func (r *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientEmail == email {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	return &models.Service{ID: id, Active: true}, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func newAutoProgress(repo *fakeRepo) *AutoProgress {
	status := NewUpdateStatus(repo, newTestAuditor(), time.UTC)
	return NewAutoProgress(repo, status, time.UTC, zerolog.Nop())
}

func confirmedAt(id uint, date, hm string) *models.Appointment {
	return &models.Appointment{ID: id, Status: "confirmed", Date: date, Time: hm}
}

func TestAutoProgress_PromotesInsideEarlyWindow(t *testing.T) {
	repo := newFakeRepo(confirmedAt(1, "2026-03-10", "14:00"))
	now := time.Date(2026, 3, 10, 13, 56, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
	assert.Equal(t, "in-progress", repo.appointments[1].Status)
}

func TestAutoProgress_SecondSweepPromotesNothing(t *testing.T) {
	repo := newFakeRepo(confirmedAt(1, "2026-03-10", "14:00"))
	uc := newAutoProgress(repo)
	now := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)

	promoted, err := uc.Execute(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, promoted)

	promoted, err = uc.Execute(context.Background(), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
}

func TestAutoProgress_TooEarly(t *testing.T) {
	repo := newFakeRepo(confirmedAt(1, "2026-03-10", "14:00"))
	now := time.Date(2026, 3, 10, 13, 54, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
	assert.Equal(t, "confirmed", repo.appointments[1].Status)
}

func TestAutoProgress_WindowBoundary(t *testing.T) {
	repo := newFakeRepo(confirmedAt(1, "2026-03-10", "14:00"))
	now := time.Date(2026, 3, 10, 13, 55, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
}

func TestAutoProgress_SkipsNonConfirmed(t *testing.T) {
	repo := newFakeRepo(
		&models.Appointment{ID: 1, Status: "pending", Date: "2026-03-10", Time: "14:00"},
		&models.Appointment{ID: 2, Status: "in-progress", Date: "2026-03-10", Time: "14:00"},
		&models.Appointment{ID: 3, Status: "cancelled", Date: "2026-03-10", Time: "14:00"},
	)
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
	assert.Equal(t, "pending", repo.appointments[1].Status)
}

func TestAutoProgress_SkipsOtherDays(t *testing.T) {
	repo := newFakeRepo(
		confirmedAt(1, "2026-03-09", "14:00"),
		confirmedAt(2, "2026-03-11", "14:00"),
	)
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, promoted)
}

func TestAutoProgress_HandlesStoredDatetimeDates(t *testing.T) {
	repo := newFakeRepo(confirmedAt(1, "2026-03-10T00:00:00.000Z", "14:00"))
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
}

func TestAutoProgress_UnparseableSlotIsSkipped(t *testing.T) {
	repo := newFakeRepo(
		&models.Appointment{ID: 1, Status: "confirmed", Date: "2026-03-10", Time: "2pm"},
		confirmedAt(2, "2026-03-10", "14:00"),
	)
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	promoted, err := newAutoProgress(repo).Execute(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, promoted)
	assert.Equal(t, "confirmed", repo.appointments[1].Status)
}

func TestAutoProgress_ListErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")

	_, err := newAutoProgress(repo).Execute(context.Background(), time.Now())

	assert.Error(t, err)
}
