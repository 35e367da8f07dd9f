package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

func slot(id uint, date, hm, status string) models.Appointment {
	return models.Appointment{ID: id, Date: date, Time: hm, Status: status}
}

func TestHasConflict_ExactSlotMatch(t *testing.T) {
	existing := []models.Appointment{
		slot(1, "2026-03-10", "14:00", "confirmed"),
	}

	assert.True(t, HasConflict(existing, "2026-03-10", "14:00", 0))
}

func TestHasConflict_DifferentTimeOrDate(t *testing.T) {
	existing := []models.Appointment{
		slot(1, "2026-03-10", "14:00", "confirmed"),
	}

	assert.False(t, HasConflict(existing, "2026-03-10", "14:30", 0))
	assert.False(t, HasConflict(existing, "2026-03-11", "14:00", 0))
}

func TestHasConflict_ExcludesOwnID(t *testing.T) {
	existing := []models.Appointment{
		slot(7, "2026-03-10", "14:00", "confirmed"),
	}

	// Editing appointment 7 onto its own slot is not a conflict.
	assert.False(t, HasConflict(existing, "2026-03-10", "14:00", 7))
	assert.True(t, HasConflict(existing, "2026-03-10", "14:00", 8))
}

func TestHasConflict_CancelledStillBlocks(t *testing.T) {
	existing := []models.Appointment{
		slot(1, "2026-03-10", "14:00", "cancelled"),
	}

	assert.True(t, HasConflict(existing, "2026-03-10", "14:00", 0))
}

func TestHasConflict_NormalizesStoredDates(t *testing.T) {
	existing := []models.Appointment{
		slot(1, "2026-03-10T00:00:00.000Z", "14:00", "pending"),
	}

	assert.True(t, HasConflict(existing, "2026-03-10", "14:00", 0))
}

func TestHasConflict_EmptyList(t *testing.T) {
	assert.False(t, HasConflict(nil, "2026-03-10", "14:00", 0))
}
