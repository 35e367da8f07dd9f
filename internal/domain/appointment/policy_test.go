package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

func TestIsOwner(t *testing.T) {
	ap := &models.Appointment{ClientEmail: "ana@example.com"}

	assert.True(t, IsOwner(ap, "ana@example.com"))
	assert.False(t, IsOwner(ap, "bob@example.com"))
	assert.False(t, IsOwner(&models.Appointment{}, ""))
}

func TestCanDelete_AdminOnlyTerminalStatuses(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		ap := &models.Appointment{Status: status}
		assert.True(t, CanDelete(ap, ActorAdmin, ""), status)
	}

	for _, status := range []string{"pending", "confirmed", "in-progress"} {
		ap := &models.Appointment{Status: status}
		assert.False(t, CanDelete(ap, ActorAdmin, ""), status)
	}
}

func TestCanDelete_ClientOwnAppointmentAnyStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "in-progress", "completed", "cancelled"} {
		ap := &models.Appointment{Status: status, ClientEmail: "ana@example.com"}
		assert.True(t, CanDelete(ap, ActorClient, "ana@example.com"), status)
	}
}

func TestCanDelete_ClientCannotDeleteOthers(t *testing.T) {
	ap := &models.Appointment{Status: "cancelled", ClientEmail: "ana@example.com"}
	assert.False(t, CanDelete(ap, ActorClient, "bob@example.com"))
}

func TestCanDelete_SystemNeverDeletes(t *testing.T) {
	ap := &models.Appointment{Status: "cancelled", ClientEmail: "ana@example.com"}
	assert.False(t, CanDelete(ap, ActorSystem, "ana@example.com"))
}
