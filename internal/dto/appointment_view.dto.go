package dto

import (
	"time"

	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

// AppointmentView is the read shape of an appointment: the record plus
// the display fields joined from its service. The joined fields are not
// authoritative; the service row is.
type AppointmentView struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	ServiceID   uint   `json:"serviceId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	CreatedBy   string `json:"createdBy"`

	ServiceName string  `json:"serviceName"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAppointmentView(ap models.Appointment) AppointmentView {
	return AppointmentView{
		ID:          ap.ID,
		ClientName:  ap.ClientName,
		ClientEmail: ap.ClientEmail,
		ClientPhone: ap.ClientPhone,
		ServiceID:   ap.ServiceID,
		Date:        ap.Date,
		Time:        ap.Time,
		Status:      ap.Status,
		Notes:       ap.Notes,
		CreatedBy:   ap.CreatedBy,
		ServiceName: ap.Service.Name,
		Duration:    ap.Service.DurationMin,
		Price:       ap.Service.Price,
		CreatedAt:   ap.CreatedAt,
		UpdatedAt:   ap.UpdatedAt,
	}
}

func NewAppointmentViews(aps []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentView(ap))
	}
	return out
}
