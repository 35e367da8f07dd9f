package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"clientName"`
	ClientEmail string `gorm:"size:100" json:"clientEmail"`
	ClientPhone string `gorm:"size:20" json:"clientPhone"`

	ServiceID uint    `json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Slot identity. Date is YYYY-MM-DD, Time is HH:MM (24h).
	// The pair is intentionally NOT unique at the database level;
	// the slot check before submission is the only guard.
	Date string `gorm:"size:10;not null;index:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_slot" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes     string `gorm:"size:255" json:"notes"`
	CreatedBy string `gorm:"size:10;default:'client'" json:"createdBy"`

	CancelledAt *time.Time `json:"cancelledAt"`
	CompletedAt *time.Time `json:"completedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
