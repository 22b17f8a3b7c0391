package domain

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusBlocked помечает запись-заглушку: барбер недоступен в этом интервале
	StatusBlocked AppointmentStatus = "blocked"
)

// Appointment represents a normalized appointment record.
// Backend responses come in several historical shapes; everything is
// converted into this one type at the integration boundary.
type Appointment struct {
	ID              int64
	BarberID        *int64 // nil = запись без назначенного барбера
	ClientID        *int64 // nil для блокировок
	ServiceID       *int64 // nil для блокировок
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized display data
	ClientName  string
	ServiceName string
	BarberName  string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlock returns true if the record marks a barber as unavailable
func (a *Appointment) IsBlock() bool {
	return a.Status == StatusBlocked
}

// IsActive returns true if the appointment still occupies its time range
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can be edited
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed || a.Status == StatusBlocked
}

// EffectiveDuration returns the duration clamped to a non-negative value.
// Malformed records from the backend keep duration 0 and are rendered as
// minimum-height blocks instead of being rejected.
func (a *Appointment) EffectiveDuration() int {
	if a.DurationMinutes < 0 {
		return 0
	}
	return a.DurationMinutes
}
