package models

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// AppointmentResponse запись в ответе API
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	BarberID        *int64  `json:"barberId,omitempty"`
	BarberName      string  `json:"barberName,omitempty"`
	ClientID        *int64  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	ServiceName     string  `json:"serviceName,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует доменную запись в ответ API
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		BarberID:        a.BarberID,
		BarberName:      a.BarberName,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{Appointments: result}
}

// UpdateAppointmentRequest запрос на редактирование записи.
// nil-поля остаются без изменений.
type UpdateAppointmentRequest struct {
	BarberID        *int64
	ServiceID       *int64
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int
	Notes           *string
}

// CreateBlockRequest запрос на блокировку интервала барбера
type CreateBlockRequest struct {
	BarberID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Note            *string
}
