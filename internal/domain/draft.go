package domain

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// BookingDraft промежуточное состояние мастера бронирования.
// Хранится на сервере по идентификатору черновика и передается между
// шагами (услуга → барбер → дата и время → подтверждение) явно,
// а не через разрозненное key-value хранилище на клиенте.
type BookingDraft struct {
	ID          string // uuid
	ServiceID   *int64
	BarberID    *int64 // nil = любой барбер
	Date        *time.Time
	StartTime   *types.TimeString
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsComplete returns true if the draft carries everything needed to
// create an appointment
func (d *BookingDraft) IsComplete() bool {
	return d.ServiceID != nil &&
		d.Date != nil &&
		d.StartTime != nil &&
		d.ClientName != nil && *d.ClientName != "" &&
		d.ClientPhone != nil && *d.ClientPhone != ""
}
