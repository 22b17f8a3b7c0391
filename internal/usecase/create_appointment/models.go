package create_appointment

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// Request модель запроса на создание записи.
// Если задан DraftID, данные берутся из черновика, а остальные поля
// запроса работают как переопределения последнего шага мастера.
type Request struct {
	DraftID     *string
	ServiceID   *int64
	BarberID    *int64 // nil = любой барбер
	Date        *time.Time
	StartTime   *types.TimeString
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	Notes       *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}

// appointmentInput собранные из черновика и запроса данные записи
type appointmentInput struct {
	ServiceID   int64
	BarberID    *int64
	Date        time.Time
	StartTime   types.TimeString
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Notes       *string
}
