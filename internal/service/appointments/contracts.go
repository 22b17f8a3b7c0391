package appointments

import (
	"context"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// BookingAPIClient интерфейс клиента backend API бронирований
type BookingAPIClient interface {
	GetClientAppointments(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID int64, params bookingapi.UpdateAppointmentParams) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID int64) error
	CreateBlock(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString, durationMinutes int, note *string) (*domain.Appointment, error)
}

// AvailabilityCache интерфейс кэша доступности; после изменения записи
// кэш на ее дату сбрасывается
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time, barberID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
