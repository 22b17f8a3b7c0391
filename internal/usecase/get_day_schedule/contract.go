package get_day_schedule

import (
	"context"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// BookingAPIClient интерфейс клиента backend API бронирований
type BookingAPIClient interface {
	GetBarbers(ctx context.Context) ([]domain.Barber, error)
	GetAppointmentsForDay(ctx context.Context, date time.Time, barberID *int64) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
