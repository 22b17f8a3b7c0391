package get_available_slots

import (
	"context"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// BookingAPIClient интерфейс клиента backend API бронирований
type BookingAPIClient interface {
	// GetService получает услугу (нужна длительность для запроса доступности)
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	// GetAvailability получает доступные значения "HH:MM" на дату
	GetAvailability(ctx context.Context, date time.Time, durationMinutes int, barberID *int64) ([]types.TimeString, error)
}

// AvailabilityCache кеш ответов backend'а по доступности.
// Может отсутствовать (nil): тогда каждый запрос идет в backend.
type AvailabilityCache interface {
	Get(ctx context.Context, date time.Time, durationMinutes int, barberID *int64) ([]types.TimeString, bool, error)
	Set(ctx context.Context, date time.Time, durationMinutes int, barberID *int64, values []types.TimeString) error
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
