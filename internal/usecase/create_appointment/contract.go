package create_appointment

import (
	"context"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
)

// BookingAPIClient интерфейс клиента backend API бронирований
type BookingAPIClient interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	CreateAppointment(ctx context.Context, params bookingapi.CreateAppointmentParams) (*domain.Appointment, error)
}

// DraftRepository интерфейс репозитория черновиков бронирования
type DraftRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// TxManager интерфейс управления транзакциями
type TxManager interface {
	// DoSerializable выполняет fn в сериализуемой транзакции: два
	// конкурентных подтверждения одного черновика не пройдут оба
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache кеш доступности, сбрасываемый после создания записи.
// Может отсутствовать (nil).
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time, barberID *int64) error
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
