package catalog

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// BookingAPIClient интерфейс клиента backend API
type BookingAPIClient interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
	GetBarbers(ctx context.Context) ([]domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
