package get_barbers

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

type CatalogService interface {
	GetBarbers(ctx context.Context) ([]domain.Barber, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
