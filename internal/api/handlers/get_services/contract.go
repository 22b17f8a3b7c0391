package get_services

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

type CatalogService interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
