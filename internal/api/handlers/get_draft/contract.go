package get_draft

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

type DraftsService interface {
	Get(ctx context.Context, id string) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
