package update_draft

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

type DraftsService interface {
	Update(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
