package drafts

import (
	"context"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков бронирования
type DraftRepository interface {
	Create(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	GetByID(ctx context.Context, id string) (*domain.BookingDraft, error)
	Update(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
