package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	draftRepo "github.com/Evelo00/barbershop-Front-sub000/internal/infra/storage/draft"
)

// Service сервис черновиков мастера бронирования.
// Черновик — явный объект с определенными полями и операцией сброса;
// он передается между шагами по идентификатору вместо разрозненного
// клиентского key-value хранилища.
type Service struct {
	repo   DraftRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(repo DraftRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create создает пустой черновик и возвращает его идентификатор
func (s *Service) Create(ctx context.Context) (*domain.BookingDraft, error) {
	draft := &domain.BookingDraft{
		ID: uuid.NewString(),
	}

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: draft id=%s created", created.ID)
	return created, nil
}

// Get возвращает черновик по идентификатору
func (s *Service) Get(ctx context.Context, id string) (*domain.BookingDraft, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	draft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("Get: draft id=%s not found", id)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("Get: repository error for draft id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return draft, nil
}

// Update перезаписывает поля черновика очередного шага мастера
func (s *Service) Update(ctx context.Context, draft *domain.BookingDraft) (*domain.BookingDraft, error) {
	if err := validateID(draft.ID); err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		s.logger.Warn("Update: validation failed for draft id=%s: %v", draft.ID, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, draft)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("Update: draft id=%s not found", draft.ID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("Update: repository error for draft id=%s: %v", draft.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: draft id=%s updated", draft.ID)
	return updated, nil
}

// Clear удаляет черновик: сброс мастера бронирования
func (s *Service) Clear(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("Clear: draft id=%s not found", id)
			return ErrDraftNotFound
		}
		s.logger.Error("Clear: repository error for draft id=%s: %v", id, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: draft id=%s cleared", id)
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: draft id must be a valid uuid", ErrInvalidInput)
	}
	return nil
}

func validateDraft(draft *domain.BookingDraft) error {
	if draft.ServiceID != nil && *draft.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if draft.BarberID != nil && *draft.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if draft.StartTime != nil {
		if err := draft.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}

	if draft.ClientName != nil && len(*draft.ClientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName too long", ErrInvalidInput)
	}

	if draft.Notes != nil && len(*draft.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}
