package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	draftstorage "github.com/Evelo00/barbershop-Front-sub000/internal/infra/storage/draft"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

// UseCase use case создания записи: напрямую или подтверждением черновика
type UseCase struct {
	apiClient    BookingAPIClient
	draftRepo    DraftRepository
	txManager    TxManager
	cache        AvailabilityCache
	windows      schedule.WindowTable
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil — тогда инвалидация кеша пропускается.
func NewUseCase(
	apiClient BookingAPIClient,
	draftRepo DraftRepository,
	txManager TxManager,
	cache AvailabilityCache,
	windows schedule.WindowTable,
	logger Logger,
) *UseCase {
	return &UseCase{
		apiClient:    apiClient,
		draftRepo:    draftRepo,
		txManager:    txManager,
		cache:        cache,
		windows:      windows,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var appt *domain.Appointment
	var err error

	if req.DraftID != nil {
		appt, err = uc.createFromDraft(ctx, req)
	} else {
		appt, err = uc.createDirect(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx, appt)

	uc.logger.Info("CreateAppointment: created appointment id=%d, date=%s, time=%s",
		appt.ID, appt.Date.Format(domain.DateFormat), appt.StartTime)

	return &Response{Appointment: appt}, nil
}

// createFromDraft подтверждает черновик: читает и удаляет его в одной
// сериализуемой транзакции, чтобы двойной сабмит не создал две записи
func (uc *UseCase) createFromDraft(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: confirming draft id=%s", *req.DraftID)

	var appt *domain.Appointment
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		draft, err := uc.draftRepo.GetByID(ctx, *req.DraftID)
		if err != nil {
			if errors.Is(err, draftstorage.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		input, err := mergeDraft(draft, req)
		if err != nil {
			return err
		}

		appt, err = uc.createOnBackend(ctx, input)
		if err != nil {
			return err
		}

		if err := uc.draftRepo.Delete(ctx, draft.ID); err != nil {
			// Запись на backend'е уже создана: не откатываем её из-за
			// неудачного удаления черновика
			uc.logger.Warn("CreateAppointment: failed to delete draft id=%s: %v", draft.ID, err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Warn("CreateAppointment: draft id=%s: %v", *req.DraftID, txErr)
		return nil, txErr
	}
	return appt, nil
}

// createDirect создает запись из полей запроса без черновика
func (uc *UseCase) createDirect(ctx context.Context, req *Request) (*domain.Appointment, error) {
	input := &appointmentInput{
		ServiceID:   *req.ServiceID,
		BarberID:    req.BarberID,
		Date:        *req.Date,
		StartTime:   *req.StartTime,
		ClientName:  *req.ClientName,
		ClientPhone: *req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
	}

	appt, err := uc.createOnBackend(ctx, input)
	if err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}
	return appt, nil
}

// createOnBackend валидирует собранные данные и создает запись на backend'е
func (uc *UseCase) createOnBackend(ctx context.Context, input *appointmentInput) (*domain.Appointment, error) {
	now := uc.timeProvider.Now()
	window := uc.windows.ResolveDayWindow(input.Date)
	if err := validateInput(input, now, window); err != nil {
		return nil, err
	}

	service, err := uc.apiClient.GetService(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	appt, err := uc.apiClient.CreateAppointment(ctx, bookingapi.CreateAppointmentParams{
		BarberID:        input.BarberID,
		ClientName:      input.ClientName,
		ClientPhone:     input.ClientPhone,
		ClientEmail:     input.ClientEmail,
		ServiceID:       &input.ServiceID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: service.DurationMinutes,
		Notes:           input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrSlotTaken):
			return nil, ErrSlotTaken
		case errors.Is(err, bookingapi.ErrBadRequest):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}
	return appt, nil
}

// invalidateCache сбрасывает кеш доступности на дату записи. Ошибка
// кеша не фатальна: устаревшая доступность истечет по TTL.
func (uc *UseCase) invalidateCache(ctx context.Context, appt *domain.Appointment) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, appt.Date, appt.BarberID); err != nil {
		uc.logger.Warn("CreateAppointment: cache invalidation failed for date=%s: %v",
			appt.Date.Format(domain.DateFormat), err)
	}
}
