package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	apiClient    BookingAPIClient
	cache        AvailabilityCache
	windows      schedule.WindowTable
	granularity  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil — тогда кеширование отключено.
func NewUseCase(
	apiClient BookingAPIClient,
	cache AvailabilityCache,
	windows schedule.WindowTable,
	granularityMinutes int,
	logger Logger,
) *UseCase {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultGranularityMinutes
	}
	return &UseCase{
		apiClient:    apiClient,
		cache:        cache,
		windows:      windows,
		granularity:  granularityMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, barber=%v, date=%s",
		req.ServiceID, req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не может быть в прошлом (сегодня — можно)
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу: длительность нужна backend'у для расчета доступности
	service, err := uc.apiClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты-кандидаты по рабочему окну дня недели
	window := uc.windows.ResolveDayWindow(req.Date)
	candidates := schedule.GenerateSlots(window, uc.granularity)

	// 6. Получаем доступность с backend'а (через кеш, если он включен)
	available, err := uc.fetchAvailability(ctx, req, service.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 7. Пересекаем кандидатов с доступностью и отрезаем прошедшие слоты сегодня
	slots := schedule.FilterAvailable(candidates, available, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%d, date=%s",
		len(slots), len(candidates), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		BarberID:  req.BarberID,
		Slots:     slots,
	}, nil
}

// fetchAvailability читает доступность из кеша, при промахе идет в backend
// и кладет ответ в кеш. Ошибки кеша не фатальны.
func (uc *UseCase) fetchAvailability(ctx context.Context, req *Request, durationMinutes int) ([]types.TimeString, error) {
	if uc.cache != nil {
		values, found, err := uc.cache.Get(ctx, req.Date, durationMinutes, req.BarberID)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: cache read failed: %v", err)
		} else if found {
			return values, nil
		}
	}

	values, err := uc.apiClient.GetAvailability(ctx, req.Date, durationMinutes, req.BarberID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.Date, durationMinutes, req.BarberID, values); err != nil {
			uc.logger.Warn("GetAvailableSlots: cache write failed: %v", err)
		}
	}

	return values, nil
}
