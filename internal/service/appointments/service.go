package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/integrations/bookingapi"
	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
)

// Service сервис для работы с записями: дашборд клиента,
// редактирование, отмена и блокировка интервалов барберов.
// Все данные живут на backend'е; сервис добавляет валидацию,
// нормализацию и сброс кэша доступности.
type Service struct {
	apiClient BookingAPIClient
	cache     AvailabilityCache // может быть nil, если Redis выключен
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apiClient BookingAPIClient, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		apiClient: apiClient,
		cache:     cache,
		logger:    logger,
	}
}

// GetClientAppointments получает записи клиента для его дашборда
func (s *Service) GetClientAppointments(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d", clientID)

	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	appointments, err := s.apiClient.GetClientAppointments(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: backend error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - backend error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%d", len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Update редактирует запись (перенос, смена барбера или услуги, заметки)
func (s *Service) Update(ctx context.Context, appointmentID int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", appointmentID)

	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for appointment id=%d: %v", appointmentID, err)
		return nil, err
	}

	updated, err := s.apiClient.UpdateAppointment(ctx, appointmentID, bookingapi.UpdateAppointmentParams{
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, bookingapi.ErrSlotTaken):
			s.logger.Warn("Update: target slot taken for appointment id=%d", appointmentID)
			return nil, ErrSlotTaken
		case errors.Is(err, bookingapi.ErrBadRequest):
			s.logger.Warn("Update: backend rejected update for appointment id=%d: %v", appointmentID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("Update: backend error for appointment id=%d: %v", appointmentID, err)
			return nil, fmt.Errorf("%w: Update - backend error: %v", ErrInternal, err)
		}
	}

	s.invalidateCache(ctx, updated)

	s.logger.Info("Update: appointment id=%d updated", appointmentID)
	response := models.FromDomainAppointment(updated)
	return &response, nil
}

// Cancel отменяет запись
func (s *Service) Cancel(ctx context.Context, appointmentID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", appointmentID)

	if appointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if err := s.apiClient.CancelAppointment(ctx, appointmentID); err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		case errors.Is(err, bookingapi.ErrBadRequest):
			s.logger.Warn("Cancel: backend rejected cancellation of appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("Cancel: backend error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: Cancel - backend error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", appointmentID)
	return nil
}

// CreateBlock помечает интервал барбера недоступным для записи
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("CreateBlock: blocking barber=%d on %s at %s for %d minutes",
		req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateBlockRequest(req); err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	block, err := s.apiClient.CreateBlock(ctx, req.BarberID, req.Date, req.StartTime, req.DurationMinutes, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, bookingapi.ErrSlotTaken):
			s.logger.Warn("CreateBlock: interval already taken for barber=%d", req.BarberID)
			return nil, ErrSlotTaken
		case errors.Is(err, bookingapi.ErrBadRequest):
			s.logger.Warn("CreateBlock: backend rejected block for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("CreateBlock: backend error for barber=%d: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: CreateBlock - backend error: %v", ErrInternal, err)
		}
	}

	s.invalidateCache(ctx, block)

	s.logger.Info("CreateBlock: block id=%d created for barber=%d", block.ID, req.BarberID)
	response := models.FromDomainAppointment(block)
	return &response, nil
}

// invalidateCache сбрасывает кэш доступности на дату записи.
// Ошибка сброса не фатальна: кэш истечет по TTL.
func (s *Service) invalidateCache(ctx context.Context, appt *domain.Appointment) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, appt.Date, appt.BarberID); err != nil {
		s.logger.Warn("invalidateCache: failed to invalidate availability for date=%s: %v",
			appt.Date.Format(domain.DateFormat), err)
	}
}

func validateUpdateRequest(req *models.UpdateAppointmentRequest) error {
	if req.BarberID == nil && req.ServiceID == nil && req.Date == nil &&
		req.StartTime == nil && req.DurationMinutes == nil && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}

	if req.DurationMinutes != nil && (*req.DurationMinutes <= 0 || *req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be in range 1-%d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

func validateBlockRequest(req *models.CreateBlockRequest) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	// Нулевая длительность допустима: блокировка-отметка,
	// раскладка отрисует ее блоком минимальной высоты
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be in range %d-%d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNotesLength {
		return fmt.Errorf("%w: note too long", ErrInvalidInput)
	}

	return nil
}
