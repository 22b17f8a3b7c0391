package catalog

import (
	"context"
	"fmt"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// Service каталог услуг и барберов: тонкая прослойка над backend'ом
// для первых шагов мастера бронирования
type Service struct {
	apiClient BookingAPIClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(apiClient BookingAPIClient, logger Logger) *Service {
	return &Service{
		apiClient: apiClient,
		logger:    logger,
	}
}

// GetServices возвращает каталог услуг
func (s *Service) GetServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.apiClient.GetServices(ctx)
	if err != nil {
		s.logger.Error("GetServices: backend error: %v", err)
		return nil, fmt.Errorf("%w: GetServices - backend error: %v", ErrInternal, err)
	}

	s.logger.Info("GetServices: fetched %d services", len(services))
	return services, nil
}

// GetBarbers возвращает активных барберов
func (s *Service) GetBarbers(ctx context.Context) ([]domain.Barber, error) {
	barbers, err := s.apiClient.GetBarbers(ctx)
	if err != nil {
		s.logger.Error("GetBarbers: backend error: %v", err)
		return nil, fmt.Errorf("%w: GetBarbers - backend error: %v", ErrInternal, err)
	}

	active := make([]domain.Barber, 0, len(barbers))
	for _, b := range barbers {
		if b.Active {
			active = append(active, b)
		}
	}

	s.logger.Info("GetBarbers: fetched %d barbers (%d active)", len(barbers), len(active))
	return active, nil
}
