package get_services

import "github.com/Evelo00/barbershop-Front-sub000/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []ServiceItem `json:"services"`
}

// ServiceItem услуга из каталога
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Description     *string `json:"description,omitempty"`
}

// FromDomainServices конвертирует каталог услуг в HTTP response
func FromDomainServices(services []domain.Service) *ServicesResponse {
	items := make([]ServiceItem, len(services))
	for i, s := range services {
		items[i] = ServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Description:     s.Description,
		}
	}
	return &ServicesResponse{Services: items}
}
