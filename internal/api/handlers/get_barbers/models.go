package get_barbers

import "github.com/Evelo00/barbershop-Front-sub000/internal/domain"

// BarbersResponse HTTP response model
type BarbersResponse struct {
	Barbers []BarberItem `json:"barbers"`
}

// BarberItem барбер из каталога
type BarberItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// FromDomainBarbers конвертирует список барберов в HTTP response
func FromDomainBarbers(barbers []domain.Barber) *BarbersResponse {
	items := make([]BarberItem, len(barbers))
	for i, b := range barbers {
		items[i] = BarberItem{
			ID:       b.ID,
			Name:     b.Name,
			PhotoURL: b.PhotoURL,
		}
	}
	return &BarbersResponse{Barbers: items}
}
