package get_available_slots

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	getAvailableSlots "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	ServiceID int64           `json:"serviceId"`
	BarberID  *int64          `json:"barberId,omitempty"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot временной слот: машинное значение и подпись для UI
type AvailableSlot struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Value:   slot.Value.String(),
			Display: slot.Display,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		BarberID:  resp.BarberID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(serviceID int64, barberID *int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		BarberID:  barberID,
		Date:      date,
	}, nil
}
