package update_appointment

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// UpdateAppointmentRequest HTTP request model. nil-поля не изменяются.
type UpdateAppointmentRequest struct {
	BarberID        *int64  `json:"barberId,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *UpdateAppointmentRequest) ToServiceRequest() (*models.UpdateAppointmentRequest, error) {
	req := &models.UpdateAppointmentRequest{
		BarberID:        r.BarberID,
		ServiceID:       r.ServiceID,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}

	return req, nil
}
