package create_appointment

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
	createAppointment "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/create_appointment"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// CreateAppointmentRequest HTTP request model.
// Либо draftId подтверждаемого черновика, либо полный набор полей.
type CreateAppointmentRequest struct {
	DraftID     *string `json:"draftId,omitempty"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	BarberID    *int64  `json:"barberId,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		DraftID:     r.DraftID,
		ServiceID:   r.ServiceID,
		BarberID:    r.BarberID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Notes:       r.Notes,
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) models.AppointmentResponse {
	return models.FromDomainAppointment(resp.Appointment)
}
