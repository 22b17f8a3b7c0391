package create_block

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments/models"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// CreateBlockRequest HTTP request model: интервал недоступности барбера.
// Нулевая длительность допустима — метка на сетке без занятого времени.
type CreateBlockRequest struct {
	BarberID        int64   `json:"barberId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Note            *string `json:"note,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreateBlockRequest) ToServiceRequest() (*models.CreateBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		BarberID:        r.BarberID,
		Date:            date,
		StartTime:       start,
		DurationMinutes: r.DurationMinutes,
		Note:            r.Note,
	}, nil
}
