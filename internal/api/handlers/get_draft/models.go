package get_draft

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
)

// DraftResponse HTTP response model
type DraftResponse struct {
	DraftID     string  `json:"draftId"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	BarberID    *int64  `json:"barberId,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Complete    bool    `json:"complete"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FromDomainDraft конвертирует черновик в HTTP response
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		DraftID:     d.ID,
		ServiceID:   d.ServiceID,
		BarberID:    d.BarberID,
		ClientName:  d.ClientName,
		ClientPhone: d.ClientPhone,
		ClientEmail: d.ClientEmail,
		Notes:       d.Notes,
		Complete:    d.IsComplete(),
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}

	if d.Date != nil {
		s := d.Date.Format(domain.DateFormat)
		resp.Date = &s
	}
	if d.StartTime != nil {
		s := d.StartTime.String()
		resp.StartTime = &s
	}

	return resp
}
