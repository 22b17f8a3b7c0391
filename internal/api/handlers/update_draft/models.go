package update_draft

import (
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

// UpdateDraftRequest HTTP request model: состояние мастера после
// очередного шага. Поля перезаписываются целиком.
type UpdateDraftRequest struct {
	ServiceID   *int64  `json:"serviceId,omitempty"`
	BarberID    *int64  `json:"barberId,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ToDomainDraft конвертирует HTTP запрос в доменный черновик
func (r *UpdateDraftRequest) ToDomainDraft(draftID string) (*domain.BookingDraft, error) {
	draft := &domain.BookingDraft{
		ID:          draftID,
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
		draft.Date = &date
	}

	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		draft.StartTime = &start
	}

	return draft, nil
}

// UpdateDraftResponse HTTP response model
type UpdateDraftResponse struct {
	DraftID   string `json:"draftId"`
	Complete  bool   `json:"complete"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainDraft конвертирует черновик в HTTP response
func FromDomainDraft(d *domain.BookingDraft) *UpdateDraftResponse {
	return &UpdateDraftResponse{
		DraftID:   d.ID,
		Complete:  d.IsComplete(),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
