package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	"github.com/Evelo00/barbershop-Front-sub000/internal/schedule"
)

// validateRequest валидирует форму запроса: либо черновик, либо полный
// набор полей для прямого создания
func validateRequest(req *Request) error {
	if req.DraftID != nil {
		if _, err := uuid.Parse(*req.DraftID); err != nil {
			return fmt.Errorf("%w: draftID must be a valid uuid", ErrInvalidInput)
		}
		return nil
	}

	if req.ServiceID == nil || *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Date == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime == nil {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.ClientName == nil || *req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if req.ClientPhone == nil || *req.ClientPhone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	return validateCommonFields(req.BarberID, req.ClientName, req.Notes)
}

// mergeDraft накладывает переопределения запроса на черновик и
// проверяет полноту результата
func mergeDraft(draft *domain.BookingDraft, req *Request) (*appointmentInput, error) {
	merged := *draft
	if req.ServiceID != nil {
		merged.ServiceID = req.ServiceID
	}
	if req.BarberID != nil {
		merged.BarberID = req.BarberID
	}
	if req.Date != nil {
		merged.Date = req.Date
	}
	if req.StartTime != nil {
		merged.StartTime = req.StartTime
	}
	if req.ClientName != nil {
		merged.ClientName = req.ClientName
	}
	if req.ClientPhone != nil {
		merged.ClientPhone = req.ClientPhone
	}
	if req.ClientEmail != nil {
		merged.ClientEmail = req.ClientEmail
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}

	if !merged.IsComplete() {
		return nil, ErrDraftIncomplete
	}
	if err := validateCommonFields(merged.BarberID, merged.ClientName, merged.Notes); err != nil {
		return nil, err
	}

	return &appointmentInput{
		ServiceID:   *merged.ServiceID,
		BarberID:    merged.BarberID,
		Date:        *merged.Date,
		StartTime:   *merged.StartTime,
		ClientName:  *merged.ClientName,
		ClientPhone: *merged.ClientPhone,
		ClientEmail: merged.ClientEmail,
		Notes:       merged.Notes,
	}, nil
}

func validateCommonFields(barberID *int64, clientName, notes *string) error {
	if barberID != nil && *barberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if clientName != nil && len(*clientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if notes != nil && len(*notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateInput проверяет дату и время собранной записи: не в прошлом
// и внутри рабочего окна дня
func validateInput(input *appointmentInput, now time.Time, window schedule.Window) error {
	startMinutes, err := input.StartTime.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return ErrInvalidDate
	}
	if day.Equal(today) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if startMinutes <= nowMinutes {
			return ErrInvalidDate
		}
	}

	if !window.Contains(startMinutes) {
		return ErrOutsideWorkingHours
	}
	return nil
}
