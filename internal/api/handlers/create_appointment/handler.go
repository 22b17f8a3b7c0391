package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	createAppointment "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/create_appointment"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidInput        = "некорректные параметры запроса"
	msgInvalidDateOrTime   = "некорректная дата или время"
	msgDraftNotFound       = "черновик записи не найден"
	msgDraftIncomplete     = "в черновике не хватает данных для записи"
	msgServiceNotFound     = "услуга не найдена"
	msgSlotTaken           = "выбранное время уже занято"
	msgDateInPast          = "дата и время не могут быть в прошлом"
	msgOutsideWorkingHours = "время вне рабочих часов"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var httpReq CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := httpReq.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrDraftNotFound):
			h.logger.Warn("POST /appointments - Draft not found: draft_id=%v", httpReq.DraftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, createAppointment.ErrDraftIncomplete):
			h.logger.Warn("POST /appointments - Draft incomplete: draft_id=%v", httpReq.DraftID)
			handlers.RespondBadRequest(w, msgDraftIncomplete)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken")
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past")
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Time outside working hours")
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d", result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
