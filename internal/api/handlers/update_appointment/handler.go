package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	appointmentsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidInput         = "некорректные параметры запроса"
	msgInvalidDateOrTime    = "некорректная дата или время"
	msgAppointmentNotFound  = "запись не найдена"
	msgSlotTaken            = "новое время уже занято"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentIDStr := mux.Vars(r)["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var httpReq UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := httpReq.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid date or time: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Update(r.Context(), appointmentID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id} - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
