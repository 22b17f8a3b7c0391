package create_block

import (
	"errors"
	"net/http"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	appointmentsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/appointments"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные параметры запроса"
	msgInvalidDateOrTime = "некорректная дата или время"
	msgSlotTaken         = "интервал пересекается с существующей записью"
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

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var httpReq CreateBlockRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	serviceReq, err := httpReq.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocks - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrSlotTaken):
			h.logger.Warn("POST /blocks - Interval overlaps: barber_id=%d, date=%s, time=%s",
				httpReq.BarberID, httpReq.Date, httpReq.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocks - Failed to create block: barber_id=%d, error=%v",
				httpReq.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: id=%d, barber_id=%d, date=%s",
		result.ID, httpReq.BarberID, httpReq.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
