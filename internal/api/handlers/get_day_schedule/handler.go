package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	getDaySchedule "github.com/Evelo00/barbershop-Front-sub000/internal/usecase/get_day_schedule"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBarberID = "некорректный ID барбера"
	msgInvalidInput    = "некорректные параметры запроса"
	msgBarberNotFound  = "барбер не найден"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/day-schedule
// Query params: date (required, YYYY-MM-DD), barberId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /day-schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var barberID *int64
	if barberIDStr := query.Get("barberId"); barberIDStr != "" {
		id, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /day-schedule - Invalid barber ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		barberID = &id
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, barberID)
	if err != nil {
		h.logger.Warn("GET /day-schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrBarberNotFound):
			h.logger.Warn("GET /day-schedule - Barber not found: barber_id=%v", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /day-schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /day-schedule - Failed to build schedule: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /day-schedule - Schedule built: date=%s, columns=%d", dateStr, len(result.Columns))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
