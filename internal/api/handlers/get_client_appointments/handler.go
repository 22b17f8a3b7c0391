package get_client_appointments

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	"github.com/Evelo00/barbershop-Front-sub000/internal/api/middleware"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgForbidden       = "доступ только к своим записям"
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

// Handle GET /api/v1/clients/{clientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIDStr := mux.Vars(r)["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/appointments - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Клиент видит только свою историю, администратор — любую
	userID, _ := middleware.UserIDFromContext(r.Context())
	if userID != clientID && middleware.RoleFromContext(r.Context()) != middleware.RoleAdmin {
		h.logger.Warn("GET /clients/{id}/appointments - Access denied: user_id=%d, client_id=%d", userID, clientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetClientAppointments(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{id}/appointments - Failed to get appointments: client_id=%d, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/appointments - Appointments retrieved: client_id=%d, count=%d",
		clientID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
