package get_barbers

import (
	"net/http"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbers, err := h.service.GetBarbers(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to get barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Catalog retrieved: barbers_count=%d", len(barbers))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBarbers(barbers))
}
