package get_services

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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.GetServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to get services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Catalog retrieved: services_count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
