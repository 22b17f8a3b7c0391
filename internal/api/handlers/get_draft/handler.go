package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	draftsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/drafts"
)

const (
	msgInvalidDraftID = "некорректный ID черновика"
	msgDraftNotFound  = "черновик не найден"
)

type Handler struct {
	service DraftsService
	logger  Logger
}

func NewHandler(service DraftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	draft, err := h.service.Get(r.Context(), draftID)
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrInvalidInput):
			h.logger.Warn("GET /drafts/{id} - Invalid draft ID: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDraftID)

		case errors.Is(err, draftsService.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("GET /drafts/{id} - Failed to get draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /drafts/{id} - Draft retrieved: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(draft))
}
