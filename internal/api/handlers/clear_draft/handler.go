package clear_draft

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

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	if err := h.service.Clear(r.Context(), draftID); err != nil {
		switch {
		case errors.Is(err, draftsService.ErrInvalidInput):
			h.logger.Warn("DELETE /drafts/{id} - Invalid draft ID: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgInvalidDraftID)

		case errors.Is(err, draftsService.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to clear draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft cleared: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
