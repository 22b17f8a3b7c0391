package create_draft

import (
	"net/http"
	"time"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
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

// CreateDraftResponse HTTP response model
type CreateDraftResponse struct {
	DraftID   string `json:"draftId"`
	CreatedAt string `json:"createdAt"`
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /drafts - Failed to create draft: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateDraftResponse{
		DraftID:   draft.ID,
		CreatedAt: draft.CreatedAt.Format(time.RFC3339),
	})
}
