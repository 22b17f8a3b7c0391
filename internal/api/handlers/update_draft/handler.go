package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Evelo00/barbershop-Front-sub000/internal/api/handlers"
	draftsService "github.com/Evelo00/barbershop-Front-sub000/internal/service/drafts"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidDateOrTime = "некорректная дата или время"
	msgInvalidInput      = "некорректные данные черновика"
	msgDraftNotFound     = "черновик не найден"
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

// Handle PUT /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	var httpReq UpdateDraftRequest
	if err := handlers.DecodeJSON(r, &httpReq); err != nil {
		h.logger.Warn("PUT /drafts/{id} - Invalid request body: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	draft, err := httpReq.ToDomainDraft(draftID)
	if err != nil {
		h.logger.Warn("PUT /drafts/{id} - Invalid date or time: draft_id=%s, error=%v", draftID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	updated, err := h.service.Update(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, draftsService.ErrInvalidInput):
			h.logger.Warn("PUT /drafts/{id} - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, draftsService.ErrDraftNotFound):
			h.logger.Warn("PUT /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("PUT /drafts/{id} - Failed to update draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /drafts/{id} - Draft updated: draft_id=%s, complete=%t", draftID, updated.IsComplete())
	handlers.RespondJSON(w, http.StatusOK, FromDomainDraft(updated))
}
