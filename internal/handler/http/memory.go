package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/service"
	"github.com/privyhq/privy/internal/utils"
	"github.com/privyhq/privy/models"
)

func (h *Handler) saveMemory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, secret, ok := callerFromContext(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SaveMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveMemory").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.MemoryService.SaveMemory(r.Context(), user, secret, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.saveMemory").Msg("error saving memory")
		http.Error(w, "error saving memory", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listMemories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, secret, ok := callerFromContext(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// limit is optional; the service applies its default and cap
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	views, err := h.services.MemoryService.ListMemories(r.Context(), user, secret, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMemories").Msg("error listing memories")
		http.Error(w, "error listing memories", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) deleteMemories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.MemoryService.DeleteMemories(r.Context(), user.UserID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteMemories").Msg("error deleting memories")
		http.Error(w, "error deleting memories", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
