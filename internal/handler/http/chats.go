package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/service"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/internal/utils"
	"github.com/privyhq/privy/models"
)

func (h *Handler) createChat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createChat").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	chat, err := h.services.RecordService.CreateChat(r.Context(), user.UserID, req.Title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createChat").Msg("error creating chat")
		http.Error(w, "error creating chat", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, chat, http.StatusCreated)
}

func (h *Handler) listChats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	chats, err := h.services.RecordService.ListChats(r.Context(), user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listChats").Msg("error listing chats")
		http.Error(w, "error listing chats", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, chats, http.StatusOK)
}

// appendMessage stores one message in the caller's chat. The request body
// carries plaintext parts; they are encrypted before they reach storage.
func (h *Handler) appendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, secret, ok := callerFromContext(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AppendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.appendMessage").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	view, err := h.services.RecordService.AppendMessage(r.Context(), user, secret, chi.URLParam(r, "chatID"), req)
	if err != nil {
		h.writeRecordError(w, r, "*Handler.appendMessage", err)
		return
	}

	utils.WriteJSON(w, view, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	user, secret, ok := callerFromContext(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	views, err := h.services.RecordService.ListMessages(r.Context(), user, secret, chi.URLParam(r, "chatID"))
	if err != nil {
		h.writeRecordError(w, r, "*Handler.listMessages", err)
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

// writeRecordError maps service errors on chat/message operations to HTTP
// statuses. A chat that does not exist and a chat owned by someone else
// both surface as 404.
func (h *Handler) writeRecordError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrChatNotFound):
		utils.WriteJSON(w, models.ErrorResponse{Error: "chat not found"}, http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidDataProvided):
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
	default:
		log.Err(err).Str("func", fn).Msg("record operation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// callerFromContext fetches what every encrypting endpoint needs: the
// resolved user and the raw secret the auth middleware stashed for key
// derivation.
func callerFromContext(r *http.Request) (models.User, string, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, "", false
	}
	secret, ok := utils.GetSecretFromContext(r.Context())
	if !ok {
		return models.User{}, "", false
	}
	return user, secret, true
}
