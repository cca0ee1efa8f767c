package http

import (
	"net/http"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/utils"
)

// getMe returns the authenticated identity. For a brand-new secret the auth
// middleware has already provisioned the user, so the first GET /api/me a
// client ever makes is also its registration.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getMe").Msg("no user in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// burnAccount irreversibly deletes the caller's identity and every record
// that hangs off it.
func (h *Handler) burnAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.IdentityService.BurnUser(r.Context(), user.UserID); err != nil {
		log.Err(err).Str("func", "*Handler.burnAccount").Msg("error burning account")
		http.Error(w, "error deleting account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
