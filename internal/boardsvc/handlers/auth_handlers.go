package handlers

import (
	"net/http"
	"time"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload service.LoginPayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload service.SignupPayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.auth.Signup(r.Context(), payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// Authorize is a verified no-op: reaching it means the token is good.
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Whoami reports the identity inside the presented token without
// verifying it. Introspection only; nothing downstream of this route
// may mutate state or reveal anything sensitive.
func (h *Handler) Whoami(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":    c.Sub,
		"email":      c.Email,
		"expires_at": time.Unix(c.Exp, 0).UTC(),
	})
}
