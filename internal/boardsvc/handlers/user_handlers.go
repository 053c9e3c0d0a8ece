package handlers

import (
	"net/http"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
)

type SearchResults struct {
	Users []models.UserResponse `json:"users"`
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), c.Sub)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userId, err := idParam(r, "userID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), userId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	var payload service.UpdateUserPayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	user, err := h.users.Update(r.Context(), c.Sub, payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// Search finds users by username, for roster building.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	users, err := h.users.Search(r.Context(), query)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, SearchResults{Users: users})
}
