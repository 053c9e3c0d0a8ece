package handlers

import (
	"net/http"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
)

func (h *Handler) CreateScoreboard(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	var payload service.CreateScoreboardPayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.scoreboards.Create(r.Context(), c.Sub, payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	scoreboardId, err := idParam(r, "scoreboardID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.scoreboards.Get(r.Context(), scoreboardId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetMyScoreboards lists the scoreboards of the authenticated user.
func (h *Handler) GetMyScoreboards(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.scoreboards.ListByUser(r.Context(), c.Sub)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// GetUserScoreboards lists the scoreboards of the user in the path.
func (h *Handler) GetUserScoreboards(w http.ResponseWriter, r *http.Request) {
	userId, err := idParam(r, "userID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	resp, err := h.scoreboards.ListByUser(r.Context(), userId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteScoreboard(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	scoreboardId, err := idParam(r, "scoreboardID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	if err := h.scoreboards.Delete(r.Context(), c.Sub, scoreboardId); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "scoreboard deleted"})
}
