package handlers

import (
	"net/http"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
)

func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context())
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, games)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameId, err := idParam(r, "gameID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	game, err := h.games.Get(r.Context(), gameId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, game)
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var payload service.CreateGamePayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	game, err := h.games.Create(r.Context(), payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, game)
}
