package handlers

import (
	"net/http"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
)

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamId, err := idParam(r, "teamID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	team, err := h.teams.Get(r.Context(), teamId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, team)
}

func (h *Handler) GetScoreboardTeams(w http.ResponseWriter, r *http.Request) {
	scoreboardId, err := idParam(r, "scoreboardID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	teams, err := h.teams.ListByScoreboard(r.Context(), scoreboardId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, teams)
}

func (h *Handler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamId, err := idParam(r, "teamID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	players, err := h.teams.Players(r.Context(), teamId)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, players)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	c, err := claims(r)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	teamId, err := idParam(r, "teamID")
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	var payload service.UpdateTeamPayload
	if err := decodeBody(r, &payload); err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	team, err := h.teams.Update(r.Context(), c.Sub, teamId, payload)
	if err != nil {
		apperr.WriteJSON(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, team)
}
