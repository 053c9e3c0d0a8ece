package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/middleware"
	"github.com/scorely/scoreboard-services/internal/boardsvc/service"
	"github.com/scorely/scoreboard-services/internal/boardsvc/token"
)

type Handler struct {
	codec       *token.Codec
	auth        *service.AuthService
	users       *service.UserService
	scoreboards *service.ScoreboardService
	teams       *service.TeamService
	games       *service.GameService
}

func NewHandler(codec *token.Codec, auth *service.AuthService, users *service.UserService,
	scoreboards *service.ScoreboardService, teams *service.TeamService, games *service.GameService) *Handler {
	return &Handler{
		codec:       codec,
		auth:        auth,
		users:       users,
		scoreboards: scoreboards,
		teams:       teams,
		games:       games,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// decodeBody deserializes the request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.InvalidBody(err)
	}
	return nil
}

// idParam parses a numeric chi route parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid " + name)
	}
	return id, nil
}

// claims returns the verified identity set by the auth middleware.
func claims(r *http.Request) (*token.Claims, error) {
	c, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, apperr.ErrMissingBearerToken
	}
	return c, nil
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "board service is running at port " + os.Getenv("BOARD_SERVICE_PORT"),
	})
}
