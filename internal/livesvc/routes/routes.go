package routes

import (
	"github.com/go-chi/chi"

	"github.com/scorely/scoreboard-services/internal/livesvc/handlers"
	"github.com/scorely/scoreboard-services/internal/livesvc/ws"
)

func SetRoutes(r *chi.Mux, ws *ws.Ws) {
	h := handlers.NewHandler(ws)
	r.Route("/live", func(r chi.Router) {
		r.Get("/scoreboards/{scoreboardID}", h.HandleWebSocket)
		r.Get("/health", h.HealthHandler)
	})
}
