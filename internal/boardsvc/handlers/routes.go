package handlers

import (
	"github.com/go-chi/chi"

	mw "github.com/scorely/scoreboard-services/internal/boardsvc/middleware"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Post("/login", h.Login)
		r.Post("/signup", h.Signup)
		r.Get("/health", h.HealthHandler)

		// Introspection only: claims are decoded without verification
		// here, so nothing behind this group may mutate state.
		r.Group(func(r chi.Router) {
			r.Use(mw.UnverifiedClaims(h.codec))

			r.Get("/whoami", h.Whoami)
		})

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticator(h.codec))

			r.Get("/authorize", h.Authorize)

			r.Get("/me", h.Me)
			r.Put("/me", h.UpdateMe)
			r.Get("/me/scoreboards", h.GetMyScoreboards)

			r.Get("/users/{userID}", h.GetUser)
			r.Get("/users/{userID}/scoreboards", h.GetUserScoreboards)
			r.Get("/search", h.Search)

			r.Post("/scoreboards", h.CreateScoreboard)
			r.Get("/scoreboards/{scoreboardID}", h.GetScoreboard)
			r.Delete("/scoreboards/{scoreboardID}", h.DeleteScoreboard)
			r.Get("/scoreboards/{scoreboardID}/teams", h.GetScoreboardTeams)

			r.Get("/teams/{teamID}", h.GetTeam)
			r.Put("/teams/{teamID}", h.UpdateTeam)
			r.Get("/teams/{teamID}/players", h.GetTeamPlayers)

			r.Get("/games", h.GetGames)
			r.Post("/games", h.CreateGame)
			r.Get("/games/{gameID}", h.GetGame)
		})
	})
}
