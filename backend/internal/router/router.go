package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/kanban/backend/internal/setup"
	mw "github.com/itchan-dev/kanban/shared/middleware"
	"github.com/itchan-dev/kanban/shared/middleware/metrics"
)

// New creates and configures a chi router with all the routes.
// IMPORTANT! ratelimiters attached with .Use limit requests for all endpoints of that group combined
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{mw.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/auth", func(auth chi.Router) {
			// brute force protection, keyed by client IP
			auth.Group(func(limited chi.Router) {
				limited.Use(mw.RateLimit(deps.AuthLimiter, mw.GetIP))
				limited.Post("/signup", h.Signup)
				limited.Post("/login", h.Login)
			})
			auth.Post("/logout", h.Logout)
			auth.With(authMw.NeedAuth()).Get("/me", h.Me)
		})

		v1.Group(func(loggedIn chi.Router) {
			loggedIn.Use(authMw.NeedAuth())
			// per-user limit on everything that writes
			limit := mw.RateLimit(deps.UserLimiter, mw.GetUserIDFromContext)

			loggedIn.Get("/boards/mine", h.GetMyBoards)
			loggedIn.With(limit).Post("/boards", h.CreateBoard)
			loggedIn.Route("/boards/{board}", func(board chi.Router) {
				board.Get("/", h.GetBoard)
				board.With(limit).Put("/", h.UpdateBoard)
				board.With(limit).Delete("/", h.DeleteBoard)
				board.Get("/sections", h.GetBoardSections)
				board.With(limit).Post("/sections", h.CreateSection)
			})

			loggedIn.Route("/sections/{section}", func(section chi.Router) {
				section.With(limit).Put("/", h.UpdateSection)
				section.With(limit).Delete("/", h.DeleteSection)
				section.Get("/cards", h.GetSectionCards)
				section.With(limit).Post("/cards", h.CreateCard)
			})

			// static segment, matched ahead of /cards/{card}
			loggedIn.With(limit).Put("/cards/reorder", h.ReorderCards)
			loggedIn.Route("/cards/{card}", func(card chi.Router) {
				card.Get("/", h.GetCard)
				card.With(limit).Put("/", h.UpdateCard)
				card.With(limit).Delete("/", h.DeleteCard)
			})

			loggedIn.Get("/favorites", h.GetMyFavorites)
			loggedIn.With(limit).Post("/favorites", h.AddFavorite)
			loggedIn.With(limit).Delete("/favorites/{favorite}", h.RemoveFavorite)
		})
	})

	return r
}
