package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/msgboard/backend/internal/setup"
	mw "github.com/itchan-dev/msgboard/shared/middleware"
	"github.com/itchan-dev/msgboard/shared/middleware/metrics"
	"github.com/itchan-dev/msgboard/shared/utils"
)

// New creates the API router. Reads are public; every mutation needs a token.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config.Public
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLog)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Location", utils.ErrorKindHeader, mw.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureCookies, mw.APIContentSecurityPolicy))

	h := deps.Handler
	auth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/board", h.GetBoard)
		r.With(auth).Post("/board", h.InitBoard)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.ListMessages)
			r.With(auth, mw.RateLimit(deps.CreateLimiter, mw.GetIdentityKey)).Post("/", h.CreateMessage)

			r.Get("/{index}", h.GetMessage)
			r.Get("/{index}/html", h.GetMessageHTML)
			r.With(auth).Put("/{index}", h.EditMessage)
			r.With(auth).Delete("/{index}", h.DeleteMessage)
		})
	})

	return r
}
