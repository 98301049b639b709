package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/auth"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/game"
)

type RouterConfig struct {
	CORSOrigins     []string
	ContentHandler  *content.Handler
	GameHandler     *game.Handler
	ActivityHandler *activity.Handler
	AIQuizHandler   *aiquiz.Handler
	AuthHandler     *auth.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", activity.NetIDHeader},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	content.Mount(r, cfg.ContentHandler)
	game.Mount(r, cfg.GameHandler)

	r.Mount("/activity", activity.Routes(cfg.ActivityHandler))
	r.Mount("/auth", auth.Routes(cfg.AuthHandler))

	r.Route("/ai-quiz", func(r chi.Router) {
		r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleInstructor))

		r.Mount("/admin", activity.AdminRoutes(cfg.ActivityHandler))
	})
	return r
}
