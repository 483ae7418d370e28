package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"delivery-ops-service/internal/api/handlers"
	"delivery-ops-service/internal/ports"
)

// Dependencies of the HTTP API. Cache is optional; when nil the latest
// KPI endpoint always reads the database.
type Deps struct {
	Drivers ports.DriverRepository
	Routes  ports.RouteRepository
	Orders  ports.OrderRepository
	Users   ports.UserRepository
	History ports.HistoryRepository
	Cache   ports.HistoryCache
	Auth    *TokenAuth
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(deps Deps) http.Handler {
	authHandler := &handlers.AuthHandler{Users: deps.Users, Tokens: deps.Auth}
	driverHandler := &handlers.DriverHandler{Repo: deps.Drivers}
	routeHandler := &handlers.RouteHandler{Repo: deps.Routes}
	orderHandler := &handlers.OrderHandler{Repo: deps.Orders}
	simHandler := &handlers.SimulationHandler{
		Drivers: deps.Drivers,
		Orders:  deps.Orders,
		History: deps.History,
		Cache:   deps.Cache,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Middleware)

			r.Route("/drivers", func(r chi.Router) {
				r.Get("/", driverHandler.List)
				r.Post("/", driverHandler.Create)
				r.Get("/{id}", driverHandler.Get)
				r.Put("/{id}", driverHandler.Update)
				r.Delete("/{id}", driverHandler.Delete)
			})

			r.Route("/routes", func(r chi.Router) {
				r.Get("/", routeHandler.List)
				r.Post("/", routeHandler.Create)
				r.Get("/{id}", routeHandler.Get)
				r.Put("/{id}", routeHandler.Update)
				r.Delete("/{id}", routeHandler.Delete)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.List)
				r.Post("/", orderHandler.Create)
				r.Get("/{id}", orderHandler.Get)
				r.Put("/{id}", orderHandler.Update)
				r.Delete("/{id}", orderHandler.Delete)
			})

			r.Route("/simulation", func(r chi.Router) {
				r.Post("/run", simHandler.Run)
				r.Get("/latest", simHandler.Latest)
			})
		})
	})

	return r
}
