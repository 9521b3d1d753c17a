package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jistud/coindesk-go/internal/api/handlers"
	custommiddleware "github.com/jistud/coindesk-go/internal/api/middleware"
	"github.com/jistud/coindesk-go/internal/config"
	"github.com/jistud/coindesk-go/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, coinService *service.CoinService, coinDeskService *service.CoinDeskService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/coins", func(r chi.Router) {
			coinHandler := handlers.NewCoinHandler(coinService)
			r.Get("/", coinHandler.Coins)
			r.Post("/", coinHandler.CreateCoin)
			r.Get("/{id}", coinHandler.CoinByID)
			r.Put("/{id}", coinHandler.UpdateCoin)
		})

		coinDeskHandler := handlers.NewCoinDeskHandler(coinDeskService)
		r.Get("/coindesk", coinDeskHandler.Current)
		r.Get("/transformed-coindesk", coinDeskHandler.Transformed)
	})

	return r
}
