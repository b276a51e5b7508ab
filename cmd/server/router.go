package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/digits/internal/api"
	apiMiddleware "github.com/phrazzld/digits/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	digitHandler := api.NewDigitHandler(app.engine, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/digits/{"+api.OperatorParam+"}", digitHandler.Compute)
		r.Get("/digits/{"+api.OperatorParam+"}/table", digitHandler.Table)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
