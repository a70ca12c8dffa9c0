package router

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Totarae/FaleProxy/internal/handlers"
	"github.com/Totarae/FaleProxy/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	r.Get("/", handler.Index)
	r.Get("/ping", handler.Ping)
	r.Post("/fetch", handler.HandleFetch)
	return r
}
