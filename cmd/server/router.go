package main

import (
	"log/slog"
	"net/http"

	"github.com/fantravel1/cheapretreats-sub001/internal/config"
	"github.com/fantravel1/cheapretreats-sub001/internal/handler"
	"github.com/fantravel1/cheapretreats-sub001/internal/middleware"
	"github.com/fantravel1/cheapretreats-sub001/internal/service"
)

// newRouter wires every route and the global middleware. limiter may be nil.
func newRouter(cfg *config.Config, svc *service.CatalogService, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	// Catalog API; responses are tagged with the catalog version
	api := http.NewServeMux()
	handler.NewCatalogHandler(svc).Register(api)

	mux := http.NewServeMux()
	mux.Handle("/v1/", middleware.CatalogETag(svc.Pin)(api))

	// Health check
	mux.HandleFunc("GET /health", handler.NewHealthHandler(svc).Health)

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.ReadOnly,
	}
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter))
	}
	chain = append(chain, middleware.Compress)

	return middleware.Chain(mux, chain...)
}
