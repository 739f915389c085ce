// Package middleware provides HTTP middleware for the retreat directory API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one slog line per request
//   - Recovery: turns panics into a 500 problem response
//   - ReadOnly: rejects writes with a 405 problem response
//   - CORS: cross-origin headers for GET/HEAD/OPTIONS
//   - Compress: gzip when the client accepts it
//   - CatalogETag: conditional GET keyed on the catalog version
//   - RateLimit: per-client-IP token bucket
//
// Compose them with Chain; the first middleware listed runs first:
//
//	h := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger(logger),
//		middleware.Recovery,
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
