// Package handler provides the HTTP read API of the retreat directory.
//
// Every endpoint is a GET. Handlers read through a CatalogReader
// (implemented by service.CatalogService), so each request sees one
// consistent catalog.
//
// # Endpoints
//
//	GET /health
//	GET /v1/overview
//	GET /v1/routes
//	GET /v1/retreats?country=&type=&tier=&flag=&sort=price
//	GET /v1/retreats/{slug}
//	GET /v1/locations            GET /v1/locations/{slug}
//	GET /v1/types                GET /v1/types/{slug}
//	GET /v1/needs                GET /v1/needs/{slug}
//	GET /v1/tiers                GET /v1/tiers/{tier}
//
// # Response Format
//
//   - WriteData: single resource with optional HATEOAS links
//   - WriteCollection: list with its count
//   - WriteError: RFC 9457 Problem Details
//
// Unknown slugs are 404 problems. Unknown filter values on /v1/retreats
// give an empty list. Until the first catalog loads every catalog endpoint
// answers 503.
//
// # Example
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("GET /health", handler.NewHealthHandler(svc).Health)
//	handler.NewCatalogHandler(svc).Register(mux)
package handler
