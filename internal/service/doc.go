// Package service holds the live catalog and answers the read queries the
// HTTP handlers and the CLI need.
//
// # CatalogService
//
// CatalogService owns an atomically swapped *catalog.Catalog:
//
//	svc := service.NewCatalogService(service.CatalogServiceConfig{Source: src})
//	if err := svc.Reload(ctx); err != nil {
//	    // initial load failed: nothing to serve
//	}
//
// Reload builds a complete new catalog off to the side and swaps it in only
// when the build succeeds. Readers never lock and always see one consistent
// catalog for the duration of a call.
//
// # Page views
//
// LocationPage, TypePage, TierPage, NeedPage and RetreatPage bundle the
// entity, its retreats sorted by price and price stats for one listing page.
//
// # Errors
//
// Sentinel errors live in errors.go; handlers map them with errors.Is:
//
//	if errors.Is(err, service.ErrLocationNotFound) {
//	    // 404
//	}
package service
