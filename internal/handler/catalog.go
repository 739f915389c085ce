package handler

import (
	"context"
	"net/http"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/service"
)

// CatalogReader is the read side of service.CatalogService.
type CatalogReader interface {
	Overview(ctx context.Context) (catalog.Overview, error)
	Routes(ctx context.Context) (catalog.RouteSet, error)
	ListRetreats(ctx context.Context, q service.RetreatQuery) ([]model.Retreat, error)
	ListLocations(ctx context.Context) ([]service.LocationSummary, error)
	ListTypes(ctx context.Context) ([]service.TypeSummary, error)
	ListNeeds(ctx context.Context) ([]model.NeedCategory, error)
	ListTiers(ctx context.Context) ([]catalog.TierSummary, error)
	RetreatPage(ctx context.Context, slug string) (*service.RetreatPage, error)
	LocationPage(ctx context.Context, slug string) (*service.LocationPage, error)
	TypePage(ctx context.Context, slug string) (*service.TypePage, error)
	TierPage(ctx context.Context, id string) (*service.TierPage, error)
	NeedPage(ctx context.Context, slug string) (*service.NeedPage, error)
}

// CatalogHandler serves the read-only directory API
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(reader CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: reader}
}

// Register adds every catalog route to mux.
func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/overview", h.Overview)
	mux.HandleFunc("GET /v1/routes", h.Routes)

	mux.HandleFunc("GET /v1/retreats", h.ListRetreats)
	mux.HandleFunc("GET /v1/retreats/{slug}", h.GetRetreat)

	mux.HandleFunc("GET /v1/locations", h.ListLocations)
	mux.HandleFunc("GET /v1/locations/{slug}", h.GetLocation)

	mux.HandleFunc("GET /v1/types", h.ListTypes)
	mux.HandleFunc("GET /v1/types/{slug}", h.GetType)

	mux.HandleFunc("GET /v1/needs", h.ListNeeds)
	mux.HandleFunc("GET /v1/needs/{slug}", h.GetNeed)

	mux.HandleFunc("GET /v1/tiers", h.ListTiers)
	mux.HandleFunc("GET /v1/tiers/{tier}", h.GetTier)
}

// Overview handles GET /v1/overview - site-wide counts and price stats
func (h *CatalogHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.catalog.Overview(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, overview, map[string]string{"self": "/v1/overview"})
}

// Routes handles GET /v1/routes - every route key and page path
func (h *CatalogHandler) Routes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.catalog.Routes(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, map[string]interface{}{
		"keys":  routes,
		"paths": routes.Paths(),
	}, nil)
}

// ListRetreats handles GET /v1/retreats
// Query parameters:
//   - country: location code (optional)
//   - type: retreat type slug (optional)
//   - tier: price tier id (optional)
//   - flag: scholarship, sliding-scale, work-exchange or community-run (optional, can repeat)
//   - sort: "price" for cheapest first (optional)
//
// Unknown filter values yield an empty list, not an error.
func (h *CatalogHandler) ListRetreats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	retreats, err := h.catalog.ListRetreats(r.Context(), service.RetreatQuery{
		Country: q.Get("country"),
		Type:    q.Get("type"),
		Tier:    q.Get("tier"),
		Flags:   q["flag"],
		Sort:    q.Get("sort"),
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, retreats, nil)
}

// GetRetreat handles GET /v1/retreats/{slug}
func (h *CatalogHandler) GetRetreat(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.RetreatPage(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, page, map[string]string{
		"self":     "/v1/retreats/" + page.Retreat.Slug,
		"location": "/v1/locations/" + page.LocationSlug,
		"tier":     "/v1/tiers/" + string(page.Tier.ID),
	})
}

// ListLocations handles GET /v1/locations
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListLocations(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, locations, nil)
}

// GetLocation handles GET /v1/locations/{slug}
func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.LocationPage(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, page, map[string]string{
		"self":     "/v1/locations/" + page.Slug,
		"retreats": "/v1/retreats?country=" + page.Location.Code,
	})
}

// ListTypes handles GET /v1/types
func (h *CatalogHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.ListTypes(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, types, nil)
}

// GetType handles GET /v1/types/{slug}
func (h *CatalogHandler) GetType(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.TypePage(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, page, map[string]string{"self": "/v1/types/" + page.Type.Slug})
}

// ListNeeds handles GET /v1/needs
func (h *CatalogHandler) ListNeeds(w http.ResponseWriter, r *http.Request) {
	needs, err := h.catalog.ListNeeds(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, needs, nil)
}

// GetNeed handles GET /v1/needs/{slug}
func (h *CatalogHandler) GetNeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.NeedPage(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, page, map[string]string{"self": "/v1/needs/" + page.Need.Slug})
}

// ListTiers handles GET /v1/tiers
func (h *CatalogHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.catalog.ListTiers(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, tiers, nil)
}

// GetTier handles GET /v1/tiers/{tier}
func (h *CatalogHandler) GetTier(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.TierPage(r.Context(), r.PathValue("tier"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, page, map[string]string{
		"self":     "/v1/tiers/" + string(page.Tier.ID),
		"retreats": "/v1/retreats?tier=" + string(page.Tier.ID),
	})
}
