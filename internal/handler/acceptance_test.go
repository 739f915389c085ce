package handler

/*
FEATURE: Directory read API
DOMAIN: Browsing retreats by facet

ACCEPTANCE CRITERIA:
===================

AC-DIR-001: Every route resolves
  GIVEN a loaded catalog
  WHEN every path from /v1/routes is requested under /v1
  THEN each answers 200

AC-DIR-002: Shared names stay addressable
  GIVEN two retreats named "Zen Center" in different countries
  WHEN each is requested by its slug
  THEN each resolves to its own country

AC-DIR-003: Reload failure keeps serving
  GIVEN a loaded catalog
  WHEN a reload fails integrity checks
  THEN responses still come from the previous catalog
*/

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/service"
	"github.com/fantravel1/cheapretreats-sub001/internal/testing/fixtures"
	"github.com/fantravel1/cheapretreats-sub001/internal/testing/helpers"
)

// switchSource serves whatever definitions it holds at load time. Tests
// mutate it between reloads from a single goroutine.
type switchSource struct {
	defs model.Definitions
}

func (s *switchSource) Load(context.Context) (*model.Definitions, error) {
	defs := s.defs
	return &defs, nil
}

func (s *switchSource) Name() string { return "switch" }

// pagePathToAPI maps a static page path to the API path serving its data.
func pagePathToAPI(p string) string {
	if rest, ok := strings.CutPrefix(p, catalog.TiersPath); ok {
		return "/v1/tiers/" + rest
	}
	return "/v1" + p
}

func TestDirectory_EveryRouteResolves(t *testing.T) {
	// AC-DIR-001
	svc := newTestService(t, true)
	mux := newTestMux(t, svc)

	routes, err := svc.Routes(context.Background())
	require.NoError(t, err)
	paths := routes.Paths()
	require.NotEmpty(t, paths)

	for _, p := range paths {
		rec := helpers.Get(t, pagePathToAPI(p)).Do(mux)
		assert.Equal(t, http.StatusOK, rec.Code, "page %s", p)
	}
}

func TestDirectory_SharedNamesStayAddressable(t *testing.T) {
	// AC-DIR-002
	mux := newTestMux(t, newTestService(t, true))

	for slug, country := range map[string]string{"zen-center-us": "US", "zen-center-ca": "CA"} {
		rec := helpers.Get(t, "/v1/retreats/"+slug).Do(mux)
		helpers.AssertStatus(t, rec, http.StatusOK)
		page := helpers.DecodeData[service.RetreatPage](t, rec)
		assert.Equal(t, country, page.Retreat.Country)
	}
}

func TestDirectory_ReloadFailureKeepsServing(t *testing.T) {
	// AC-DIR-003
	src := &switchSource{defs: fixtures.Definitions()}
	svc := service.NewCatalogService(service.CatalogServiceConfig{
		Source: src,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, svc.Reload(context.Background()))
	mux := newTestMux(t, svc)

	broken := fixtures.Definitions()
	broken.Retreats[2].Price = 5000
	src.defs = broken
	require.Error(t, svc.Reload(context.Background()))

	rec := helpers.Get(t, "/v1/retreats/farm-week").Do(mux)
	helpers.AssertStatus(t, rec, http.StatusOK)
	page := helpers.DecodeData[service.RetreatPage](t, rec)
	assert.Equal(t, 0, page.Retreat.Price)

	rec = helpers.Get(t, "/health").Do(mux)
	helpers.AssertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "price must be 1000 or less")
}
