package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/testing/fixtures"
)

var errSourceDown = errors.New("source down")

// stubSource serves whatever definitions or error it currently holds.
type stubSource struct {
	mu    sync.Mutex
	defs  model.Definitions
	err   error
	loads int
}

func (s *stubSource) Load(ctx context.Context) (*model.Definitions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	defs := s.defs
	return &defs, nil
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) set(defs model.Definitions, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs, s.err = defs, err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, defs model.Definitions) (*CatalogService, *stubSource) {
	t.Helper()
	src := &stubSource{defs: defs}
	svc := NewCatalogService(CatalogServiceConfig{Source: src, Logger: quietLogger()})
	require.NoError(t, svc.Reload(context.Background()))
	return svc, src
}

// ============================================================================
// Lifecycle Tests
// ============================================================================

func TestCatalogService_NotLoaded(t *testing.T) {
	t.Parallel()
	svc := NewCatalogService(CatalogServiceConfig{Source: &stubSource{}, Logger: quietLogger()})

	_, err := svc.Catalog()
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	_, err = svc.Overview(context.Background())
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	_, err = svc.ListRetreats(context.Background(), RetreatQuery{})
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	_, err = svc.LocationPage(context.Background(), "canada")
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)

	assert.Empty(t, svc.Version())
	assert.False(t, svc.Status().Loaded)
	assert.Equal(t, "stub", svc.Status().Source)
}

func TestCatalogService_InitialLoadFailure(t *testing.T) {
	t.Parallel()
	src := &stubSource{err: errSourceDown}
	svc := NewCatalogService(CatalogServiceConfig{Source: src, Logger: quietLogger()})

	err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReloadFailed)
	assert.ErrorIs(t, err, errSourceDown)

	_, err = svc.Catalog()
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	assert.Equal(t, errSourceDown.Error(), svc.Status().LastError)
}

func TestCatalogService_FailedReloadKeepsPrevious(t *testing.T) {
	t.Parallel()
	svc, src := newService(t, fixtures.Definitions())
	before := svc.Version()

	broken := fixtures.Definitions()
	broken.Retreats[0].Country = "XX"
	src.set(broken, nil)

	err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrIntegrity)

	assert.Equal(t, before, svc.Version())
	status := svc.Status()
	assert.True(t, status.Loaded)
	assert.Contains(t, status.LastError, "unknown location XX")

	_, err = svc.RetreatPage(context.Background(), "zen-center-us")
	assert.NoError(t, err, "previous catalog must keep serving")
}

func TestCatalogService_ReloadSwapsOnChange(t *testing.T) {
	t.Parallel()
	svc, src := newService(t, fixtures.Definitions())
	old, err := svc.Catalog()
	require.NoError(t, err)

	next := fixtures.Definitions()
	next.Retreats = append(next.Retreats, model.Retreat{Name: "Glacier Sit", Country: "IS", Price: 620})
	src.set(next, nil)

	require.NoError(t, svc.Reload(context.Background()))

	cur, err := svc.Catalog()
	require.NoError(t, err)
	assert.NotEqual(t, old.Version(), cur.Version())
	assert.Equal(t, old.Len()+1, cur.Len())
	assert.Equal(t, 4, old.Len(), "a swapped-out catalog is never mutated")
	assert.Empty(t, svc.Status().LastError)
}

func TestCatalogService_PinnedContextReadsOneSnapshot(t *testing.T) {
	t.Parallel()
	svc, src := newService(t, fixtures.Definitions())

	ctx, pinnedVersion := svc.Pin(context.Background())
	require.NotEmpty(t, pinnedVersion)

	next := fixtures.Definitions()
	next.Retreats = append(next.Retreats, model.Retreat{Name: "Glacier Sit", Country: "IS", Price: 620})
	src.set(next, nil)
	require.NoError(t, svc.Reload(context.Background()))
	require.NotEqual(t, pinnedVersion, svc.Version())

	pinned, err := svc.ListRetreats(ctx, RetreatQuery{})
	require.NoError(t, err)
	assert.Len(t, pinned, 4, "pinned context must keep reading the catalog its version names")
	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, pinnedVersion, overview.Version)
	_, err = svc.RetreatPage(ctx, "glacier-sit")
	assert.ErrorIs(t, err, ErrRetreatNotFound)

	live, err := svc.ListRetreats(context.Background(), RetreatQuery{})
	require.NoError(t, err)
	assert.Len(t, live, 5)
}

func TestCatalogService_PinBeforeLoad(t *testing.T) {
	t.Parallel()
	svc := NewCatalogService(CatalogServiceConfig{Source: &stubSource{}, Logger: quietLogger()})

	ctx, version := svc.Pin(context.Background())
	assert.Empty(t, version)
	_, err := svc.Overview(ctx)
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
}

func TestCatalogService_ReloadUnchangedKeepsPointer(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, fixtures.Definitions())
	first, _ := svc.Catalog()

	require.NoError(t, svc.Reload(context.Background()))

	second, _ := svc.Catalog()
	assert.Same(t, first, second)
}

func TestCatalogService_ConcurrentReadsDuringReload(t *testing.T) {
	t.Parallel()
	svc, src := newService(t, fixtures.Definitions())

	grown := fixtures.Definitions()
	grown.Retreats = append(grown.Retreats, model.Retreat{Name: "Glacier Sit", Country: "IS", Price: 620})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c, err := svc.Catalog()
				if err != nil {
					t.Error(err)
					return
				}
				// Every read sees one whole catalog.
				if n := len(c.All()); n != c.Len() || (n != 4 && n != 5) {
					t.Errorf("inconsistent catalog with %d retreats", n)
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			src.set(grown, nil)
		} else {
			src.set(fixtures.Definitions(), nil)
		}
		_ = svc.Reload(context.Background())
	}
	wg.Wait()
}

// ============================================================================
// Query Tests
// ============================================================================

func TestCatalogService_ListRetreats(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, fixtures.Definitions())

	tests := []struct {
		name  string
		query RetreatQuery
		want  []string
	}{
		{"all", RetreatQuery{}, []string{"zen-center-us", "zen-center-ca", "farm-week", "coast-yoga"}},
		{"by country sorted", RetreatQuery{Country: "PT", Sort: SortPrice}, []string{"farm-week", "coast-yoga"}},
		{"by type", RetreatQuery{Type: "silent-retreat"}, []string{"zen-center-us", "zen-center-ca"}},
		{"by tier", RetreatQuery{Tier: "500-749"}, []string{"zen-center-ca"}},
		{"by flag", RetreatQuery{Flags: []string{"work-exchange"}}, []string{"farm-week"}},
		{"unknown flag", RetreatQuery{Flags: []string{"glamping"}}, []string{}},
		{"unknown country", RetreatQuery{Country: "XX"}, []string{}},
		{"unknown tier", RetreatQuery{Tier: "cheap"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListRetreats(context.Background(), tt.query)
			require.NoError(t, err)
			slugs := make([]string, len(got))
			for i, r := range got {
				slugs[i] = r.Slug
			}
			assert.Equal(t, tt.want, slugs)
		})
	}
}

func TestCatalogService_ListRetreats_InvalidSort(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, fixtures.Definitions())

	_, err := svc.ListRetreats(context.Background(), RetreatQuery{Sort: "rating"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestCatalogService_ListLocations(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, fixtures.Definitions())

	locs, err := svc.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locs, 4)

	assert.Equal(t, "united-states", locs[0].Slug)
	assert.Equal(t, 1, locs[0].Retreats)
	assert.Equal(t, "iceland", locs[3].Slug)
	assert.Equal(t, 0, locs[3].Retreats)
}

func TestCatalogService_ListTypesNeedsTiers(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, fixtures.Definitions())

	types, err := svc.ListTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, 2, types[0].Retreats)

	needs, err := svc.ListNeeds(context.Background())
	require.NoError(t, err)
	assert.Len(t, needs, 2)

	tiers, err := svc.ListTiers(context.Background())
	require.NoError(t, err)
	require.Len(t, tiers, len(model.PriceTiers))
	counts := []int{tiers[0].Count, tiers[1].Count, tiers[2].Count, tiers[3].Count}
	assert.Equal(t, []int{1, 1, 1, 1}, counts)
}
