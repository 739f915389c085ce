package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// DefinitionSource produces raw definitions. repository.Source satisfies it.
type DefinitionSource interface {
	Load(ctx context.Context) (*model.Definitions, error)
	Name() string
}

// CatalogService holds the live catalog and swaps it on reload.
type CatalogService struct {
	source DefinitionSource
	logger *slog.Logger
	now    func() time.Time

	current  atomic.Pointer[catalog.Catalog]
	reloadMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	Source DefinitionSource
	Logger *slog.Logger // defaults to slog.Default()
}

// Status describes the most recent reload attempt.
type Status struct {
	Source      string    `json:"source"`
	Loaded      bool      `json:"loaded"`
	Version     string    `json:"version,omitempty"`
	LoadedAt    time.Time `json:"loaded_at,omitempty"`
	LastAttempt time.Time `json:"last_attempt,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
}

// NewCatalogService creates a catalog service. No catalog is loaded until
// the first successful Reload.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &CatalogService{
		source: cfg.Source,
		logger: logger,
		now:    time.Now,
	}
	s.status.Source = cfg.Source.Name()
	return s
}

// Reload reads the source, builds a new catalog and swaps it in. On any
// error the previous catalog stays live and the error is returned wrapped in
// ErrReloadFailed. Concurrent calls are serialized.
func (s *CatalogService) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	started := s.now()
	next, err := s.build(ctx)
	if err != nil {
		s.recordFailure(started, err)
		s.logger.Error("catalog reload failed",
			slog.String("source", s.source.Name()),
			slog.Bool("serving_previous", s.current.Load() != nil),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}

	prev := s.current.Load()
	if prev != nil && prev.Version() == next.Version() {
		s.recordSuccess(started, prev)
		s.logger.Debug("catalog unchanged", slog.String("version", prev.Version()))
		return nil
	}

	s.current.Store(next)
	s.recordSuccess(started, next)

	attrs := []any{
		slog.String("source", s.source.Name()),
		slog.String("version", next.Version()),
		slog.Int("retreats", next.Len()),
		slog.Int("locations", next.Locations.Len()),
		slog.Int("types", next.Types.Len()),
		slog.Int("needs", next.Needs.Len()),
		slog.Duration("took", s.now().Sub(started)),
	}
	if prev != nil {
		attrs = append(attrs, slog.String("previous_version", prev.Version()))
	}
	s.logger.Info("catalog loaded", attrs...)
	return nil
}

func (s *CatalogService) build(ctx context.Context) (*catalog.Catalog, error) {
	defs, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Build(*defs)
}

func (s *CatalogService) recordSuccess(at time.Time, c *catalog.Catalog) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Loaded = true
	s.status.Version = c.Version()
	s.status.LoadedAt = at
	s.status.LastAttempt = at
	s.status.LastError = ""
}

func (s *CatalogService) recordFailure(at time.Time, err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
	s.status.LastError = err.Error()
}

// Status returns a snapshot of the reload state.
func (s *CatalogService) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// Catalog returns the live catalog.
func (s *CatalogService) Catalog() (*catalog.Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c, nil
}

type snapshotKey struct{}

// Pin attaches the live catalog to ctx so every query made with the returned
// context reads that catalog, even if a reload swaps it meanwhile. The
// returned version is the pinned catalog's, or "" before the first load.
func (s *CatalogService) Pin(ctx context.Context) (context.Context, string) {
	c := s.current.Load()
	if c == nil {
		return ctx, ""
	}
	return context.WithValue(ctx, snapshotKey{}, c), c.Version()
}

// catalogFor returns the catalog pinned to ctx, or the live one.
func (s *CatalogService) catalogFor(ctx context.Context) (*catalog.Catalog, error) {
	if c, ok := ctx.Value(snapshotKey{}).(*catalog.Catalog); ok {
		return c, nil
	}
	return s.Catalog()
}

// Version returns the live catalog version, or "" before the first load.
func (s *CatalogService) Version() string {
	if c := s.current.Load(); c != nil {
		return c.Version()
	}
	return ""
}

// Overview returns the site-wide summary.
func (s *CatalogService) Overview(ctx context.Context) (catalog.Overview, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return catalog.Overview{}, err
	}
	return c.Overview(), nil
}

// Routes returns every route key of the live catalog.
func (s *CatalogService) Routes(ctx context.Context) (catalog.RouteSet, error) {
	c, err := s.catalogFor(ctx)
	if err != nil {
		return catalog.RouteSet{}, err
	}
	return c.Routes(), nil
}
