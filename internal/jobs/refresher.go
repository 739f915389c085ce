package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Reloader rebuilds the served catalog from its source.
type Reloader interface {
	Reload(ctx context.Context) error
}

// CatalogRefresher reloads the catalog on a fixed interval. Reload failures
// are logged by the reloader and leave the previous catalog in place.
type CatalogRefresher struct {
	reloader Reloader
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewCatalogRefresher creates a refresher job. interval must be positive.
func NewCatalogRefresher(reloader Reloader, interval time.Duration, logger *slog.Logger) *CatalogRefresher {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := interval
	if timeout > time.Minute {
		timeout = time.Minute
	}
	return &CatalogRefresher{
		reloader: reloader,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start begins the refresh loop
func (p *CatalogRefresher) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(p.stopCh)
	p.logger.Info("catalog refresher started", slog.Duration("interval", p.interval))
}

// Stop gracefully stops the refresh loop, waiting for an in-flight reload.
func (p *CatalogRefresher) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("catalog refresher stopped")
}

func (p *CatalogRefresher) run(stop <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.refresh(stop)
		case <-stop:
			return
		}
	}
}

// refresh runs one reload, cancelled early if the job is stopped.
func (p *CatalogRefresher) refresh(stop <-chan struct{}) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	_ = p.RunOnce(ctx)
}

// RunOnce reloads once (for testing or manual trigger)
func (p *CatalogRefresher) RunOnce(ctx context.Context) error {
	return p.reloader.Reload(ctx)
}

// IsRunning returns whether the refresher is running
func (p *CatalogRefresher) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
