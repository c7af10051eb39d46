// Package catalog loads the hosting plan list shown on the landing page.
//
// A Catalog is created per page load. It starts in the loading state, runs at
// most one fetch at a time, and settles into either a loaded list or the
// empty state. Failures never escape: they are logged and the list stays
// empty. Once the owner calls Close, late results are dropped.
package catalog

import (
	"context"
	"sync"

	"github.com/cargohost/backend/internal/domain"
	log "github.com/sirupsen/logrus"
)

// State is the status of the plan list.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of a Catalog for rendering.
type Snapshot struct {
	State State
	Plans []domain.Plan
}

// Catalog owns the plan list, the loading flag and the lifetime of the fetch.
type Catalog struct {
	fetcher Fetcher
	log     log.FieldLogger

	mu       sync.Mutex
	loading  bool
	inflight bool
	closed   bool
	plans    []domain.Plan

	life   context.Context
	cancel context.CancelFunc
	start  sync.Once
	done   chan struct{}
}

// New creates a Catalog in the loading state.
func New(fetcher Fetcher, logger log.FieldLogger) *Catalog {
	if logger == nil {
		logger = log.StandardLogger()
	}
	life, cancel := context.WithCancel(context.Background())
	return &Catalog{
		fetcher: fetcher,
		log:     logger,
		loading: true,
		life:    life,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Load performs one fetch and applies its result. It is a no-op while another
// fetch is outstanding or after Close.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.inflight {
		c.mu.Unlock()
		return
	}
	c.inflight = true
	c.loading = true
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.life, cancel)
	defer stop()

	plans, err := c.fetcher.FetchPlans(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight = false
	if c.closed {
		c.log.Debug("catalog closed before plans arrived, dropping result")
		return
	}
	c.loading = false
	if err != nil {
		c.log.WithError(err).Error("failed to load plans")
		return
	}
	c.plans = plans
}

// Start runs Load in the background. Only the first call has an effect.
func (c *Catalog) Start(ctx context.Context) {
	c.start.Do(func() {
		go func() {
			defer close(c.done)
			c.Load(ctx)
		}()
	})
}

// Wait blocks until the load begun by Start finishes or ctx ends. It reports
// whether the load finished.
func (c *Catalog) Wait(ctx context.Context) bool {
	select {
	case <-c.done:
		return true
	case <-ctx.Done():
		return false
	}
}

// Close ends the catalog's lifetime: an outstanding fetch is cancelled and
// its result discarded.
func (c *Catalog) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

// Snapshot returns the current state and a copy of the plan list.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loading {
		return Snapshot{State: StateLoading}
	}
	if len(c.plans) == 0 {
		return Snapshot{State: StateEmpty}
	}
	plans := make([]domain.Plan, len(c.plans))
	copy(plans, c.plans)
	return Snapshot{State: StateLoaded, Plans: plans}
}
