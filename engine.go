package llmrouter

import (
	"context"
	"fmt"
	"sync"

	"github.com/randalmurphal/llmrouter/catalog"
	"github.com/randalmurphal/llmrouter/config"
	"github.com/randalmurphal/llmrouter/cost"
	"github.com/randalmurphal/llmrouter/router"
	"github.com/randalmurphal/llmrouter/session"
)

// Engine binds the catalog, the rule router, the session store, and the
// cost tracker into one routing surface. All methods are safe for
// concurrent use.
type Engine struct {
	mu      sync.RWMutex
	cat     *catalog.Catalog
	router  *router.Router
	store   *session.Store
	tracker *cost.Tracker
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	cat         *catalog.Catalog
	routerOpts  []router.Option
	sessionOpts []session.Option
}

// WithCatalog replaces the built-in model catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *engineConfig) {
		c.cat = cat
	}
}

// WithRouterOptions passes options through to the underlying router.
func WithRouterOptions(opts ...router.Option) Option {
	return func(c *engineConfig) {
		c.routerOpts = append(c.routerOpts, opts...)
	}
}

// WithSessionOptions passes options through to the session store.
func WithSessionOptions(opts ...session.Option) Option {
	return func(c *engineConfig) {
		c.sessionOpts = append(c.sessionOpts, opts...)
	}
}

// New creates an Engine over the built-in catalog and defaults.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{cat: catalog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	rtr, err := router.New(cfg.cat, cfg.routerOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cat:     cfg.cat,
		router:  rtr,
		store:   session.NewStore(cfg.cat, cfg.sessionOpts...),
		tracker: cost.NewTracker(cfg.cat),
	}, nil
}

// FromConfig creates an Engine from a loaded configuration. Options are
// applied on top of the config, so callers can still attach a
// classifier or override tables programmatically.
func FromConfig(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	all := append(configOptions(cfg, cat), opts...)
	return New(all...)
}

func configOptions(cfg config.Config, cat *catalog.Catalog) []Option {
	routerOpts := []router.Option{
		router.WithDefaultModel(cfg.Router.DefaultModel),
		router.WithStickyReuse(!cfg.Router.DisableStickySessions),
	}
	if cfg.Router.ClassifierThreshold > 0 {
		routerOpts = append(routerOpts, router.WithClassifierThreshold(cfg.Router.ClassifierThreshold))
	}

	var sessionOpts []session.Option
	if cfg.Router.SessionIdleTimeout > 0 {
		sessionOpts = append(sessionOpts, session.WithIdleTimeout(cfg.Router.SessionIdleTimeout))
	}

	return []Option{
		WithCatalog(cat),
		WithRouterOptions(routerOpts...),
		WithSessionOptions(sessionOpts...),
	}
}

// Route decides which model should handle the query for the given
// session, records the decision on the session, and returns it. The
// session is created on first use.
func (e *Engine) Route(ctx context.Context, sessionID, query string) (router.Decision, error) {
	e.mu.RLock()
	rtr, store := e.router, e.store
	e.mu.RUnlock()

	s := store.GetOrCreate(sessionID)
	d := rtr.Route(ctx, query, s.Model)
	if _, err := store.RecordDecision(sessionID, d); err != nil {
		return router.Decision{}, err
	}
	return d, nil
}

// RecordUsage records the real token counts of a completed exchange:
// the per-model usage tracker and the session's cumulative cost both
// advance. It returns the session's new total.
func (e *Engine) RecordUsage(sessionID, modelID string, inputTokens, outputTokens int) (cost.USD, error) {
	e.mu.RLock()
	store, tracker := e.store, e.tracker
	e.mu.RUnlock()

	total, err := store.AccumulateCost(sessionID, modelID, inputTokens, outputTokens)
	if err != nil {
		return 0, err
	}
	tracker.Record(modelID, inputTokens, outputTokens)
	return total, nil
}

// Session returns a copy of the session's state, or false when it does
// not exist.
func (e *Engine) Session(id string) (*session.Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Summary(id)
}

// Sessions returns the number of live sessions.
func (e *Engine) Sessions() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Len()
}

// Catalog returns the engine's model catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cat
}

// Spend returns the estimated total spend across all recorded usage.
func (e *Engine) Spend() cost.USD {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tracker.EstimatedSpend()
}

// SpendByModel returns the estimated spend broken down by model.
func (e *Engine) SpendByModel() map[string]cost.USD {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tracker.SpendByModel()
}

// Reconfigure swaps in a new catalog and router built from cfg.
// Sessions survive the swap: a sticky model that no longer exists in
// the new catalog is simply not reused, and routing falls through the
// ladder as usual.
func (e *Engine) Reconfigure(cfg config.Config, routerOpts ...router.Option) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}

	opts := []router.Option{
		router.WithDefaultModel(cfg.Router.DefaultModel),
		router.WithStickyReuse(!cfg.Router.DisableStickySessions),
	}
	if cfg.Router.ClassifierThreshold > 0 {
		opts = append(opts, router.WithClassifierThreshold(cfg.Router.ClassifierThreshold))
	}
	opts = append(opts, routerOpts...)

	rtr, err := router.New(cat, opts...)
	if err != nil {
		return fmt.Errorf("reconfigure: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cat = cat
	e.router = rtr
	e.store.SetCatalog(cat)
	e.tracker = cost.NewTracker(cat)
	return nil
}
