package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/randalmurphal/llmrouter/catalog"
	"github.com/randalmurphal/llmrouter/cost"
	"github.com/randalmurphal/llmrouter/router"
)

// ErrInvalidSession is returned by Get when the session does not exist
// and the store was built with WithAutoCreate(false).
var ErrInvalidSession = errors.New("session: invalid session id")

// ErrNegativeTokens is returned by AccumulateCost for negative token
// counts, which would let the cumulative total shrink.
var ErrNegativeTokens = errors.New("session: negative token count")

// Store holds sessions in memory, keyed by session id. All methods are
// safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cat         *catalog.Catalog
	idleTimeout time.Duration
	autoCreate  bool
	now         func() time.Time
}

// NewStore returns an empty store backed by cat for cost estimation.
func NewStore(cat *catalog.Catalog, opts ...Option) *Store {
	s := &Store{
		sessions:    make(map[string]*Session),
		cat:         cat,
		idleTimeout: DefaultIdleTimeout,
		autoCreate:  true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCatalog swaps the catalog used for cost estimation. Existing
// session totals are untouched.
func (st *Store) SetCatalog(cat *catalog.Catalog) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cat = cat
}

// GetOrCreate returns a copy of the session, creating it if missing.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.getOrCreateLocked(id).clone()
}

// Get returns a copy of the session. When auto-create is disabled and
// the id is unknown it returns ErrInvalidSession; otherwise unknown ids
// are created on demand.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s.clone(), nil
	}
	if !st.autoCreate {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSession, id)
	}
	return st.getOrCreateLocked(id).clone(), nil
}

// StickyModel returns the session's sticky model, or "" when the
// session is unknown or has not been routed yet.
func (st *Store) StickyModel(id string) string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if s, ok := st.sessions[id]; ok {
		return s.Model
	}
	return ""
}

// RecordDecision applies a routing decision to the session: it bumps
// the turn count, refreshes activity, and when the decided model
// differs from the sticky one, updates it and appends to the switch
// log. Sticky reuse leaves the log untouched.
func (st *Store) RecordDecision(id string, d router.Decision) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		if !st.autoCreate {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSession, id)
		}
		s = st.getOrCreateLocked(id)
	}

	now := st.now()
	s.Turns++
	s.LastActivity = now

	if d.Model != s.Model {
		s.SwitchLog = append(s.SwitchLog, Switch{
			From:   s.Model,
			To:     d.Model,
			Reason: string(d.Reason),
			At:     now,
		})
		s.Model = d.Model
	}
	return s.clone(), nil
}

// AccumulateCost adds the estimated cost of one exchange on modelID to
// the session's running total. The total never decreases: negative
// token counts are rejected with ErrNegativeTokens.
func (st *Store) AccumulateCost(id, modelID string, inputTokens, outputTokens int) (cost.USD, error) {
	if inputTokens < 0 || outputTokens < 0 {
		return 0, fmt.Errorf("%w: input=%d output=%d", ErrNegativeTokens, inputTokens, outputTokens)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	c, err := cost.Estimate(st.cat, modelID, inputTokens, outputTokens)
	if err != nil {
		return 0, err
	}

	s, ok := st.sessions[id]
	if !ok {
		if !st.autoCreate {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSession, id)
		}
		s = st.getOrCreateLocked(id)
	}
	s.CumulativeCost += c
	s.LastActivity = st.now()
	return s.CumulativeCost, nil
}

// Summary returns a copy of the session without creating it.
func (st *Store) Summary(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep evicts sessions idle for at least the store's idle timeout and
// returns how many were removed. A zero timeout disables eviction.
func (st *Store) Sweep(now time.Time) int {
	if st.idleTimeout <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	var evicted int
	for id, s := range st.sessions {
		if s.Idle(now, st.idleTimeout) {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartJanitor runs Sweep on the given interval until ctx is done.
func (st *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Sweep(st.now())
			}
		}
	}()
}

// getOrCreateLocked returns the live session, creating it if missing.
// Callers must hold the write lock.
func (st *Store) getOrCreateLocked(id string) *Session {
	if s, ok := st.sessions[id]; ok {
		return s
	}
	now := st.now()
	s := &Session{
		ID:           id,
		CreatedAt:    now,
		LastActivity: now,
	}
	st.sessions[id] = s
	return s
}
