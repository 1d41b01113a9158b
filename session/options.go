package session

import "time"

// DefaultIdleTimeout is how long a session may sit idle before Sweep
// evicts it.
const DefaultIdleTimeout = 2 * time.Hour

// Option configures a Store.
type Option func(*Store)

// WithIdleTimeout sets the idle eviction threshold. Zero disables
// eviction.
func WithIdleTimeout(d time.Duration) Option {
	return func(st *Store) {
		st.idleTimeout = d
	}
}

// WithAutoCreate controls whether unknown session ids are created on
// demand. It defaults to true; with false, Get, RecordDecision, and
// AccumulateCost return ErrInvalidSession for unknown ids and sessions
// must be created through GetOrCreate.
func WithAutoCreate(enabled bool) Option {
	return func(st *Store) {
		st.autoCreate = enabled
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(st *Store) {
		st.now = now
	}
}
