package session

import (
	"time"

	"github.com/randalmurphal/llmrouter/cost"
)

// Switch records one entry in a session's model-change history. From is
// empty on the session's first assignment.
type Switch struct {
	From   string    `json:"from,omitempty"`
	To     string    `json:"to"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Session carries the per-conversation state the router consults:
// the sticky model, turn count, accumulated cost, and the switch log.
type Session struct {
	// ID is the caller-supplied session key.
	ID string `json:"id"`

	// Model is the sticky model, empty before the first routing.
	Model string `json:"model,omitempty"`

	// Turns counts routed queries.
	Turns int `json:"turns"`

	// CumulativeCost is the estimated spend across all recorded
	// exchanges. It only grows.
	CumulativeCost cost.USD `json:"cumulative_cost"`

	// SwitchLog holds one entry per model change, oldest first.
	SwitchLog []Switch `json:"switch_log,omitempty"`

	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// Idle reports whether the session has seen no activity for at least d.
func (s *Session) Idle(now time.Time, d time.Duration) bool {
	return now.Sub(s.LastActivity) >= d
}

// Switches returns the number of model changes the session has seen,
// not counting the first assignment.
func (s *Session) Switches() int {
	n := len(s.SwitchLog)
	if n > 0 && s.SwitchLog[0].From == "" {
		n--
	}
	return n
}

// clone returns a deep copy so callers cannot mutate store state.
func (s *Session) clone() *Session {
	c := *s
	if s.SwitchLog != nil {
		c.SwitchLog = make([]Switch, len(s.SwitchLog))
		copy(c.SwitchLog, s.SwitchLog)
	}
	return &c
}
