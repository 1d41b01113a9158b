package router

import (
	"sort"

	"github.com/randalmurphal/llmrouter/catalog"
)

// Chain defines the order of models to try when escalating after
// failures, ascending in capability.
type Chain struct {
	// Models in ascending order of capability (price being the proxy).
	Models []string

	// MaxAttempts is the maximum total attempts before giving up.
	MaxAttempts int
}

// ChainByCost builds an escalation chain from the catalog: every model
// carrying the capability tag (or all models for an empty tag), ordered
// cheapest to most expensive, declaration order on ties.
func ChainByCost(cat *catalog.Catalog, tag string) Chain {
	var models []catalog.Model
	if tag == "" {
		models = cat.All()
	} else {
		models = cat.WithCapability(tag)
	}
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].RatePer1K() < models[j].RatePer1K()
	})

	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return Chain{
		Models:      ids,
		MaxAttempts: len(ids) + 1,
	}
}

// Next returns the next model to try after a failure.
// Returns the next model in the chain and whether to continue.
// If max attempts are reached, returns ("", false).
func (c *Chain) Next(current string, attempt int) (string, bool) {
	if attempt >= c.MaxAttempts {
		return "", false
	}

	// No chain = retry same model.
	if len(c.Models) == 0 {
		return current, true
	}

	idx := -1
	for i, m := range c.Models {
		if m == current {
			idx = i
			break
		}
	}

	// Model not in chain - start at the beginning.
	if idx < 0 {
		return c.Models[0], true
	}

	// Already at the highest tier - stay there.
	if idx >= len(c.Models)-1 {
		return current, true
	}

	return c.Models[idx+1], true
}

// CanEscalate returns true if the current model has a higher tier to
// escalate to.
func (c *Chain) CanEscalate(current string) bool {
	for i, m := range c.Models {
		if m == current {
			return i < len(c.Models)-1
		}
	}
	return false
}

// Highest returns the highest capability model in the chain, or "" for
// an empty chain.
func (c *Chain) Highest() string {
	if len(c.Models) == 0 {
		return ""
	}
	return c.Models[len(c.Models)-1]
}

// Escalate produces the decision for the next model up the chain after
// attempt failures on current. Returns false when the chain is
// exhausted or the next model is gone from the catalog.
func (r *Router) Escalate(chain *Chain, query, current string, attempt int) (Decision, bool) {
	next, ok := chain.Next(current, attempt)
	if !ok {
		return Decision{}, false
	}
	m, err := r.cat.Lookup(next)
	if err != nil {
		return Decision{}, false
	}
	return r.decision(m, ReasonEscalation, "", 0.90, ComplexityHigh, query, current), true
}

// EscalationState tracks one escalation sequence.
type EscalationState struct {
	Chain        *Chain
	CurrentModel string
	Attempt      int
	LastError    error
}

// NewEscalationState creates an escalation state starting at the given
// model.
func NewEscalationState(chain *Chain, startModel string) *EscalationState {
	return &EscalationState{
		Chain:        chain,
		CurrentModel: startModel,
	}
}

// RecordFailure records a failed attempt and escalates if possible.
// Returns true if there are more attempts available.
func (s *EscalationState) RecordFailure(err error) bool {
	s.Attempt++
	s.LastError = err

	next, ok := s.Chain.Next(s.CurrentModel, s.Attempt)
	if !ok {
		return false
	}
	if next != s.CurrentModel {
		s.CurrentModel = next
	}
	return true
}

// Exhausted returns true if all attempts have been used.
func (s *EscalationState) Exhausted() bool {
	return s.Attempt >= s.Chain.MaxAttempts
}
