package cost

import (
	"sync"

	"github.com/randalmurphal/llmrouter/catalog"
)

// Usage tracks token usage for a model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// Tracker accumulates token usage and estimated spend per model across
// the whole process, independent of any one session.
type Tracker struct {
	mu     sync.RWMutex
	cat    *catalog.Catalog
	totals map[string]Usage
}

// NewTracker creates a tracker that prices usage against the given catalog.
func NewTracker(cat *catalog.Catalog) *Tracker {
	return &Tracker{
		cat:    cat,
		totals: make(map[string]Usage),
	}
}

// Record adds a usage record for the given model.
func (t *Tracker) Record(modelID string, input, output int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[modelID]
	u.InputTokens += input
	u.OutputTokens += output
	u.Requests++
	t.totals[modelID] = u
}

// Usage returns the usage for a specific model.
func (t *Tracker) Usage(modelID string) Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[modelID]
}

// Summary returns a copy of all usage totals keyed by model ID.
func (t *Tracker) Summary() map[string]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// TotalUsage returns aggregated usage across all models.
func (t *Tracker) TotalUsage() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// EstimatedSpend returns the total estimated spend across all models.
// Models no longer present in the catalog are skipped.
func (t *Tracker) EstimatedSpend() USD {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total USD
	for id, usage := range t.totals {
		m, err := t.cat.Lookup(id)
		if err != nil {
			continue
		}
		total += EstimateModel(m, usage.InputTokens, usage.OutputTokens)
	}
	return total
}

// SpendByModel returns the estimated spend for each model.
func (t *Tracker) SpendByModel() map[string]USD {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]USD, len(t.totals))
	for id, usage := range t.totals {
		m, err := t.cat.Lookup(id)
		if err != nil {
			continue
		}
		result[id] = EstimateModel(m, usage.InputTokens, usage.OutputTokens)
	}
	return result
}

// Reset clears all tracked usage.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Usage)
}
