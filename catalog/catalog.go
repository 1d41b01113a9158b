package catalog

import (
	"fmt"
	"strings"
)

// Model describes a single backend model: its identity, pricing, and the
// task categories it is suited for. Models are immutable once registered
// in a Catalog.
type Model struct {
	// ID is the canonical model identifier, e.g. "deepseek-v3".
	ID string

	// Provider names the backend that serves this model, e.g. "together".
	Provider string

	// Description is a short human-readable summary of what the model is for.
	Description string

	// InputPer1K is the cost in USD per 1K input tokens.
	InputPer1K float64

	// OutputPer1K is the cost in USD per 1K output tokens.
	OutputPer1K float64

	// Capabilities tags the task categories this model handles well,
	// e.g. "coding", "reasoning", "multilingual".
	Capabilities []string

	// Free marks zero-cost models.
	Free bool

	// MaxContextTokens is the model's context window size.
	MaxContextTokens int

	// Aliases are alternative names that resolve to this model in Lookup,
	// e.g. "claude" for "claude-sonnet-4".
	Aliases []string
}

// HasCapability reports whether the model carries the given capability tag.
// Matching is case-insensitive.
func (m Model) HasCapability(tag string) bool {
	for _, c := range m.Capabilities {
		if strings.EqualFold(c, tag) {
			return true
		}
	}
	return false
}

// RatePer1K returns the combined input+output rate, used for cost ordering.
func (m Model) RatePer1K() float64 {
	return m.InputPer1K + m.OutputPer1K
}

// Catalog is a read-only registry of models. It preserves declaration
// order, which makes tie-breaking deterministic, and is safe for
// concurrent reads from any number of sessions.
type Catalog struct {
	models []Model
	byName map[string]int // canonical IDs and aliases, lowercased
}

// New builds a Catalog from the given models. Declaration order is
// preserved and significant: it is the tie-break when several models are
// equally cheap for a capability.
func New(models ...Model) (*Catalog, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("catalog: no models declared")
	}

	c := &Catalog{
		models: make([]Model, len(models)),
		byName: make(map[string]int, len(models)),
	}
	copy(c.models, models)

	for i, m := range c.models {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: model at index %d has empty id", i)
		}
		if m.InputPer1K < 0 || m.OutputPer1K < 0 {
			return nil, fmt.Errorf("catalog: model %q has negative rate", m.ID)
		}
		key := strings.ToLower(m.ID)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate model id %q", m.ID)
		}
		c.byName[key] = i

		for _, alias := range m.Aliases {
			akey := strings.ToLower(alias)
			if _, dup := c.byName[akey]; dup {
				return nil, fmt.Errorf("catalog: alias %q of model %q already taken", alias, m.ID)
			}
			c.byName[akey] = i
		}
	}
	return c, nil
}

// MustNew is like New but panics on error. Use for static catalogs whose
// validity is guaranteed at compile time.
func MustNew(models ...Model) *Catalog {
	c, err := New(models...)
	if err != nil {
		panic(fmt.Sprintf("catalog.MustNew: %v", err))
	}
	return c
}

// Lookup resolves a model by canonical ID or alias. Matching is
// case-insensitive. Returns ErrUnknownModel if nothing matches.
func (c *Catalog) Lookup(name string) (Model, error) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Model{}, NewError("lookup", name, ErrUnknownModel)
	}
	return c.models[i], nil
}

// Contains reports whether a model ID or alias is registered.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[strings.ToLower(name)]
	return ok
}

// All returns every model in declaration order. The returned slice is a
// copy; mutating it does not affect the catalog.
func (c *Catalog) All() []Model {
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}

// Len returns the number of registered models.
func (c *Catalog) Len() int {
	return len(c.models)
}

// Filter returns the models for which pred returns true, in declaration
// order.
func (c *Catalog) Filter(pred func(Model) bool) []Model {
	var out []Model
	for _, m := range c.models {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

// WithCapability returns the models carrying the given capability tag,
// in declaration order.
func (c *Catalog) WithCapability(tag string) []Model {
	return c.Filter(func(m Model) bool { return m.HasCapability(tag) })
}

// Cheapest returns the lowest-rate model carrying the given capability
// tag. An empty tag considers every model. Ties are broken by declaration
// order. Returns ErrNoEligibleModel when no model carries the tag.
func (c *Catalog) Cheapest(tag string) (Model, error) {
	var best Model
	found := false
	for _, m := range c.models {
		if tag != "" && !m.HasCapability(tag) {
			continue
		}
		if !found || m.RatePer1K() < best.RatePer1K() {
			best = m
			found = true
		}
	}
	if !found {
		return Model{}, NewError("cheapest", tag, ErrNoEligibleModel)
	}
	return best, nil
}

// MostCapable returns the highest-rate model carrying the given capability
// tag, the inverse ordering of Cheapest. Price is the only quality proxy
// the catalog has. Returns ErrNoEligibleModel when no model carries the tag.
func (c *Catalog) MostCapable(tag string) (Model, error) {
	var best Model
	found := false
	for _, m := range c.models {
		if tag != "" && !m.HasCapability(tag) {
			continue
		}
		if !found || m.RatePer1K() > best.RatePer1K() {
			best = m
			found = true
		}
	}
	if !found {
		return Model{}, NewError("most-capable", tag, ErrNoEligibleModel)
	}
	return best, nil
}

// FreeModel returns the first free model in declaration order.
// Returns ErrNoEligibleModel when the catalog has no free tier.
func (c *Catalog) FreeModel() (Model, error) {
	for _, m := range c.models {
		if m.Free {
			return m, nil
		}
	}
	return Model{}, NewError("free", "", ErrNoEligibleModel)
}
