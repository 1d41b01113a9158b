package router

import (
	"regexp"

	"github.com/randalmurphal/llmrouter/catalog"
)

// Target names what an override rule resolves to: a concrete model, the
// cheapest model with a capability, or the most capable model overall.
type Target struct {
	// Model is a catalog ID or alias; takes precedence when set.
	Model string

	// Capability picks the cheapest model carrying the tag. Empty with
	// Best unset means cheapest overall.
	Capability string

	// Best inverts the cost ordering: pick the highest-rate model
	// carrying Capability (price being the catalog's quality proxy).
	Best bool
}

// Resolve maps the target to a catalog model.
func (t Target) Resolve(cat *catalog.Catalog) (catalog.Model, error) {
	if t.Model != "" {
		return cat.Lookup(t.Model)
	}
	if t.Best {
		return cat.MostCapable(t.Capability)
	}
	return cat.Cheapest(t.Capability)
}

// OverrideRule is one entry in the explicit-override table. Rules are
// evaluated in table order against the lowercased query; the first
// pattern whose target resolves wins. A rule whose target cannot be
// resolved (unknown name, no model with the capability) is skipped so
// evaluation falls through to later rules and eventually the default.
type OverrideRule struct {
	// Name identifies the rule in Decision.Rule and in tests.
	Name string

	// Pattern matches against the lowercased query.
	Pattern *regexp.Regexp

	// Target is the fixed resolution for this rule. Ignored when
	// Capture is set.
	Target Target

	// Capture resolves from the pattern's first capture group instead:
	// the captured word is tried as a model ID, then an alias, then a
	// capability tag.
	Capture bool
}

// Resolve evaluates the rule against a lowercased query.
func (r OverrideRule) Resolve(cat *catalog.Catalog, lower string) (catalog.Model, bool) {
	m := r.Pattern.FindStringSubmatch(lower)
	if m == nil {
		return catalog.Model{}, false
	}

	if r.Capture {
		name := m[1]
		if mod, err := cat.Lookup(name); err == nil {
			return mod, true
		}
		if mod, err := cat.Cheapest(name); err == nil {
			return mod, true
		}
		return catalog.Model{}, false
	}

	mod, err := r.Target.Resolve(cat)
	if err != nil {
		return catalog.Model{}, false
	}
	return mod, true
}

// DefaultOverrides returns the built-in explicit-override table.
// Order matters: specific model names before generic phrasings, and the
// open-ended capture rule last.
func DefaultOverrides() []OverrideRule {
	return []OverrideRule{
		{
			Name:    "opus",
			Pattern: regexp.MustCompile(`\b(?:use|switch to|chat with|talk to) (?:claude )?opus\b`),
			Target:  Target{Model: "opus"},
		},
		{
			Name:    "claude",
			Pattern: regexp.MustCompile(`\b(?:use|switch to|chat with|talk to) claude\b|\bswitch to anthropic\b`),
			Target:  Target{Model: "claude"},
		},
		{
			Name:    "free-model",
			Pattern: regexp.MustCompile(`\b(?:use|switch to|give me) (?:the )?free (?:model|llm|ai|option)\b|\bfree model\b|\bfree option\b`),
			Target:  Target{Capability: catalog.CapFree},
		},
		{
			Name:    "cheapest",
			Pattern: regexp.MustCompile(`\b(?:use|switch to) (?:the )?cheapest\b|\bcheapest (?:model|option)\b|\blowest cost model\b`),
			Target:  Target{},
		},
		{
			Name:    "best-quality",
			Pattern: regexp.MustCompile(`\b(?:use|switch to) (?:the )?best(?: quality)? model\b|\bbest quality\b|\bhighest quality\b`),
			Target:  Target{Best: true},
		},
		{
			Name:    "named-model",
			Pattern: regexp.MustCompile(`\b(?:use|switch to|chat with|talk to) (?:the )?([a-z0-9][a-z0-9._-]*)(?: model)?\b`),
			Capture: true,
		},
	}
}
