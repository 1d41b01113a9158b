package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/randalmurphal/llmrouter/catalog"
	"github.com/randalmurphal/llmrouter/classify"
	"github.com/randalmurphal/llmrouter/cost"
	"github.com/randalmurphal/llmrouter/tokens"
)

// DefaultClassifierThreshold is the rule-decision confidence below which
// a configured classifier is consulted.
const DefaultClassifierThreshold = 0.8

// Router maps (query, session sticky model) to a Decision. It is a pure
// decision engine: it never dispatches to a backend and never blocks on
// I/O except through an explicitly configured classifier. A Router is
// immutable after New and safe for concurrent use.
type Router struct {
	cat          *catalog.Catalog
	defaultID    string
	defaultModel catalog.Model
	overrides    []OverrideRule
	intents      []IntentRule
	sticky       bool
	counter      tokens.Counter
	classifier   classify.Client
	threshold    float64
}

// New creates a Router over the given catalog. The default model must
// resolve in the catalog: a missing default is a configuration error
// surfaced here, at startup, never at request time.
func New(cat *catalog.Catalog, opts ...Option) (*Router, error) {
	r := &Router{
		cat:       cat,
		defaultID: catalog.DefaultModelID,
		overrides: DefaultOverrides(),
		intents:   DefaultIntents(),
		sticky:    true,
		counter:   tokens.NewEstimatingCounter(),
		threshold: DefaultClassifierThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}

	m, err := cat.Lookup(r.defaultID)
	if err != nil {
		return nil, fmt.Errorf("router: default model %q: %w", r.defaultID, err)
	}
	r.defaultModel = m
	return r, nil
}

// Catalog returns the catalog this router decides over.
func (r *Router) Catalog() *catalog.Catalog {
	return r.cat
}

// DefaultModel returns the model used when nothing else matches.
func (r *Router) DefaultModel() catalog.Model {
	return r.defaultModel
}

// Route decides which model should handle the query. sticky is the
// session's current model ID, empty before the first routing.
//
// Precedence: explicit override > intent match > sticky reuse > default.
// Route always produces a usable decision: unresolvable overrides and
// unsatisfiable capabilities degrade through the ladder to the default
// model instead of failing.
func (r *Router) Route(ctx context.Context, query, sticky string) Decision {
	d := r.routeRules(query, sticky)

	// Low-confidence rule decisions can defer to the LLM classifier,
	// when one is configured. A classifier failure of any kind keeps
	// the rule decision.
	if r.classifier != nil && d.Confidence < r.threshold {
		if cd, ok := r.classifyRoute(ctx, query, sticky); ok {
			return cd
		}
	}
	return d
}

// routeRules runs the ordered rule ladder. Candidates whose context
// window cannot hold the query are skipped, so routing falls through to
// the next stage rather than picking a model that would reject the call.
func (r *Router) routeRules(query, sticky string) Decision {
	lower := strings.ToLower(strings.TrimSpace(query))
	wordCount := len(strings.Fields(lower))

	// 1. Explicit user overrides are hard wins.
	for _, rule := range r.overrides {
		if m, ok := rule.Resolve(r.cat, lower); ok && r.fits(m, query) {
			return r.decision(m, ReasonExplicit, rule.Name, 0.95, ComplexityMedium, query, sticky)
		}
	}

	// 2. Domain intents resolve to the cheapest capable model that can
	// hold the query. An intent whose capability no model carries is
	// skipped.
	for _, rule := range r.intents {
		if !rule.Matches(lower, wordCount) {
			continue
		}
		m, ok := r.cheapestFitting(rule.Capability, query)
		if !ok {
			continue
		}
		return r.decision(m, ReasonIntent, rule.Intent, rule.Confidence, rule.Complexity, query, sticky)
	}

	// 3. Sticky reuse: keep the session's model to preserve its
	// context. A sticky model that has left the catalog is ignored.
	if r.sticky && sticky != "" {
		if m, err := r.cat.Lookup(sticky); err == nil && r.fits(m, query) {
			return r.decision(m, ReasonSticky, "", 0.90, ComplexityMedium, query, sticky)
		}
	}

	// 4. Default tier.
	return r.decision(r.defaultModel, ReasonDefault, "", 0.60, ComplexityMedium, query, sticky)
}

// fits reports whether the query fits the model's context window.
func (r *Router) fits(m catalog.Model, query string) bool {
	return tokens.NewWindowWithCounter(m, r.counter).Fits(query)
}

// cheapestFitting picks the cheapest model carrying the capability tag
// whose context window holds the query.
func (r *Router) cheapestFitting(tag, query string) (catalog.Model, bool) {
	chain := ChainByCost(r.cat, tag)
	for _, id := range chain.Models {
		m, err := r.cat.Lookup(id)
		if err != nil {
			continue
		}
		if r.fits(m, query) {
			return m, true
		}
	}
	return catalog.Model{}, false
}

// classifyRoute asks the configured classifier to pick a lane.
func (r *Router) classifyRoute(ctx context.Context, query, sticky string) (Decision, bool) {
	reply, err := r.classifier.Classify(ctx, classify.Prompt(r.cat, query))
	if err != nil {
		return Decision{}, false
	}
	v, err := classify.ParseVerdict(reply)
	if err != nil {
		return Decision{}, false
	}
	m, err := r.cat.Lookup(v.Model)
	if err != nil {
		return Decision{}, false
	}
	if !r.fits(m, query) {
		return Decision{}, false
	}

	cx := Complexity(v.Complexity)
	switch cx {
	case ComplexitySimple, ComplexityMedium, ComplexityHigh:
	default:
		cx = ComplexityMedium
	}
	d := r.decision(m, ReasonClassifier, "", v.Confidence, cx, query, sticky)
	return d, true
}

// decision assembles an immutable Decision for the chosen model.
func (r *Router) decision(m catalog.Model, reason Reason, rule string, confidence float64, cx Complexity, query, sticky string) Decision {
	in, out := tokens.EstimateExchange(r.counter, query, 0)
	return Decision{
		Model:         m.ID,
		Reason:        reason,
		Rule:          rule,
		Confidence:    confidence,
		Complexity:    cx,
		EstimatedCost: cost.EstimateModel(m, in, out),
		Switch:        m.ID != sticky,
	}
}
