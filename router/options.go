package router

import (
	"github.com/randalmurphal/llmrouter/classify"
	"github.com/randalmurphal/llmrouter/tokens"
)

// Option configures a Router.
type Option func(*Router)

// WithDefaultModel sets the model used when nothing else matches.
// The ID must resolve in the catalog or New fails.
func WithDefaultModel(id string) Option {
	return func(r *Router) {
		r.defaultID = id
	}
}

// WithOverrides replaces the explicit-override table. The table is
// evaluated in order; pass nil to disable explicit overrides entirely.
func WithOverrides(rules []OverrideRule) Option {
	return func(r *Router) {
		r.overrides = rules
	}
}

// WithIntents replaces the intent table. The table is evaluated in
// order; pass nil to disable intent matching entirely.
func WithIntents(rules []IntentRule) Option {
	return func(r *Router) {
		r.intents = rules
	}
}

// WithStickyReuse enables or disables sticky-session reuse. Default on.
// Disabling it makes every unmatched query fall through to the default
// model instead of reusing the session's current one.
func WithStickyReuse(enabled bool) Option {
	return func(r *Router) {
		r.sticky = enabled
	}
}

// WithCounter sets the token counter used for cost estimation.
func WithCounter(c tokens.Counter) Option {
	return func(r *Router) {
		r.counter = c
	}
}

// WithClassifier enables the LLM classifier fallback for low-confidence
// rule decisions.
func WithClassifier(c classify.Client) Option {
	return func(r *Router) {
		r.classifier = c
	}
}

// WithClassifierThreshold sets the confidence below which the classifier
// is consulted. Default DefaultClassifierThreshold.
func WithClassifierThreshold(threshold float64) Option {
	return func(r *Router) {
		r.threshold = threshold
	}
}
