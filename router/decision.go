package router

import (
	"github.com/randalmurphal/llmrouter/cost"
)

// Reason explains why a routing decision chose its model.
type Reason string

// Decision reasons, in precedence order.
const (
	// ReasonExplicit means the query named a model or tier outright
	// ("use claude", "switch to free model").
	ReasonExplicit Reason = "explicit"

	// ReasonIntent means a domain-intent pattern matched (coding,
	// reasoning, multilingual, trivial).
	ReasonIntent Reason = "intent-match"

	// ReasonSticky means the session's current model was reused to
	// preserve its context.
	ReasonSticky Reason = "sticky-reuse"

	// ReasonDefault means nothing matched and the default model applies.
	ReasonDefault Reason = "default"

	// ReasonClassifier means the LLM classifier fallback made the call.
	ReasonClassifier Reason = "classifier"

	// ReasonEscalation means a failure pushed the session up the
	// capability ladder.
	ReasonEscalation Reason = "escalation"
)

// Complexity grades how demanding a query looks.
type Complexity string

// Complexity grades.
const (
	ComplexitySimple Complexity = "simple"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Decision is the outcome of routing one query. It is immutable once
// returned: the router never retains or mutates a produced Decision.
type Decision struct {
	// Model is the chosen model's canonical catalog ID.
	Model string

	// Reason explains which stage of the rule ladder decided.
	Reason Reason

	// Rule names the specific override pattern or intent that fired,
	// empty for sticky/default decisions.
	Rule string

	// Confidence is the decision confidence in [0,1].
	Confidence float64

	// Complexity grades the query.
	Complexity Complexity

	// EstimatedCost prices the query against the chosen model's rates
	// before the real token counts are known.
	EstimatedCost cost.USD

	// Switch reports whether the decision moves the session away from
	// its current model (including the first assignment).
	Switch bool
}
