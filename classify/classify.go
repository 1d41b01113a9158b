package classify

import (
	"context"
	"errors"
)

// ErrNoVerdict indicates the classifier reply contained no parseable
// routing verdict.
var ErrNoVerdict = errors.New("no routing verdict in reply")

// Client asks an LLM to classify a query. Implementations own transport,
// credentials, and retries; this package only builds the prompt and
// parses the reply.
type Client interface {
	// Classify sends the routing prompt and returns the raw model reply.
	Classify(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to the Client interface.
type Func func(ctx context.Context, prompt string) (string, error)

// Classify implements Client.
func (f Func) Classify(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Verdict is the structured routing answer expected from the classifier.
type Verdict struct {
	// Model is the chosen model ID from the catalog lanes listed in the
	// prompt.
	Model string `json:"model" jsonschema:"description=Chosen model id from the available lanes"`

	// Confidence is the classifier's self-reported confidence in [0,1].
	Confidence float64 `json:"confidence" jsonschema:"minimum=0,maximum=1"`

	// Reason is a one-line justification.
	Reason string `json:"reason"`

	// Complexity grades the query: simple, medium, or high.
	Complexity string `json:"complexity" jsonschema:"enum=simple,enum=medium,enum=high"`
}
