package tokens

import (
	"github.com/randalmurphal/llmrouter/catalog"
)

// Window checks text against a model's context window.
type Window struct {
	// Limit is the context window size in tokens.
	Limit int

	counter Counter
}

// NewWindow creates a window check for the given model using the default
// estimating counter.
func NewWindow(m catalog.Model) *Window {
	return &Window{
		Limit:   m.MaxContextTokens,
		counter: NewEstimatingCounter(),
	}
}

// NewWindowWithCounter creates a window check with a custom counter.
func NewWindowWithCounter(m catalog.Model, counter Counter) *Window {
	return &Window{
		Limit:   m.MaxContextTokens,
		counter: counter,
	}
}

// Fits returns true if the text fits within the context window.
// A zero limit means the window is unknown and everything fits.
func (w *Window) Fits(text string) bool {
	if w.Limit <= 0 {
		return true
	}
	return w.counter.FitsInLimit(text, w.Limit)
}

// FitsTokens returns true if the token count fits within the window.
func (w *Window) FitsTokens(tokens int) bool {
	if w.Limit <= 0 {
		return true
	}
	return tokens <= w.Limit
}

// Remaining returns the tokens left after accounting for used tokens.
func (w *Window) Remaining(usedTokens int) int {
	if w.Limit <= 0 {
		return 0
	}
	remaining := w.Limit - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}
