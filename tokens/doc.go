// Package tokens provides token estimation for routing decisions.
//
// Token estimation is based on the rule-of-thumb that approximately 4
// characters equals 1 token for English text. This provides a fast
// estimate without requiring a model-specific tokenizer - good enough to
// price a query before dispatching it.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Exchange estimation
//
// EstimateExchange guesses the input and output token counts of a query
// whose response does not exist yet, which is what the router needs to
// attach an estimated cost to a decision:
//
//	in, out := tokens.EstimateExchange(counter, query, 0)
//
// # Context windows
//
// Window checks text against a catalog model's context window:
//
//	w := tokens.NewWindow(model)
//	if !w.Fits(prompt) { ... }
package tokens
