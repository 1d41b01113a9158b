// Package classify provides the prompt and reply plumbing for LLM-based
// routing fallback.
//
// The router uses rule-based matching first; when a rule decision is low
// confidence and a classifier Client is configured, it asks a cheap model
// to pick the lane instead. This package builds that prompt from the
// catalog and parses the structured reply:
//
//	prompt := classify.Prompt(cat, query)
//	reply, err := client.Classify(ctx, prompt)
//	verdict, err := classify.ParseVerdict(reply)
//
// The Client interface is deliberately one method: transport, auth, and
// retries belong to the caller, not here.
package classify
