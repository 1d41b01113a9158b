// Package router turns a user query and the session's current model
// into a routing decision.
//
// Routing is an ordered ladder, first match wins:
//
//  1. explicit override - the query names a model or tier outright
//     ("chat with claude", "switch to free model", "use cheapest")
//  2. intent match - the wording fits a domain (coding, reasoning,
//     multilingual, trivial), resolved to the cheapest capable model
//  3. sticky reuse - keep the session's model to preserve its context
//  4. default - the configured general-purpose model
//
// Ties among equally capable models break on lowest cost, then catalog
// declaration order, so routing is fully deterministic. Both rule tables
// are plain data and replaceable through options, which keeps the
// query-wording-to-model mapping auditable in one place.
//
//	r, err := router.New(catalog.Default())
//	d := r.Route(ctx, "debug this function", "")
//	// d.Model = cheapest coding model, d.Reason = "intent-match"
//
// Route always produces a usable decision: a capability no model
// carries degrades to the default model rather than failing. The only
// configuration that cannot degrade - a default model missing from the
// catalog - fails in New, at startup.
//
// An optional LLM classifier handles queries the rules are unsure
// about, and escalation chains pick the next model up the capability
// ladder after dispatch failures. The router only decides; it never
// calls a backend itself.
package router
