// Package llmrouter routes LLM requests to the cheapest model that can
// handle them, with sticky per-session model state and running cost
// estimates.
//
// Each subpackage can be used independently:
//
//   - catalog: the model registry with per-1K-token rates and capability tags
//   - router: the rule ladder (explicit overrides, intent matching, sticky
//     reuse, default) plus the optional LLM classifier fallback
//   - session: per-conversation sticky state, switch logs, cumulative cost
//   - cost: integer-cent cost estimation and per-model usage tracking
//   - tokens: token estimation and context-window checks
//   - classify: the LLM classifier protocol (prompt rendering, verdict parsing)
//   - config: YAML/TOML configuration with env overrides and hot reload
//
// The Engine ties them together:
//
//	eng, err := llmrouter.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d, _ := eng.Route(ctx, "conv-42", "debug this python function")
//	fmt.Println(d.Model, d.Reason) // e.g. deepseek-v3 intent-match
//
//	// After the call completes, record the real token counts.
//	eng.RecordUsage("conv-42", d.Model, 1200, 600)
//
// Routing is deterministic: the same query against the same session
// state and catalog always yields the same decision. Decisions never
// fail on rule gaps; when nothing matches, the configured default model
// applies.
package llmrouter
