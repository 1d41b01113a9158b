package catalog

// Capability tag constants used by the default catalog and the default
// routing tables. Custom catalogs may define their own tags.
const (
	CapGeneral      = "general"
	CapCoding       = "coding"
	CapReasoning    = "reasoning"
	CapMultilingual = "multilingual"
	CapPremium      = "premium"
	CapFree         = "free"
)

// DefaultModelID is the general-purpose low-cost model the default
// catalog routes to when nothing else matches.
const DefaultModelID = "deepseek-v3"

// Default returns the built-in catalog. Rates are USD per 1K tokens,
// current as of mid-2025. Declaration order is cheapest-first within
// each lane so cost tie-breaking stays stable.
func Default() *Catalog {
	return MustNew(
		Model{
			ID:               "deepseek-r1-free",
			Provider:         "together",
			Description:      "Free distilled model for quick questions",
			InputPer1K:       0,
			OutputPer1K:      0,
			Capabilities:     []string{CapFree, CapGeneral},
			Free:             true,
			MaxContextTokens: 8192,
			Aliases:          []string{"free"},
		},
		Model{
			ID:               "llama-3.3-70b",
			Provider:         "together",
			Description:      "Multilingual dialogue and translation",
			InputPer1K:       0.88,
			OutputPer1K:      0.88,
			Capabilities:     []string{CapMultilingual, CapGeneral},
			MaxContextTokens: 128000,
			Aliases:          []string{"llama"},
		},
		Model{
			ID:               "deepseek-v3",
			Provider:         "together",
			Description:      "Balanced workhorse for general development",
			InputPer1K:       1.25,
			OutputPer1K:      1.25,
			Capabilities:     []string{CapGeneral, CapCoding},
			MaxContextTokens: 128000,
			Aliases:          []string{"v3"},
		},
		Model{
			ID:               "deepseek-r1",
			Provider:         "together",
			Description:      "Advanced reasoning for complex analysis",
			InputPer1K:       3.0,
			OutputPer1K:      7.0,
			Capabilities:     []string{CapReasoning},
			MaxContextTokens: 128000,
			Aliases:          []string{"r1"},
		},
		Model{
			ID:               "claude-sonnet-4",
			Provider:         "anthropic",
			Description:      "Premium analysis and architecture work",
			InputPer1K:       3.0,
			OutputPer1K:      15.0,
			Capabilities:     []string{CapPremium, CapCoding, CapReasoning},
			MaxContextTokens: 200000,
			Aliases:          []string{"claude", "sonnet"},
		},
		Model{
			ID:               "claude-opus-4",
			Provider:         "anthropic",
			Description:      "Highest capability tier for critical analysis",
			InputPer1K:       15.0,
			OutputPer1K:      75.0,
			Capabilities:     []string{CapPremium, CapReasoning},
			MaxContextTokens: 200000,
			Aliases:          []string{"opus"},
		},
	)
}
