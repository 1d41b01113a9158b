package router

import (
	"strings"

	"github.com/randalmurphal/llmrouter/catalog"
)

// IntentRule maps query wording to a preferred capability tier. Rules
// are evaluated in table order; the first match wins and resolves to the
// cheapest model carrying the capability.
type IntentRule struct {
	// Intent identifies the rule in Decision.Rule and in tests.
	Intent string

	// Keywords match as whole words anywhere in the lowercased query.
	Keywords []string

	// Prefixes match at the start of the lowercased query.
	Prefixes []string

	// MaxWords caps the query length for this intent; 0 means no cap.
	// Short "what is X" questions are trivial, long ones are not.
	MaxWords int

	// Capability is the tag the intent resolves through.
	Capability string

	// Complexity grades queries that hit this intent.
	Complexity Complexity

	// Confidence is the decision confidence when this intent fires.
	Confidence float64
}

// Matches evaluates the rule against a lowercased query.
func (r IntentRule) Matches(lower string, wordCount int) bool {
	if r.MaxWords > 0 && wordCount > r.MaxWords {
		return false
	}
	for _, p := range r.Prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, k := range r.Keywords {
		if containsWord(lower, k) {
			return true
		}
	}
	return false
}

// containsWord reports whether phrase occurs in s on word boundaries,
// so "api" does not match inside "rapid".
func containsWord(s, phrase string) bool {
	for from := 0; ; {
		i := strings.Index(s[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// DefaultIntents returns the built-in intent table, most specific tier
// first.
func DefaultIntents() []IntentRule {
	return []IntentRule{
		{
			Intent:     "premium-analysis",
			Keywords:   []string{"comprehensive analysis", "strategic", "architecture review", "critical decision", "premium analysis"},
			Capability: catalog.CapPremium,
			Complexity: ComplexityHigh,
			Confidence: 0.90,
		},
		{
			Intent:     "reasoning",
			Keywords:   []string{"analyze", "research", "reasoning", "math", "prove", "theorem", "step by step"},
			Capability: catalog.CapReasoning,
			Complexity: ComplexityHigh,
			Confidence: 0.85,
		},
		{
			Intent:     "coding",
			Keywords:   []string{"debug", "code", "python", "javascript", "function", "algorithm", "sql", "api", "bug", "compile", "refactor"},
			Capability: catalog.CapCoding,
			Complexity: ComplexityMedium,
			Confidence: 0.85,
		},
		{
			Intent:     "multilingual",
			Keywords:   []string{"translate", "translation", "multilingual", "español", "français", "deutsch"},
			Capability: catalog.CapMultilingual,
			Complexity: ComplexityMedium,
			Confidence: 0.80,
		},
		{
			Intent:     "trivial",
			Prefixes:   []string{"what is", "how to", "explain", "define", "tell me about"},
			MaxWords:   15,
			Capability: catalog.CapFree,
			Complexity: ComplexitySimple,
			Confidence: 0.75,
		},
	}
}
