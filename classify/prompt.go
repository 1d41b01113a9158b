package classify

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/randalmurphal/llmrouter/catalog"
)

var (
	schemaOnce sync.Once
	schemaJSON string
)

// verdictSchema returns the JSON schema for Verdict, rendered once.
func verdictSchema() string {
	schemaOnce.Do(func() {
		r := jsonschema.Reflector{
			Anonymous:      true,
			DoNotReference: true,
			ExpandedStruct: true,
		}
		b, err := json.MarshalIndent(r.Reflect(&Verdict{}), "", "  ")
		if err != nil {
			// Verdict is a fixed struct; reflection cannot fail at runtime
			// unless the struct itself is broken.
			panic(fmt.Sprintf("classify: reflect verdict schema: %v", err))
		}
		schemaJSON = string(b)
	})
	return schemaJSON
}

// Prompt builds the routing prompt for a query: the catalog's lanes with
// their rates, the query itself, and the verdict schema the reply must
// follow inside <decision> tags.
func Prompt(cat *catalog.Catalog, query string) string {
	var b strings.Builder

	b.WriteString("You are a routing system. Pick the best model for this query.\n\n")
	fmt.Fprintf(&b, "User query: %q\n\n", query)

	b.WriteString("Available models:\n")
	for _, m := range cat.All() {
		rate := fmt.Sprintf("$%.2f/$%.2f per 1K tokens", m.InputPer1K, m.OutputPer1K)
		if m.Free {
			rate = "free"
		}
		fmt.Fprintf(&b, "- %s: %s (%s; capabilities: %s)\n",
			m.ID, m.Description, rate, strings.Join(m.Capabilities, ", "))
	}

	b.WriteString("\nConsider query complexity, required expertise, and cost efficiency.\n")
	b.WriteString("Answer with a single JSON object matching this schema, wrapped in <decision> tags:\n\n")
	b.WriteString(verdictSchema())
	b.WriteString("\n\nExample:\n<decision>\n")
	b.WriteString(`{"model": "deepseek-v3", "confidence": 0.9, "reason": "general coding task", "complexity": "medium"}`)
	b.WriteString("\n</decision>")

	return b.String()
}
