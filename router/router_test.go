package router

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/randalmurphal/llmrouter/catalog"
	"github.com/randalmurphal/llmrouter/classify"
)

// scenarioCatalog mirrors the canonical two-model scenario: a free
// general model A and a paid reasoning model B, default A.
func scenarioCatalog() *catalog.Catalog {
	return catalog.MustNew(
		catalog.Model{ID: "model-a", Free: true, Capabilities: []string{catalog.CapFree, catalog.CapGeneral}},
		catalog.Model{ID: "model-b", InputPer1K: 3, OutputPer1K: 7, Capabilities: []string{catalog.CapReasoning}},
	)
}

func scenarioRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	r, err := New(scenarioCatalog(), append([]Option{WithDefaultModel("model-a")}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNew_DefaultModelMustExist(t *testing.T) {
	_, err := New(scenarioCatalog(), WithDefaultModel("ghost"))
	if !catalog.IsUnknownModel(err) {
		t.Errorf("New() with missing default error = %v, want ErrUnknownModel", err)
	}
}

func TestRoute_Default(t *testing.T) {
	r := scenarioRouter(t)

	d := r.Route(context.Background(), "hello there", "")
	if d.Model != "model-a" || d.Reason != ReasonDefault {
		t.Errorf("Route() = %+v, want model-a/default", d)
	}
}

func TestRoute_StickyReuse(t *testing.T) {
	r := scenarioRouter(t)

	d := r.Route(context.Background(), "and then what happened", "model-b")
	if d.Model != "model-b" || d.Reason != ReasonSticky {
		t.Errorf("Route() = %+v, want model-b/sticky-reuse", d)
	}
	if d.Switch {
		t.Error("sticky reuse must not be a switch")
	}
}

func TestRoute_StickyDisabled(t *testing.T) {
	r := scenarioRouter(t, WithStickyReuse(false))

	d := r.Route(context.Background(), "and then what happened", "model-b")
	if d.Reason != ReasonDefault || d.Model != "model-a" {
		t.Errorf("Route() with sticky disabled = %+v, want model-a/default", d)
	}
}

func TestRoute_StickyModelGoneFromCatalog(t *testing.T) {
	r := scenarioRouter(t)

	d := r.Route(context.Background(), "continue", "retired-model")
	if d.Model != "model-a" || d.Reason != ReasonDefault {
		t.Errorf("Route() with retired sticky = %+v, want model-a/default", d)
	}
}

func TestRoute_ExplicitOverridesBeatSticky(t *testing.T) {
	r, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		query     string
		wantModel string
	}{
		{"use free model", "deepseek-r1-free"},
		{"switch to free model please", "deepseek-r1-free"},
		{"chat with claude", "claude-sonnet-4"},
		{"switch to anthropic", "claude-sonnet-4"},
		{"use opus", "claude-opus-4"},
		{"use claude opus", "claude-opus-4"},
		{"use cheapest", "deepseek-r1-free"},
		{"use best quality", "claude-opus-4"},
		{"switch to llama", "llama-3.3-70b"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			// A prior sticky model must not matter for explicit overrides.
			d := r.Route(context.Background(), tt.query, "deepseek-v3")
			if d.Model != tt.wantModel {
				t.Errorf("Route(%q) = %s, want %s", tt.query, d.Model, tt.wantModel)
			}
			if d.Reason != ReasonExplicit {
				t.Errorf("Route(%q) reason = %s, want explicit", tt.query, d.Reason)
			}
		})
	}
}

func TestRoute_IntentMatch(t *testing.T) {
	r, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		query      string
		wantModel  string
		wantIntent string
	}{
		{"debug this stack trace for me", "deepseek-v3", "coding"},
		{"prove the triangle inequality step by step", "deepseek-r1", "reasoning"},
		{"translate this paragraph into French", "llama-3.3-70b", "multilingual"},
		{"what is a monad", "deepseek-r1-free", "trivial"},
		{"I need a comprehensive analysis of our options", "claude-sonnet-4", "premium-analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.wantIntent, func(t *testing.T) {
			d := r.Route(context.Background(), tt.query, "")
			if d.Model != tt.wantModel {
				t.Errorf("Route(%q) = %s, want %s", tt.query, d.Model, tt.wantModel)
			}
			if d.Reason != ReasonIntent || d.Rule != tt.wantIntent {
				t.Errorf("Route(%q) reason/rule = %s/%s, want intent-match/%s",
					tt.query, d.Reason, d.Rule, tt.wantIntent)
			}
		})
	}
}

func TestRoute_TrivialIntentNeedsShortQuery(t *testing.T) {
	r, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	long := "what is the most effective strategy for scaling a distributed system across many regions while keeping operational cost low"
	d := r.Route(context.Background(), long, "")
	if d.Rule == "trivial" {
		t.Errorf("long query matched trivial intent: %+v", d)
	}
}

func TestRoute_ScenarioReasoningThenSticky(t *testing.T) {
	r := scenarioRouter(t)
	ctx := context.Background()

	// Fresh session asks for the reasoning model by name.
	d1 := r.Route(ctx, "use reasoning model", "")
	if d1.Model != "model-b" {
		t.Fatalf("d1.Model = %s, want model-b", d1.Model)
	}
	if d1.Reason != ReasonExplicit && d1.Reason != ReasonIntent {
		t.Errorf("d1.Reason = %s, want explicit or intent-match", d1.Reason)
	}
	if !d1.Switch {
		t.Error("d1.Switch = false, want true on first assignment")
	}

	// Follow-up sticks to the established model.
	d2 := r.Route(ctx, "what's 2+2", d1.Model)
	if d2.Model != "model-b" || d2.Reason != ReasonSticky || d2.Switch {
		t.Errorf("d2 = %+v, want model-b/sticky-reuse/no-switch", d2)
	}
}

func TestRoute_UnsupportedCapabilityDegradesToDefault(t *testing.T) {
	// An intent whose capability no model carries must surface as the
	// default decision, not an error.
	r := scenarioRouter(t, WithIntents([]IntentRule{
		{
			Intent:     "video",
			Keywords:   []string{"render"},
			Capability: "video",
			Confidence: 0.85,
		},
	}))

	d := r.Route(context.Background(), "render this scene", "")
	if d.Model != "model-a" || d.Reason != ReasonDefault {
		t.Errorf("Route() = %+v, want model-a/default", d)
	}
}

func TestRoute_Deterministic(t *testing.T) {
	queries := []string{
		"use reasoning model",
		"what's 2+2",
		"debug my parser",
		"hello",
		"switch to free model",
	}

	replay := func() []Decision {
		r := scenarioRouter(t)
		sticky := ""
		var out []Decision
		for _, q := range queries {
			d := r.Route(context.Background(), q, sticky)
			sticky = d.Model
			out = append(out, d)
		}
		return out
	}

	first, second := replay(), replay()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replay diverged:\n%+v\n%+v", first, second)
	}
}

func TestRoute_EstimatedCost(t *testing.T) {
	r := scenarioRouter(t)

	// 400 chars -> 100 input tokens, 50 output tokens on model-b:
	// 100/1000*3 + 50/1000*7 = $0.65.
	long := "use reasoning model"
	for len(long) < 400 {
		long += " padding"
	}
	long = long[:400]

	d := r.Route(context.Background(), long, "")
	if d.Model != "model-b" {
		t.Fatalf("d.Model = %s, want model-b", d.Model)
	}
	if d.EstimatedCost.Cents() != 65 {
		t.Errorf("EstimatedCost = %s, want $0.65", d.EstimatedCost)
	}
}

func TestRoute_ClassifierFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("consulted below threshold", func(t *testing.T) {
		called := false
		r := scenarioRouter(t, WithClassifier(classify.Func(
			func(ctx context.Context, prompt string) (string, error) {
				called = true
				return `<decision>{"model": "model-b", "confidence": 0.9, "complexity": "high"}</decision>`, nil
			})))

		// No rule matches: confidence 0.60 default, below 0.8.
		d := r.Route(ctx, "hmm", "")
		if !called {
			t.Fatal("classifier was not consulted")
		}
		if d.Model != "model-b" || d.Reason != ReasonClassifier {
			t.Errorf("Route() = %+v, want model-b/classifier", d)
		}
	})

	t.Run("not consulted above threshold", func(t *testing.T) {
		r := scenarioRouter(t, WithClassifier(classify.Func(
			func(ctx context.Context, prompt string) (string, error) {
				t.Error("classifier consulted for a confident rule decision")
				return "", nil
			})))

		d := r.Route(ctx, "use free model", "")
		if d.Reason != ReasonExplicit {
			t.Errorf("Route() reason = %s, want explicit", d.Reason)
		}
	})

	t.Run("classifier error keeps rule decision", func(t *testing.T) {
		r := scenarioRouter(t, WithClassifier(classify.Func(
			func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("backend down")
			})))

		d := r.Route(ctx, "hmm", "")
		if d.Model != "model-a" || d.Reason != ReasonDefault {
			t.Errorf("Route() = %+v, want rule fallback model-a/default", d)
		}
	})

	t.Run("malformed verdict keeps rule decision", func(t *testing.T) {
		r := scenarioRouter(t, WithClassifier(classify.Func(
			func(ctx context.Context, prompt string) (string, error) {
				return "I'd pick the big one.", nil
			})))

		d := r.Route(ctx, "hmm", "")
		if d.Reason != ReasonDefault {
			t.Errorf("Route() reason = %s, want default", d.Reason)
		}
	})

	t.Run("verdict naming unknown model keeps rule decision", func(t *testing.T) {
		r := scenarioRouter(t, WithClassifier(classify.Func(
			func(ctx context.Context, prompt string) (string, error) {
				return `{"model": "gpt-99", "confidence": 1}`, nil
			})))

		d := r.Route(ctx, "hmm", "")
		if d.Reason != ReasonDefault {
			t.Errorf("Route() reason = %s, want default", d.Reason)
		}
	})
}

func TestRoute_TieBreak(t *testing.T) {
	// Two equally priced coding models: declaration order wins.
	cat := catalog.MustNew(
		catalog.Model{ID: "first", InputPer1K: 1, OutputPer1K: 1, Capabilities: []string{catalog.CapCoding, catalog.CapGeneral}},
		catalog.Model{ID: "second", InputPer1K: 1, OutputPer1K: 1, Capabilities: []string{catalog.CapCoding}},
	)
	r, err := New(cat, WithDefaultModel("first"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d := r.Route(context.Background(), "debug this", "")
	if d.Model != "first" {
		t.Errorf("tie broke to %s, want first (declared first)", d.Model)
	}
}

func TestRoute_BestQualityNeedsQualityOrModelTail(t *testing.T) {
	r, err := New(catalog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		query      string
		wantModel  string
		wantReason Reason
	}{
		{"use the best model", "claude-opus-4", ReasonExplicit},
		{"use best quality model", "claude-opus-4", ReasonExplicit},
		{"give me the highest quality answer", "claude-opus-4", ReasonExplicit},
		// A bare "best" is not a model request.
		{"use best practices for error handling", "deepseek-v3", ReasonDefault},
		{"what would serve us best here, a queue or a channel, and why exactly", "deepseek-v3", ReasonDefault},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			d := r.Route(context.Background(), tt.query, "")
			if d.Model != tt.wantModel || d.Reason != tt.wantReason {
				t.Errorf("Route(%q) = %s/%s, want %s/%s", tt.query, d.Model, d.Reason, tt.wantModel, tt.wantReason)
			}
		})
	}
}

func TestRoute_ContextWindow(t *testing.T) {
	// tiny holds ~40 chars (10 tokens at ~4 chars each); roomy holds
	// anything.
	cat := catalog.MustNew(
		catalog.Model{ID: "tiny", InputPer1K: 0.5, OutputPer1K: 0.5, Capabilities: []string{catalog.CapCoding}, MaxContextTokens: 10, Aliases: []string{"small"}},
		catalog.Model{ID: "roomy", InputPer1K: 2, OutputPer1K: 2, Capabilities: []string{catalog.CapCoding, catalog.CapGeneral}, MaxContextTokens: 100000},
	)
	r, err := New(cat, WithDefaultModel("roomy"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()
	long := strings.Repeat("lorem ipsum ", 30)

	t.Run("intent picks cheapest that fits", func(t *testing.T) {
		d := r.Route(ctx, "debug this", "")
		if d.Model != "tiny" || d.Reason != ReasonIntent {
			t.Errorf("short query = %+v, want tiny/intent-match", d)
		}

		d = r.Route(ctx, "debug "+long, "")
		if d.Model != "roomy" || d.Reason != ReasonIntent {
			t.Errorf("long query = %+v, want roomy/intent-match", d)
		}
	})

	t.Run("override skipped when query overflows the target", func(t *testing.T) {
		d := r.Route(ctx, "use small", "")
		if d.Model != "tiny" || d.Reason != ReasonExplicit {
			t.Errorf("short explicit = %+v, want tiny/explicit", d)
		}

		d = r.Route(ctx, "use small please "+long, "")
		if d.Model != "roomy" {
			t.Errorf("overflowing explicit = %+v, want roomy", d)
		}
	})

	t.Run("sticky skipped when query overflows it", func(t *testing.T) {
		d := r.Route(ctx, "carry on with "+long, "tiny")
		if d.Model != "roomy" || d.Reason != ReasonDefault {
			t.Errorf("overflowing sticky = %+v, want roomy/default", d)
		}
	})
}
