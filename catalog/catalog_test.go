package catalog

import (
	"sync"
	"testing"
)

func testModels() []Model {
	return []Model{
		{ID: "alpha", Capabilities: []string{CapFree, CapGeneral}, Free: true, MaxContextTokens: 8192},
		{ID: "bravo", InputPer1K: 1.0, OutputPer1K: 1.0, Capabilities: []string{CapGeneral, CapCoding}, MaxContextTokens: 128000},
		{ID: "charlie", InputPer1K: 3.0, OutputPer1K: 7.0, Capabilities: []string{CapReasoning}, MaxContextTokens: 128000, Aliases: []string{"chuck"}},
		{ID: "delta", InputPer1K: 1.0, OutputPer1K: 1.0, Capabilities: []string{CapGeneral}, MaxContextTokens: 32000},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		models  []Model
		wantErr bool
	}{
		{"valid", testModels(), false},
		{"empty catalog", nil, true},
		{"empty id", []Model{{ID: ""}}, true},
		{"duplicate id", []Model{{ID: "a"}, {ID: "a"}}, true},
		{"duplicate id case-insensitive", []Model{{ID: "a"}, {ID: "A"}}, true},
		{"alias collides with id", []Model{{ID: "a"}, {ID: "b", Aliases: []string{"a"}}}, true},
		{"negative rate", []Model{{ID: "a", InputPer1K: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.models...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	cat := MustNew(testModels()...)

	t.Run("by id", func(t *testing.T) {
		m, err := cat.Lookup("bravo")
		if err != nil {
			t.Fatalf("Lookup(bravo) error = %v", err)
		}
		if m.ID != "bravo" {
			t.Errorf("Lookup(bravo).ID = %s", m.ID)
		}
	})

	t.Run("by alias", func(t *testing.T) {
		m, err := cat.Lookup("chuck")
		if err != nil {
			t.Fatalf("Lookup(chuck) error = %v", err)
		}
		if m.ID != "charlie" {
			t.Errorf("Lookup(chuck).ID = %s, want charlie", m.ID)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		if _, err := cat.Lookup("BRAVO"); err != nil {
			t.Errorf("Lookup(BRAVO) error = %v", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := cat.Lookup("nope")
		if !IsUnknownModel(err) {
			t.Errorf("Lookup(nope) error = %v, want ErrUnknownModel", err)
		}
	})
}

func TestCheapest(t *testing.T) {
	cat := MustNew(testModels()...)

	t.Run("cheapest overall", func(t *testing.T) {
		m, err := cat.Cheapest("")
		if err != nil {
			t.Fatalf("Cheapest() error = %v", err)
		}
		if m.ID != "alpha" {
			t.Errorf("Cheapest() = %s, want alpha", m.ID)
		}
	})

	t.Run("tie broken by declaration order", func(t *testing.T) {
		// bravo and delta are both $2.00/1K for "general"; alpha is free.
		cat2 := MustNew(
			Model{ID: "bravo", InputPer1K: 1, OutputPer1K: 1, Capabilities: []string{CapGeneral}},
			Model{ID: "delta", InputPer1K: 1, OutputPer1K: 1, Capabilities: []string{CapGeneral}},
		)
		m, err := cat2.Cheapest(CapGeneral)
		if err != nil {
			t.Fatalf("Cheapest(general) error = %v", err)
		}
		if m.ID != "bravo" {
			t.Errorf("Cheapest(general) = %s, want bravo (declared first)", m.ID)
		}
	})

	t.Run("no eligible model", func(t *testing.T) {
		_, err := cat.Cheapest("video")
		if !IsNoEligibleModel(err) {
			t.Errorf("Cheapest(video) error = %v, want ErrNoEligibleModel", err)
		}
	})
}

func TestMostCapable(t *testing.T) {
	cat := MustNew(testModels()...)

	m, err := cat.MostCapable("")
	if err != nil {
		t.Fatalf("MostCapable() error = %v", err)
	}
	if m.ID != "charlie" {
		t.Errorf("MostCapable() = %s, want charlie", m.ID)
	}
}

func TestFreeModel(t *testing.T) {
	cat := MustNew(testModels()...)

	m, err := cat.FreeModel()
	if err != nil {
		t.Fatalf("FreeModel() error = %v", err)
	}
	if m.ID != "alpha" {
		t.Errorf("FreeModel() = %s, want alpha", m.ID)
	}

	paid := MustNew(Model{ID: "x", InputPer1K: 1})
	if _, err := paid.FreeModel(); !IsNoEligibleModel(err) {
		t.Errorf("FreeModel() on paid-only catalog error = %v, want ErrNoEligibleModel", err)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	cat := MustNew(testModels()...)

	all := cat.All()
	all[0].ID = "mutated"

	m, err := cat.Lookup("alpha")
	if err != nil || m.ID != "alpha" {
		t.Errorf("catalog mutated through All(): %v, %v", m, err)
	}
}

func TestFilter(t *testing.T) {
	cat := MustNew(testModels()...)

	free := cat.Filter(func(m Model) bool { return m.Free })
	if len(free) != 1 || free[0].ID != "alpha" {
		t.Errorf("Filter(free) = %v", free)
	}

	general := cat.WithCapability(CapGeneral)
	if len(general) != 3 {
		t.Errorf("WithCapability(general) returned %d models, want 3", len(general))
	}
}

func TestConcurrentReads(t *testing.T) {
	cat := MustNew(testModels()...)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cat.Lookup("charlie")
				cat.Cheapest(CapGeneral)
				cat.All()
			}
		}()
	}
	wg.Wait()
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	if !cat.Contains(DefaultModelID) {
		t.Fatalf("default catalog missing default model %q", DefaultModelID)
	}

	free, err := cat.FreeModel()
	if err != nil {
		t.Fatalf("default catalog has no free tier: %v", err)
	}
	if free.RatePer1K() != 0 {
		t.Errorf("free model %s has nonzero rate", free.ID)
	}

	// Aliases from the docs must resolve.
	for _, alias := range []string{"claude", "opus", "free", "r1"} {
		if _, err := cat.Lookup(alias); err != nil {
			t.Errorf("Lookup(%s) error = %v", alias, err)
		}
	}
}
