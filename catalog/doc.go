// Package catalog provides the read-only model registry: which backends
// exist, what they cost, and what they are good at.
//
// A Catalog is immutable after construction and safe for concurrent
// reads. Declaration order is significant - it is the deterministic
// tie-break whenever two models are equally cheap for a capability.
//
//	cat := catalog.Default()
//	m, err := cat.Lookup("claude")        // alias resolution
//	coders := cat.WithCapability("coding")
//	cheap, err := cat.Cheapest("reasoning")
//
// Lookup failures return ErrUnknownModel; unsatisfiable capability
// requirements return ErrNoEligibleModel. Both are sentinel errors
// checked with errors.Is.
package catalog
