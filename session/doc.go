// Package session tracks per-conversation routing state: the sticky
// model, turn counts, cumulative cost, and a log of model switches.
//
// A Store is an in-memory map of sessions, safe for concurrent use.
// Sessions are created on demand by default:
//
//	cat := catalog.Default()
//	store := session.NewStore(cat)
//
//	s := store.GetOrCreate("conv-42")
//	d, _ := rtr.Route(ctx, "debug this function", s.Model)
//	store.RecordDecision("conv-42", d)
//
// After the exchange completes, record its token usage so the session's
// running cost stays current:
//
//	total, _ := store.AccumulateCost("conv-42", d.Model, 1200, 600)
//	fmt.Println(total) // e.g. $0.02
//
// RecordDecision only appends to the switch log when the decided model
// actually differs from the sticky one; reusing the sticky model is not
// a switch. The first assignment is logged with an empty From.
//
// Idle sessions are evicted by Sweep, either called directly or on a
// schedule via StartJanitor:
//
//	store := session.NewStore(cat, session.WithIdleTimeout(30*time.Minute))
//	store.StartJanitor(ctx, time.Minute)
package session
