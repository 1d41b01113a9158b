// Package cost prices token usage against catalog rates.
//
// Amounts are USD values in whole cents, so accumulation is exact and a
// running total can never drift from the sum of its parts. A single call
// costs tokens_in/1000 * input_rate + tokens_out/1000 * output_rate,
// rounded half-even to the cent.
//
//	c, err := cost.Estimate(cat, "deepseek-r1", 2000, 500)
//
// Tracker aggregates usage per model across the process:
//
//	tracker := cost.NewTracker(cat)
//	tracker.Record("deepseek-v3", 1000, 500)
//	spend := tracker.EstimatedSpend()
package cost
