package cost

import (
	"fmt"
	"math"

	"github.com/randalmurphal/llmrouter/catalog"
)

// USD is a monetary amount in whole cents. Integer cents keep
// accumulation exact: a session total is always the precise sum of its
// per-call estimates.
type USD int64

// Cents constructs a USD amount from a cent count.
func Cents(n int64) USD { return USD(n) }

// Cents returns the amount as a cent count.
func (u USD) Cents() int64 { return int64(u) }

// Dollars returns the amount as a float64 dollar value.
func (u USD) Dollars() float64 { return float64(u) / 100 }

// String renders the amount as "$12.34".
func (u USD) String() string {
	if u < 0 {
		return fmt.Sprintf("-$%d.%02d", -u/100, -u%100)
	}
	return fmt.Sprintf("$%d.%02d", u/100, u%100)
}

// EstimateModel computes the cost of a call against a resolved model:
// tokens_in/1000 * input_rate + tokens_out/1000 * output_rate, rounded
// half-even to whole cents.
func EstimateModel(m catalog.Model, tokensIn, tokensOut int) USD {
	dollars := float64(tokensIn)/1000*m.InputPer1K + float64(tokensOut)/1000*m.OutputPer1K
	return USD(math.RoundToEven(dollars * 100))
}

// Estimate resolves the model in the catalog and computes the call cost.
// Returns ErrUnknownModel if the model is not registered.
func Estimate(cat *catalog.Catalog, modelID string, tokensIn, tokensOut int) (USD, error) {
	m, err := cat.Lookup(modelID)
	if err != nil {
		return 0, err
	}
	return EstimateModel(m, tokensIn, tokensOut), nil
}
