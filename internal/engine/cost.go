package engine

import "github.com/chrisdamba/foodroadtrip/internal/models"

// CostTable maps a price tier symbol to its estimated cost per stop.
type CostTable map[string]float64

// DefaultCostTable is the built-in tier table: $ 20, $$ 40, $$$ 80, $$$$ 150.
func DefaultCostTable() CostTable {
	return CostTable(models.DefaultPricing())
}

// Estimate returns the cost for tier. ok is false when the tier is absent or
// unrecognised, which callers must keep distinct from a zero cost.
func (t CostTable) Estimate(tier string) (cost float64, ok bool) {
	cost, ok = t[tier]
	return cost, ok
}

// EstimatePtr is Estimate as an optional value: nil means no estimate.
func (t CostTable) EstimatePtr(tier string) *float64 {
	cost, ok := t.Estimate(tier)
	if !ok {
		return nil
	}
	return &cost
}
