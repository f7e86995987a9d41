package estimate

import (
	"math"

	"maleri_backend/internal/catalog"
)

// PricingConfig carries the configured defaults used when a task has no
// override. It is passed explicitly into every resolver call; there is no
// package-level pricing state.
type PricingConfig struct {
	// LaborRate is the hourly labor rate in currency units.
	LaborRate float64
	// TaskMarkupPct is the per-task markup applied to the unit price.
	TaskMarkupPct float64
	// BatchMarkupPct is the presentation-level markup applied once on the
	// estimate subtotal. Deliberately separate from TaskMarkupPct.
	BatchMarkupPct float64
}

// DefaultPricingConfig returns the documented defaults:
// 500/h labor, 10% task markup, 15% batch markup.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		LaborRate:      500,
		TaskMarkupPct:  10,
		BatchMarkupPct: 15,
	}
}

// LineItem is one priced, quantified catalog task within an estimate.
type LineItem struct {
	TaskID      string       `json:"taskId"`
	TaskName    string       `json:"taskName"`
	Description string       `json:"description"`
	Unit        catalog.Unit `json:"unit"`
	Quantity    float64      `json:"quantity"`
	Layers      int          `json:"layers"`
	UnitPrice   float64      `json:"unitPrice"`
	Subtotal    float64      `json:"subtotal"`
	MatchScore  float64      `json:"matchScore"`
}

// ResolveLineItem computes the billed quantity and price for a matched
// task against a room. A layers value below 1 selects the task's default
// layer count.
//
// Billed quantity is measure × layers. The unit price is the labor norm
// times the effective labor rate plus the material cost, marked up by the
// effective task markup. Monetary outputs are rounded half-up to 2
// decimals exactly once, at the output boundary; intermediates stay
// unrounded so subtotals reproduce bit-for-bit.
func ResolveLineItem(task *catalog.Task, geo RoomGeometry, layers int, cfg PricingConfig) LineItem {
	return resolveLineItem(task, geo, layers, 1, cfg)
}

func resolveLineItem(task *catalog.Task, geo RoomGeometry, layers int, scale float64, cfg PricingConfig) LineItem {
	if layers < 1 {
		layers = task.DefaultLayers
	}
	if scale <= 0 {
		scale = 1
	}

	quantity := geo.measureForTask(task) * float64(layers) * scale
	// A cramped room can push the net measure negative; that is billed as
	// zero, not treated as an error.
	if quantity < 0 {
		quantity = 0
	}

	rate := cfg.LaborRate
	if task.LaborRateOverride != nil {
		rate = *task.LaborRateOverride
	}
	markup := cfg.TaskMarkupPct
	if task.MarkupPctOverride != nil {
		markup = *task.MarkupPctOverride
	}

	unitPrice := task.LaborHoursPerUnit*rate + task.MaterialCostPerUnit
	priced := unitPrice * (1 + markup/100)

	return LineItem{
		TaskID:     task.ID,
		TaskName:   task.Name,
		Unit:       task.Unit,
		Quantity:   round2(quantity),
		Layers:     layers,
		UnitPrice:  round2(priced),
		Subtotal:   round2(quantity * priced),
		MatchScore: 1,
	}
}

// round2 rounds half-up on the cent boundary. Scaling by 100 can land a
// hair under the half cent (1.005*100 evaluates to 100.4999…), so a small
// guard absorbs the representation error before flooring.
func round2(v float64) float64 {
	const guard = 1e-7
	return math.Floor(v*100+0.5+guard) / 100
}
