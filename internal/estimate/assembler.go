package estimate

import (
	"fmt"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/intent"
)

// Totals holds the aggregated amounts of an estimate. Markup here is the
// batch-level presentation markup; per-task markup is already inside the
// line subtotals.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Markup     float64 `json:"markup"`
	GrandTotal float64 `json:"grandTotal"`
}

// Result is the outcome of assembling a batch of utterances. It always
// carries whatever line items were produced together with the per-task
// errors; one unrecognized phrase never discards the rest of the batch.
type Result struct {
	LineItems []LineItem `json:"lineItems"`
	Errors    []string   `json:"errors"`
	Totals    Totals     `json:"totals"`
}

// Assembler runs the parse → match → resolve pipeline over utterances
// against one catalog snapshot.
type Assembler struct {
	catalog *catalog.Catalog
	cfg     PricingConfig
}

// NewAssembler creates an assembler bound to a catalog snapshot and
// pricing defaults. The snapshot stays consistent for the assembler's
// lifetime even if the catalog store is reloaded concurrently.
func NewAssembler(cat *catalog.Catalog, cfg PricingConfig) *Assembler {
	return &Assembler{catalog: cat, cfg: cfg}
}

// Generate assembles an estimate from a batch of utterances.
func (a *Assembler) Generate(utterances []string, geo RoomGeometry) Result {
	var result Result

	for _, utterance := range utterances {
		items, errs := a.ProcessUtterance(utterance, geo)
		result.LineItems = append(result.LineItems, items...)
		result.Errors = append(result.Errors, errs...)
	}

	result.Totals = ComputeTotals(result.LineItems, a.cfg)
	return result
}

// ProcessUtterance runs one utterance through the pipeline and returns the
// produced line items plus the per-task errors.
func (a *Assembler) ProcessUtterance(utterance string, geo RoomGeometry) ([]LineItem, []string) {
	intents := intent.Parse(utterance)
	if len(intents) == 0 {
		return nil, []string{fmt.Sprintf("ingen uppgift kändes igen i: %q", utterance)}
	}

	var items []LineItem
	var errs []string
	for _, it := range intents {
		description := it.Description()
		match, ok := a.catalog.Match(description, it.Surface)
		if !ok {
			errs = append(errs, fmt.Sprintf("ingen katalogpost matchar: %q", description))
			continue
		}

		item := resolveLineItem(match.Task, geo, it.Layers, it.Quantity, a.cfg)
		item.Description = description
		item.MatchScore = match.Score
		items = append(items, item)
	}

	return items, errs
}

// ComputeTotals aggregates line subtotals and applies the batch-level
// markup on top.
func ComputeTotals(items []LineItem, cfg PricingConfig) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}

	subtotal = round2(subtotal)
	markup := round2(subtotal * cfg.BatchMarkupPct / 100)
	return Totals{
		Subtotal:   subtotal,
		Markup:     markup,
		GrandTotal: round2(subtotal + markup),
	}
}
