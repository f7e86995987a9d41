package email

import (
	"strings"
	"testing"
)

func TestRenderSummary(t *testing.T) {
	body, err := renderSummary(EstimateSummary{
		ProjectName: "Villa Ekbacken",
		RoomName:    "vardagsrummet",
		Lines: []SummaryLine{
			{Name: "Täckmåla väggar", Quantity: 40, Unit: "m²", UnitPrice: 74.80, Subtotal: 2992.00},
		},
		Errors:     []string{"ingen katalogpost matchar: \"lackera garderoben\""},
		Subtotal:   2992.00,
		Markup:     448.80,
		GrandTotal: 3440.80,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Villa Ekbacken",
		"vardagsrummet",
		"Täckmåla väggar: 40.00 m² à 74.80 kr = 2992.00 kr",
		"Totalt: 3440.80 kr",
		"lackera garderoben",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("summary mail missing %q:\n%s", want, body)
		}
	}
}

func TestRenderSummary_NoErrorsSection(t *testing.T) {
	body, err := renderSummary(EstimateSummary{ProjectName: "P", RoomName: "R"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "kunde inte tolkas") {
		t.Fatalf("error section should be omitted:\n%s", body)
	}
}
