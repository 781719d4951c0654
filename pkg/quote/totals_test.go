package quote

import (
	"math"
	"testing"

	"github.com/pharmapack/quotebuilder/pkg/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals(t *testing.T) {
	items := []Item{
		{Quantity: 100, Rate: 10}, // 1000
		{Quantity: 50, Rate: 20},  // 1000
	}
	ch := Charges{
		DiscountPercent:  10,
		TaxPercent:       12,
		CylinderCharges:  500,
		InventoryCharges: 300,
	}

	got := ComputeTotals(items, ch)

	if !almostEqual(got.Subtotal, 2000) {
		t.Errorf("Subtotal = %v, expected 2000", got.Subtotal)
	}
	if !almostEqual(got.DiscountAmount, 200) {
		t.Errorf("DiscountAmount = %v, expected 200", got.DiscountAmount)
	}
	if !almostEqual(got.TaxOnSubtotal, 216) {
		t.Errorf("TaxOnSubtotal = %v, expected 216", got.TaxOnSubtotal)
	}
	if !almostEqual(got.TaxOnCharges, 96) {
		t.Errorf("TaxOnCharges = %v, expected 96", got.TaxOnCharges)
	}
	if !almostEqual(got.TotalTax, 312) {
		t.Errorf("TotalTax = %v, expected 312", got.TotalTax)
	}
	if !almostEqual(got.Total, 2912) {
		t.Errorf("Total = %v, expected 2912", got.Total)
	}
	if !almostEqual(got.AdvancePayment, 1456) {
		t.Errorf("AdvancePayment = %v, expected 1456", got.AdvancePayment)
	}
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	got := ComputeTotals(nil, Charges{TaxPercent: 18})
	if got.Subtotal != 0 || got.Total != 0 || got.AdvancePayment != 0 {
		t.Errorf("empty items produced non-zero totals: %+v", got)
	}
}

func TestComputeFlags(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		expected Flags
	}{
		{"no items", nil, Flags{}},
		{
			"plain tablets",
			[]Item{{FormulationType: "Tablet", PackagingType: "Alu Alu"}},
			Flags{},
		},
		{
			"one soft gelatine",
			[]Item{
				{FormulationType: "Tablet"},
				{FormulationType: catalog.SoftGelatine},
			},
			Flags{HasSoftGelatin: true},
		},
		{
			"one blister",
			[]Item{{FormulationType: "Tablet", PackagingType: catalog.Blister}},
			Flags{HasBlister: true},
		},
		{
			"both",
			[]Item{
				{FormulationType: catalog.SoftGelatine, PackagingType: catalog.Blister},
			},
			Flags{HasSoftGelatin: true, HasBlister: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFlags(tt.items); got != tt.expected {
				t.Errorf("ComputeFlags = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
