package quote

import "github.com/pharmapack/quotebuilder/pkg/catalog"

// Charges are the commercial aggregate inputs taken from the form header.
type Charges struct {
	DiscountPercent  float64 `json:"discountPercent"`
	TaxPercent       float64 `json:"taxPercent"`
	CylinderCharges  float64 `json:"cylinderCharges"`
	InventoryCharges float64 `json:"inventoryCharges"`
}

// Totals is the subtotal-to-total pipeline consumed by the rendering layer.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	TaxOnSubtotal  float64 `json:"taxOnSubtotal"`
	TaxOnCharges   float64 `json:"taxOnCharges"`
	TotalTax       float64 `json:"totalTax"`
	Total          float64 `json:"total"`
	AdvancePayment float64 `json:"advancePayment"`
}

// Share of the final total collected up front.
const advanceShare = 0.5

// ComputeTotals aggregates line amounts through discount, tax and charges.
// Tax applies separately to the discounted subtotal and to the cylinder and
// inventory charges.
func ComputeTotals(items []Item, ch Charges) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount()
	}

	discount := subtotal * ch.DiscountPercent / 100
	taxable := subtotal - discount
	charges := ch.CylinderCharges + ch.InventoryCharges

	taxOnSubtotal := taxable * ch.TaxPercent / 100
	taxOnCharges := charges * ch.TaxPercent / 100
	totalTax := taxOnSubtotal + taxOnCharges
	total := taxable + charges + totalTax

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxOnSubtotal:  taxOnSubtotal,
		TaxOnCharges:   taxOnCharges,
		TotalTax:       totalTax,
		Total:          total,
		AdvancePayment: total * advanceShare,
	}
}

// Flags are the rendering hints derived by scanning the items.
type Flags struct {
	HasSoftGelatin bool `json:"hasSoftGelatin"`
	HasBlister     bool `json:"hasBlister"`
}

// ComputeFlags reports whether any item uses a soft-gelatine formulation or
// blister packaging.
func ComputeFlags(items []Item) Flags {
	var f Flags
	for _, it := range items {
		if it.FormulationType == catalog.SoftGelatine {
			f.HasSoftGelatin = true
		}
		if it.PackagingType == catalog.Blister {
			f.HasBlister = true
		}
	}
	return f
}
