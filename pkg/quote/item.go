// Package quote implements the quotation line-item engine: the item record,
// the field-update resolver that keeps dependent fields consistent, the
// ordered item collection, the whole-form validator and the totals
// aggregation the rendering layer consumes.
package quote

import "github.com/google/uuid"

// Category and order type values accepted on an item.
const (
	CategoryDrug          = "Drug"
	CategoryNutraceutical = "Nutraceutical"
	CategoryCosmetics     = "Cosmetics"

	OrderNew    = "New"
	OrderRepeat = "Repeat"
)

// Item is one quotation line. Option fields follow the custom-override
// convention: when the primary field holds "Custom" the paired Custom* field
// carries the effective value.
type Item struct {
	ID string `json:"id"`

	BrandName       string `json:"brandName"`
	CategoryType    string `json:"categoryType"`
	OrderType       string `json:"orderType"`
	FormulationType string `json:"formulationType"`
	Composition     string `json:"composition"`
	Specification   string `json:"specification"`

	Packing             string `json:"packing"`
	CustomPacking       string `json:"customPacking"`
	PackagingType       string `json:"packagingType"`
	CustomPackagingType string `json:"customPackagingType"`
	CartonPacking       string `json:"cartonPacking"`
	CustomCartonPacking string `json:"customCartonPacking"`
	PvcType             string `json:"pvcType"`
	CustomPvcType       string `json:"customPvcType"`

	// Injection-only fields. Pack/tray apply to dry injections, packing/PVC
	// to liquid injections; the two groups never coexist non-empty.
	InjectionType     string `json:"injectionType"`
	InjectionPackSize string `json:"injectionPackSize"`
	InjectionTrayType string `json:"injectionTrayType"`
	InjectionPacking  string `json:"injectionPacking"`
	InjectionPvcType  string `json:"injectionPvcType"`

	// Dry-syrup only.
	WaterType string `json:"waterType"`
	// Soft-gelatine only.
	SoftgelColor string `json:"softgelColor"`

	Quantity float64 `json:"quantity"`
	MRP      float64 `json:"mrp"`
	Rate     float64 `json:"rate"`
}

// NewItem returns a fresh line item with the documented defaults.
func NewItem() Item {
	return Item{
		ID:       uuid.New().String(),
		Quantity: 1,
	}
}

// Duplicate returns a structural copy of item under a new identity. Item has
// no reference fields, so a value copy is already independent.
func Duplicate(item Item) Item {
	dup := item
	dup.ID = uuid.New().String()
	return dup
}

// Amount is the derived line total.
func (it Item) Amount() float64 {
	return it.Quantity * it.Rate
}

// EffectivePacking resolves the custom-override pair for packing.
func (it Item) EffectivePacking() string {
	return effective(it.Packing, it.CustomPacking)
}

// EffectivePackagingType resolves the custom-override pair for packaging.
func (it Item) EffectivePackagingType() string {
	return effective(it.PackagingType, it.CustomPackagingType)
}

// EffectiveCartonPacking resolves the custom-override pair for cartons.
func (it Item) EffectiveCartonPacking() string {
	return effective(it.CartonPacking, it.CustomCartonPacking)
}

func effective(primary, custom string) string {
	if primary == "Custom" {
		return custom
	}
	return primary
}
