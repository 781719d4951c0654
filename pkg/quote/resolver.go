package quote

import (
	"github.com/pharmapack/quotebuilder/pkg/catalog"
	"github.com/pharmapack/quotebuilder/pkg/numeric"
)

// Field names accepted by UpdateField. They match the item's JSON keys so
// clients can route edits straight through.
const (
	FieldBrandName       = "brandName"
	FieldCategoryType    = "categoryType"
	FieldOrderType       = "orderType"
	FieldFormulationType = "formulationType"
	FieldComposition     = "composition"
	FieldSpecification   = "specification"

	FieldPacking             = "packing"
	FieldCustomPacking       = "customPacking"
	FieldPackagingType       = "packagingType"
	FieldCustomPackagingType = "customPackagingType"
	FieldCartonPacking       = "cartonPacking"
	FieldCustomCartonPacking = "customCartonPacking"
	FieldPvcType             = "pvcType"
	FieldCustomPvcType       = "customPvcType"

	FieldInjectionType     = "injectionType"
	FieldInjectionPackSize = "injectionPackSize"
	FieldInjectionTrayType = "injectionTrayType"
	FieldInjectionPacking  = "injectionPacking"
	FieldInjectionPvcType  = "injectionPvcType"

	FieldWaterType    = "waterType"
	FieldSoftgelColor = "softgelColor"

	FieldQuantity = "quantity"
	FieldMRP      = "mrp"
	FieldRate     = "rate"
)

// UpdateField returns a copy of item with the named field set to value and
// every dependent field reconciled. Unknown field names leave the item
// unchanged; there is no invalid-item state, only combinations that may later
// fail form validation.
func UpdateField(item Item, field, value string) Item {
	switch field {
	case FieldBrandName:
		item.BrandName = value
	case FieldCategoryType:
		item.CategoryType = value
	case FieldOrderType:
		item.OrderType = value
	case FieldComposition:
		item.Composition = value
	case FieldSpecification:
		item.Specification = value

	case FieldFormulationType:
		item = setFormulationType(item, value)

	case FieldPacking:
		item.Packing = value
		if value != "Custom" {
			item.CustomPacking = ""
		}
	case FieldCustomPacking:
		item.CustomPacking = value

	case FieldPackagingType:
		item.PackagingType = value
		if value != "Custom" {
			item.CustomPackagingType = ""
		}
		// PVC selection only applies under blister packaging.
		if value != catalog.Blister {
			item.PvcType = ""
			item.CustomPvcType = ""
		}
	case FieldCustomPackagingType:
		item.CustomPackagingType = value

	case FieldCartonPacking:
		item.CartonPacking = value
		if value != "Custom" {
			item.CustomCartonPacking = ""
		}
	case FieldCustomCartonPacking:
		item.CustomCartonPacking = value

	case FieldPvcType:
		item.PvcType = value
		if value != "Custom" {
			item.CustomPvcType = ""
		}
	case FieldCustomPvcType:
		item.CustomPvcType = value

	case FieldInjectionType:
		item.InjectionType = value
		// The dry and liquid sub-field groups are mutually exclusive; a
		// sub-type switch resets both.
		item.InjectionPackSize = ""
		item.InjectionTrayType = ""
		item.InjectionPacking = ""
		item.InjectionPvcType = ""
	case FieldInjectionPackSize:
		item.InjectionPackSize = value
	case FieldInjectionTrayType:
		item.InjectionTrayType = value
	case FieldInjectionPacking:
		item.InjectionPacking = value
	case FieldInjectionPvcType:
		item.InjectionPvcType = value

	case FieldWaterType:
		item.WaterType = value
	case FieldSoftgelColor:
		item.SoftgelColor = value

	case FieldQuantity:
		item.Quantity = numeric.ToNumber(value)
	case FieldMRP:
		item.MRP = numeric.ToNumber(value)
	case FieldRate:
		item.Rate = numeric.ToNumber(value)
	}
	return item
}

// Normalize enforces the dependency invariants on an item snapshot taken
// wholesale from a client, clearing any dependent field the client failed to
// clear. Items edited through UpdateField are already normal.
func Normalize(item Item) Item {
	if item.PackagingType != catalog.Blister {
		item.PvcType = ""
		item.CustomPvcType = ""
	}
	if item.FormulationType != catalog.Injection {
		item.InjectionType = ""
		item.InjectionPackSize = ""
		item.InjectionTrayType = ""
		item.InjectionPacking = ""
		item.InjectionPvcType = ""
	}
	if item.FormulationType != catalog.DrySyrup {
		item.WaterType = ""
	}
	if item.FormulationType != catalog.SoftGelatine {
		item.SoftgelColor = ""
	}
	switch item.InjectionType {
	case catalog.DryInjection:
		item.InjectionPacking = ""
		item.InjectionPvcType = ""
	case catalog.LiquidInjection:
		item.InjectionPackSize = ""
		item.InjectionTrayType = ""
	}
	return item
}

// setFormulationType changes the formulation and clears everything whose
// legality depended on the old one. Option fields are cleared unconditionally
// because the old values are not guaranteed valid under the new catalog
// entry; family-specific sub-fields survive only when the new formulation is
// still in their family.
func setFormulationType(item Item, value string) Item {
	item.FormulationType = value

	item.Packing = ""
	item.CustomPacking = ""
	item.PackagingType = ""
	item.CustomPackagingType = ""
	item.CartonPacking = ""
	item.CustomCartonPacking = ""
	item.PvcType = ""
	item.CustomPvcType = ""

	if value != catalog.Injection {
		item.InjectionType = ""
		item.InjectionPackSize = ""
		item.InjectionTrayType = ""
		item.InjectionPacking = ""
		item.InjectionPvcType = ""
	}
	if value != catalog.DrySyrup {
		item.WaterType = ""
	}
	if value != catalog.SoftGelatine {
		item.SoftgelColor = ""
	}
	return item
}
