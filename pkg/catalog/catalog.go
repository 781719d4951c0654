// Package catalog holds the static formulation option tables: which packing,
// packaging and carton choices are legal for each formulation type, and which
// formulations skip the packing field entirely.
package catalog

// Sentinel option values shared across formulations.
const (
	Custom       = "Custom"
	Blister      = "Blister"
	Injection    = "Injection"
	DrySyrup     = "Dry Syrup"
	SoftGelatine = "Soft Gelatine"
)

// Injection sub-types. Dry injections ship as pack+tray combos, liquid
// injections carry their own packing and PVC selection.
const (
	DryInjection    = "Dry Injection"
	LiquidInjection = "Liquid Injection"
)

var packingOptions = map[string][]string{
	"Tablet":       {"10x10", "10x15", "10x20", "20x10", "30x10", Custom},
	"Capsule":      {"10x10", "10x15", "10x20", "20x10", Custom},
	SoftGelatine:   {"10x10", "10x15", "20x10", Custom},
	"Syrup":        {"30ml", "60ml", "100ml", "150ml", "200ml", Custom},
	"Suspension":   {"30ml", "60ml", "100ml", "150ml", "200ml", Custom},
	DrySyrup:       {"30ml", "60ml", Custom},
	"Ointment":     {"5gm", "10gm", "15gm", "20gm", "30gm", Custom},
	"Cream":        {"5gm", "10gm", "15gm", "20gm", "30gm", Custom},
	"Gel":          {"10gm", "15gm", "30gm", Custom},
	"Drops":        {"5ml", "10ml", "15ml", "30ml", Custom},
	"Lotion":       {"60ml", "100ml", "200ml", Custom},
	"Shampoo":      {"100ml", "200ml", Custom},
	"Oil":          {"60ml", "100ml", "200ml", Custom},
	"Powder":       {"1gm", "5gm", "10gm", "100gm", Custom},
	"Sachet":       {"1gm", "5gm", "10gm", Custom},
}

var packagingOptions = map[string][]string{
	"Tablet":     {Blister, "Alu Alu", "Strip", "Jar", "Container", Custom},
	"Capsule":    {Blister, "Alu Alu", "Strip", "Jar", "Container", Custom},
	SoftGelatine: {Blister, "Jar", "Container", Custom},
	"Syrup":      {"With Sticker Label", "With Printed Label", Custom},
	"Suspension": {"With Sticker Label", "With Printed Label", Custom},
	DrySyrup:     {"With Sticker Label", "With Printed Label", Custom},
	Injection:    {"Vial", "Ampoule", "Dispo Pack", Custom},
	"Ointment":   {"Tube", "Jar", Custom},
	"Cream":      {"Tube", "Jar", Custom},
	"Gel":        {"Tube", Custom},
	"Drops":      {"With Dropper", "Without Dropper", Custom},
	"Lotion":     {"With Sticker Label", "With Printed Label", Custom},
	"Shampoo":    {"With Sticker Label", "With Printed Label", Custom},
	"Oil":        {"With Sticker Label", "With Printed Label", Custom},
	"Powder":     {"Jar", "Container", "Pouch", Custom},
	"Sachet":     {"Pouch", "Printed Pouch", Custom},
}

// Only liquid-oral formulations ship in cartons.
var cartonOptions = map[string][]string{
	"Syrup":      {"Flat Carton", "Upright Carton", "Without Carton"},
	"Suspension": {"Flat Carton", "Upright Carton", "Without Carton"},
	DrySyrup:     {"Flat Carton", "Upright Carton", "Without Carton"},
	"Drops":      {"Flat Carton", "Without Carton"},
}

// Formulations for which the packing field does not apply.
var noPackingFormulations = map[string]bool{
	Injection: true,
	"Fluids":  true,
}

// PackingOptionsFor returns the legal packing options for a formulation type.
// Unknown or free-form types resolve to an empty set, never an error.
func PackingOptionsFor(formulation string) []string {
	return copyOptions(packingOptions[formulation])
}

// PackagingOptionsFor returns the legal packaging options for a formulation type.
func PackagingOptionsFor(formulation string) []string {
	return copyOptions(packagingOptions[formulation])
}

// CartonOptionsFor returns the carton options for a formulation type. Most
// formulations have none.
func CartonOptionsFor(formulation string) []string {
	return copyOptions(cartonOptions[formulation])
}

// RequiresPacking reports whether the packing field applies to a formulation.
func RequiresPacking(formulation string) bool {
	return !noPackingFormulations[formulation]
}

// Formulations returns every formulation type with a constrained option set,
// in display order.
func Formulations() []string {
	return []string{
		"Tablet", "Capsule", SoftGelatine, "Syrup", "Suspension", DrySyrup,
		Injection, "Ointment", "Cream", "Gel", "Drops", "Lotion", "Shampoo",
		"Oil", "Powder", "Sachet", "Fluids",
	}
}

// InjectionTypes returns the recognised injection sub-types.
func InjectionTypes() []string {
	return []string{DryInjection, LiquidInjection}
}

// WaterTypes returns the water options offered for dry syrups.
func WaterTypes() []string {
	return []string{"With Water", "Without Water"}
}

// copyOptions shields the catalog tables from caller mutation.
func copyOptions(opts []string) []string {
	if len(opts) == 0 {
		return nil
	}
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}
