package quote

import (
	"testing"

	"github.com/pharmapack/quotebuilder/pkg/catalog"
)

// completeForm returns a form that passes validation.
func completeForm() *Form {
	f := NewForm()
	f.PartyName = "Medilife Distributors"
	f.MarketedBy = "PharmaPack Labs"
	f.ClientEmail = "orders@medilife.example"
	f.ClientPhone = "+91 98765 43210"

	f.Items.Update(0, FieldFormulationType, "Tablet")
	f.Items.Update(0, FieldBrandName, "Calcirol")
	f.Items.Update(0, FieldComposition, "Calcium Carbonate 500mg")
	f.Items.Update(0, FieldPacking, "10x10")
	f.Items.Update(0, FieldPackagingType, "Alu Alu")
	f.Items.Update(0, FieldQuantity, "1000")
	f.Items.Update(0, FieldRate, "12.50")
	f.Items.Update(0, FieldMRP, "45")
	return f
}

func TestValidateCompleteFormPasses(t *testing.T) {
	result := Validate(completeForm())
	if !result.Valid {
		t.Fatalf("complete form failed validation: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Errorf("valid form carries errors: %v", result.Errors)
	}
}

func TestValidateHeaderFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(f *Form)
		errField string
	}{
		{"missing party name", func(f *Form) { f.PartyName = "" }, "partyName"},
		{"whitespace party name", func(f *Form) { f.PartyName = "   " }, "partyName"},
		{"missing marketed by", func(f *Form) { f.MarketedBy = "" }, "marketedBy"},
		{"missing email", func(f *Form) { f.ClientEmail = "" }, "clientEmail"},
		{"email without tld", func(f *Form) { f.ClientEmail = "a@b" }, "clientEmail"},
		{"phone too short", func(f *Form) { f.ClientPhone = "12345" }, "clientPhone"},
		{"phone with letters", func(f *Form) { f.ClientPhone = "98765xyz43210" }, "clientPhone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeForm()
			tt.mutate(f)
			result := Validate(f)
			if result.Valid {
				t.Fatal("expected form to fail validation")
			}
			if _, ok := result.Errors[tt.errField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.errField, result.Errors)
			}
		})
	}
}

func TestValidateAcceptsValidVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Form)
	}{
		{"email with subdomain", func(f *Form) { f.ClientEmail = "a@mail.b.com" }},
		{"phone empty is optional", func(f *Form) { f.ClientPhone = "" }},
		{"phone with hyphens", func(f *Form) { f.ClientPhone = "98765-43210" }},
		{"plain ten digit phone", func(f *Form) { f.ClientPhone = "9876543210" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeForm()
			tt.mutate(f)
			if result := Validate(f); !result.Valid {
				t.Errorf("expected valid form, got errors %v", result.Errors)
			}
		})
	}
}

func TestValidateComputesFullErrorSet(t *testing.T) {
	f := NewForm()
	result := Validate(f)
	if result.Valid {
		t.Fatal("blank form validated")
	}
	for _, field := range []string{"partyName", "marketedBy", "clientEmail", "items"} {
		if _, ok := result.Errors[field]; !ok {
			t.Errorf("expected error on %q, got %v", field, result.Errors)
		}
	}
}

func TestValidateItemCompleteness(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Form)
	}{
		{"missing brand", func(f *Form) { f.Items.Update(0, FieldBrandName, "") }},
		{"missing composition", func(f *Form) { f.Items.Update(0, FieldComposition, "") }},
		{"zero rate", func(f *Form) { f.Items.Update(0, FieldRate, "0") }},
		{"zero mrp", func(f *Form) { f.Items.Update(0, FieldMRP, "") }},
		{"missing packaging", func(f *Form) { f.Items.Update(0, FieldPackagingType, "") }},
		{"missing packing for tablet", func(f *Form) { f.Items.Update(0, FieldPacking, "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeForm()
			tt.mutate(f)
			result := Validate(f)
			if result.Valid {
				t.Fatal("expected items error")
			}
			if _, ok := result.Errors["items"]; !ok {
				t.Errorf("expected aggregate items error, got %v", result.Errors)
			}
		})
	}
}

func TestValidateAnyIncompleteItemFailsTheQuote(t *testing.T) {
	f := completeForm()
	f.Items.Add() // fresh blank item
	result := Validate(f)
	if result.Valid {
		t.Fatal("quote with one blank item validated")
	}
	if _, ok := result.Errors["items"]; !ok {
		t.Errorf("expected items error, got %v", result.Errors)
	}
}

// The end-to-end property: a Tablet with no packing fails; switching the same
// item to Injection via the resolver makes the packing requirement vanish.
func TestPackingRequirementFollowsFormulation(t *testing.T) {
	f := completeForm()
	f.Items.Update(0, FieldPacking, "")

	result := Validate(f)
	if result.Valid {
		t.Fatal("Tablet without packing validated")
	}
	if _, ok := result.Errors["items"]; !ok {
		t.Fatalf("expected items error, got %v", result.Errors)
	}

	f.Items.Update(0, FieldFormulationType, catalog.Injection)
	// The formulation change cleared packaging too; restore the rest of the
	// item's completeness.
	f.Items.Update(0, FieldPackagingType, "Vial")

	result = Validate(f)
	if !result.Valid {
		t.Errorf("Injection without packing failed validation: %v", result.Errors)
	}
}

func TestValidateIsReentrant(t *testing.T) {
	f := completeForm()
	f.PartyName = ""
	first := Validate(f)
	second := Validate(f)
	if first.Valid != second.Valid || len(first.Errors) != len(second.Errors) {
		t.Errorf("repeated validation diverged: %v vs %v", first, second)
	}
}

func TestApplySettingsPatchesOnlyProvidedKeys(t *testing.T) {
	f := NewForm()
	f.PartyName = "typed before fetch resolved"
	f.Terms = "user terms"

	f.ApplySettings(Settings{BankDetails: "seeded bank details"})

	if f.PartyName != "typed before fetch resolved" {
		t.Error("settings application disturbed an edited field")
	}
	if f.Terms != "user terms" {
		t.Error("settings without terms overwrote the terms field")
	}
	if f.BankDetails != "seeded bank details" {
		t.Errorf("bank details not seeded: %q", f.BankDetails)
	}
}
