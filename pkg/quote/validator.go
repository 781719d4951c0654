package quote

import (
	"regexp"
	"strings"

	"github.com/pharmapack/quotebuilder/pkg/catalog"
)

// Result is the outcome of whole-form validation: a field-name to message
// map. Item failures aggregate under the single "items" key.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 \-]{8,13}[0-9]$`)
)

// Validate checks the whole form for submission. Every rule runs; the full
// error set is always computed. The function is stateless and re-entrant.
func Validate(f *Form) Result {
	errs := map[string]string{}

	if strings.TrimSpace(f.PartyName) == "" {
		errs["partyName"] = "party name is required"
	}
	if strings.TrimSpace(f.MarketedBy) == "" {
		errs["marketedBy"] = "marketed by is required"
	}

	email := strings.TrimSpace(f.ClientEmail)
	if email == "" {
		errs["clientEmail"] = "client email is required"
	} else if !emailRe.MatchString(email) {
		errs["clientEmail"] = "client email is not a valid email address"
	}

	phone := strings.TrimSpace(f.ClientPhone)
	if phone != "" && !phoneRe.MatchString(phone) {
		errs["clientPhone"] = "client phone must be 10-15 digits, spaces or hyphens"
	}

	if msg := validateItems(f.Items.Items()); msg != "" {
		errs["items"] = msg
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// validateItems runs the per-item completeness sweep and reduces it to one
// aggregate message. Callers needing per-item detail re-derive it themselves.
func validateItems(items []Item) string {
	for _, it := range items {
		if !itemComplete(it) {
			return "one or more items are incomplete: brand name, composition, quantity, rate, MRP and packaging are required, and packing where applicable"
		}
	}
	return ""
}

func itemComplete(it Item) bool {
	if strings.TrimSpace(it.BrandName) == "" {
		return false
	}
	if strings.TrimSpace(it.Composition) == "" {
		return false
	}
	if it.Quantity <= 0 || it.Rate <= 0 || it.MRP <= 0 {
		return false
	}
	if strings.TrimSpace(it.PackagingType) == "" {
		return false
	}
	if catalog.RequiresPacking(it.FormulationType) && strings.TrimSpace(it.Packing) == "" {
		return false
	}
	return true
}
