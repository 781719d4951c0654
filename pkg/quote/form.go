package quote

// Form is the whole quotation as the user edits it: header fields, commercial
// aggregates, the item collection and the free-text blocks seeded from
// company settings.
type Form struct {
	PartyName     string `json:"partyName"`
	MarketedBy    string `json:"marketedBy"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`

	DiscountPercent  float64 `json:"discountPercent"`
	TaxPercent       float64 `json:"taxPercent"`
	CylinderCharges  float64 `json:"cylinderCharges"`
	InventoryCharges float64 `json:"inventoryCharges"`

	Items *Collection `json:"-"`

	Terms       string `json:"terms"`
	BankDetails string `json:"bankDetails"`
}

// Settings carries the organisation-wide defaults fetched once at form
// creation. Empty fields are "not provided" and leave the form untouched.
type Settings struct {
	Terms        string `json:"terms"`
	BankDetails  string `json:"bankDetails"`
	CompanyPhone string `json:"companyPhone"`
	CompanyEmail string `json:"companyEmail"`
	InvoiceLabel string `json:"invoiceLabel"`
}

// NewForm returns a form with process defaults and a single blank item.
func NewForm() *Form {
	return &Form{Items: NewCollection(1)}
}

// ApplySettings patches only the keys the settings provide. The fetch that
// produces the settings resolves after the form is already editable, so
// nothing else on the form may be disturbed.
func (f *Form) ApplySettings(s Settings) {
	if s.Terms != "" {
		f.Terms = s.Terms
	}
	if s.BankDetails != "" {
		f.BankDetails = s.BankDetails
	}
}
