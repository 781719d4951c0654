package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pharmapack/quotebuilder/pkg/quote"
)

// Quotation workflow statuses.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Quotation is one sales quotation: the header the client sees, the
// commercial aggregates, and the line items stored as a JSONB snapshot.
type Quotation struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuotationNumber string    `gorm:"size:50;uniqueIndex;not null" json:"quotationNumber"`

	PartyName     string `gorm:"not null" json:"partyName"`
	MarketedBy    string `gorm:"not null" json:"marketedBy"`
	ClientEmail   string `gorm:"size:120" json:"clientEmail"`
	ClientPhone   string `gorm:"size:20" json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`

	DiscountPercent  float64 `gorm:"default:0" json:"discountPercent"`
	TaxPercent       float64 `gorm:"default:0" json:"taxPercent"`
	CylinderCharges  float64 `gorm:"default:0" json:"cylinderCharges"`
	InventoryCharges float64 `gorm:"default:0" json:"inventoryCharges"`

	Items datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"items"`

	Terms       string `gorm:"type:text" json:"terms"`
	BankDetails string `gorm:"type:text" json:"bankDetails"`

	// Aggregates frozen at submission time.
	Subtotal       float64 `gorm:"default:0" json:"subtotal"`
	TotalTax       float64 `gorm:"default:0" json:"totalTax"`
	Total          float64 `gorm:"default:0" json:"total"`
	AdvancePayment float64 `gorm:"default:0" json:"advancePayment"`

	Status      string    `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ValidUntil  *JSONTime `json:"validUntil,omitempty"`
	SubmittedAt *JSONTime `json:"submittedAt,omitempty"`

	CreatedBy   uuid.UUID `gorm:"type:uuid;index" json:"createdBy"`
	CreatorName string    `gorm:"size:100" json:"creatorName,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Approvals []QuotationApproval `gorm:"foreignKey:QuotationID" json:"approvals,omitempty"`
}

// SetItems stores the line items as the JSONB snapshot.
func (q *Quotation) SetItems(items []quote.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	q.Items = datatypes.JSON(raw)
	return nil
}

// ItemList decodes the JSONB snapshot back into line items.
func (q *Quotation) ItemList() ([]quote.Item, error) {
	if len(q.Items) == 0 {
		return nil, nil
	}
	var items []quote.Item
	if err := json.Unmarshal(q.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// QuotationApproval is one entry in a quotation's approval timeline.
type QuotationApproval struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuotationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotationId"`
	FromStatus  string         `gorm:"size:20;not null" json:"fromStatus"`
	ToStatus    string         `gorm:"size:20;not null" json:"toStatus"`
	Action      string         `gorm:"size:20;not null" json:"action"` // submit, approve, reject
	ActorID     uuid.UUID      `gorm:"type:uuid;not null" json:"actorId"`
	ActorName   string         `gorm:"size:100" json:"actorName"`
	Comment     string         `gorm:"type:text" json:"comment,omitempty"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName keeps the approval history in its own table.
func (QuotationApproval) TableName() string {
	return "quotation_approvals"
}

// CanTransition reports whether a quotation in from may move to to. The
// status machine is draft -> pending -> approved|rejected, with rejected
// quotations reopenable as drafts.
func CanTransition(from, to string) bool {
	switch from {
	case StatusDraft:
		return to == StatusPending
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusRejected:
		return to == StatusDraft
	default:
		return false
	}
}
