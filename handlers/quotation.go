package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/pharmapack/quotebuilder/middleware"
	"github.com/pharmapack/quotebuilder/models"
	"github.com/pharmapack/quotebuilder/pkg/quote"
)

// QuotationService owns the quotation endpoints. Drafts are seeded from the
// settings service; submission runs the form validator before anything is
// persisted.
type QuotationService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewQuotationService(db *gorm.DB, settings *SettingsService) *QuotationService {
	return &QuotationService{db: db, settings: settings}
}

// quotationPayload is the request body for draft create/update.
type quotationPayload struct {
	PartyName     string `json:"partyName"`
	MarketedBy    string `json:"marketedBy"`
	ClientEmail   string `json:"clientEmail"`
	ClientPhone   string `json:"clientPhone"`
	ClientAddress string `json:"clientAddress"`

	DiscountPercent  float64 `json:"discountPercent"`
	TaxPercent       float64 `json:"taxPercent"`
	CylinderCharges  float64 `json:"cylinderCharges"`
	InventoryCharges float64 `json:"inventoryCharges"`

	Items []quote.Item `json:"items"`

	Terms       string           `json:"terms"`
	BankDetails string           `json:"bankDetails"`
	ValidUntil  *models.JSONTime `json:"validUntil,omitempty"`
}

// CreateQuotation handles POST /quotations. The draft starts from process
// defaults, is overlaid with company settings, then with whatever the payload
// provides. A failing settings fetch never blocks creation.
func (s *QuotationService) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var payload quotationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	form := quote.NewForm()
	form.ApplySettings(s.settings.QuoteDefaults())
	applyPayload(form, payload)

	number, err := s.nextQuotationNumber()
	if err != nil {
		http.Error(w, "failed to allocate quotation number", http.StatusInternalServerError)
		return
	}

	q := models.Quotation{
		QuotationNumber:  number,
		PartyName:        form.PartyName,
		MarketedBy:       form.MarketedBy,
		ClientEmail:      form.ClientEmail,
		ClientPhone:      form.ClientPhone,
		ClientAddress:    form.ClientAddress,
		DiscountPercent:  form.DiscountPercent,
		TaxPercent:       form.TaxPercent,
		CylinderCharges:  form.CylinderCharges,
		InventoryCharges: form.InventoryCharges,
		Terms:            form.Terms,
		BankDetails:      form.BankDetails,
		Status:           models.StatusDraft,
		ValidUntil:       payload.ValidUntil,
		CreatorName:      middleware.GetUserName(r),
	}
	if id, err := uuid.Parse(middleware.GetUserID(r)); err == nil {
		q.CreatedBy = id
	}
	if err := q.SetItems(form.Items.Items()); err != nil {
		http.Error(w, "failed to encode items", http.StatusInternalServerError)
		return
	}

	if err := s.db.Create(&q).Error; err != nil {
		http.Error(w, "failed to create quotation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(q)
}

// GetQuotations handles GET /quotations with optional status, from and to
// date filters.
func (s *QuotationService) GetQuotations(w http.ResponseWriter, r *http.Request) {
	query := s.db.Model(&models.Quotation{}).Order("created_at DESC")

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := r.URL.Query().Get("from"); from != "" {
		query = query.Where("created_at >= ?", from)
	}
	if to := r.URL.Query().Get("to"); to != "" {
		query = query.Where("created_at <= ?", to)
	}

	var quotations []models.Quotation
	if err := query.Find(&quotations).Error; err != nil {
		http.Error(w, "failed to fetch quotations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"quotations": quotations,
		"count":      len(quotations),
	})
}

// GetQuotation handles GET /quotations/{id}
func (s *QuotationService) GetQuotation(w http.ResponseWriter, r *http.Request) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

// UpdateQuotation handles PUT /quotations/{id}. Only drafts may be edited.
// Item payloads are routed through the resolver so dependent fields stay
// consistent no matter what the client sends.
func (s *QuotationService) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	if q.Status != models.StatusDraft {
		http.Error(w, "only draft quotations can be edited", http.StatusConflict)
		return
	}

	var payload quotationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	form := quote.NewForm()
	applyPayload(form, payload)

	q.PartyName = form.PartyName
	q.MarketedBy = form.MarketedBy
	q.ClientEmail = form.ClientEmail
	q.ClientPhone = form.ClientPhone
	q.ClientAddress = form.ClientAddress
	q.DiscountPercent = form.DiscountPercent
	q.TaxPercent = form.TaxPercent
	q.CylinderCharges = form.CylinderCharges
	q.InventoryCharges = form.InventoryCharges
	q.Terms = form.Terms
	q.BankDetails = form.BankDetails
	q.ValidUntil = payload.ValidUntil
	if err := q.SetItems(form.Items.Items()); err != nil {
		http.Error(w, "failed to encode items", http.StatusInternalServerError)
		return
	}

	if err := s.db.Save(&q).Error; err != nil {
		http.Error(w, "failed to update quotation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

// DeleteQuotation handles DELETE /quotations/{id}
func (s *QuotationService) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := s.db.Where("id = ?", id).Delete(&models.Quotation{})
	if result.Error != nil {
		http.Error(w, "failed to delete quotation", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitQuotation handles POST /quotations/{id}/submit: runs the whole-form
// validation, freezes the totals and moves the draft to pending. A failing
// validation returns the full field error map.
func (s *QuotationService) SubmitQuotation(w http.ResponseWriter, r *http.Request) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	if !models.CanTransition(q.Status, models.StatusPending) {
		http.Error(w, "quotation cannot be submitted from status "+q.Status, http.StatusConflict)
		return
	}

	form, err := formFromRecord(&q)
	if err != nil {
		http.Error(w, "stored items are corrupt", http.StatusInternalServerError)
		return
	}

	result := quote.Validate(form)
	if !result.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(result)
		return
	}

	totals := quote.ComputeTotals(form.Items.Items(), quote.Charges{
		DiscountPercent:  form.DiscountPercent,
		TaxPercent:       form.TaxPercent,
		CylinderCharges:  form.CylinderCharges,
		InventoryCharges: form.InventoryCharges,
	})
	now := models.JSONTime(time.Now())

	fromStatus := q.Status
	q.Status = models.StatusPending
	q.SubmittedAt = &now
	q.Subtotal = totals.Subtotal
	q.TotalTax = totals.TotalTax
	q.Total = totals.Total
	q.AdvancePayment = totals.AdvancePayment

	if err := s.db.Save(&q).Error; err != nil {
		http.Error(w, "failed to submit quotation", http.StatusInternalServerError)
		return
	}
	s.recordTransition(r, &q, fromStatus, "submit", "")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"quotation": q,
		"totals":    totals,
		"flags":     quote.ComputeFlags(form.Items.Items()),
	})
}

// resolveItemReq is the body for POST /quotations/items/resolve.
type resolveItemReq struct {
	Item  quote.Item `json:"item"`
	Field string     `json:"field"`
	Value string     `json:"value"`
}

// ResolveItemField applies one field edit through the dependency resolver and
// returns the reconciled item. Clients use this to keep server and UI rules
// identical.
func (s *QuotationService) ResolveItemField(w http.ResponseWriter, r *http.Request) {
	var req resolveItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resolved := quote.UpdateField(req.Item, req.Field, req.Value)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resolved)
}

// load fetches the quotation in the URL, writing the error response itself.
func (s *QuotationService) load(w http.ResponseWriter, r *http.Request) (models.Quotation, bool) {
	id := mux.Vars(r)["id"]
	var q models.Quotation
	if err := s.db.Where("id = ?", id).First(&q).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return q, false
	}
	return q, true
}

// recordTransition appends an approval-history entry for a status change.
func (s *QuotationService) recordTransition(r *http.Request, q *models.Quotation, fromStatus, action, comment string) {
	entry := models.QuotationApproval{
		QuotationID: q.ID,
		FromStatus:  fromStatus,
		ToStatus:    q.Status,
		Action:      action,
		ActorName:   middleware.GetUserName(r),
		Comment:     comment,
	}
	if id, err := uuid.Parse(middleware.GetUserID(r)); err == nil {
		entry.ActorID = id
	}
	if err := s.db.Create(&entry).Error; err != nil {
		// History must never block the transition itself.
		fmt.Println("Error recording approval history:", err)
	}
}

// nextQuotationNumber allocates the next display number, per day.
func (s *QuotationService) nextQuotationNumber() (string, error) {
	day := time.Now().Format("20060102")
	var count int64
	if err := s.db.Model(&models.Quotation{}).Unscoped().
		Where("quotation_number LIKE ?", "QT-"+day+"-%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("QT-%s-%04d", day, count+1), nil
}

// applyPayload overlays the payload onto the form. Header fields go through
// the form directly; items go through the collection so the resolver-backed
// invariants hold even for snapshots sent wholesale.
func applyPayload(form *quote.Form, payload quotationPayload) {
	form.PartyName = payload.PartyName
	form.MarketedBy = payload.MarketedBy
	form.ClientEmail = payload.ClientEmail
	form.ClientPhone = payload.ClientPhone
	form.ClientAddress = payload.ClientAddress
	form.DiscountPercent = payload.DiscountPercent
	form.TaxPercent = payload.TaxPercent
	form.CylinderCharges = payload.CylinderCharges
	form.InventoryCharges = payload.InventoryCharges
	if payload.Terms != "" {
		form.Terms = payload.Terms
	}
	if payload.BankDetails != "" {
		form.BankDetails = payload.BankDetails
	}
	if len(payload.Items) > 0 {
		items := make([]quote.Item, len(payload.Items))
		for i, it := range payload.Items {
			items[i] = normalizeItem(it)
		}
		form.Items.SetItems(items)
	}
}

// normalizeItem enforces the dependency invariants on a wholesale snapshot
// and assigns an identity if the client sent none.
func normalizeItem(it quote.Item) quote.Item {
	out := quote.Normalize(it)
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	return out
}

// formFromRecord rebuilds the editable form from a stored quotation.
func formFromRecord(q *models.Quotation) (*quote.Form, error) {
	items, err := q.ItemList()
	if err != nil {
		return nil, err
	}
	form := quote.NewForm()
	form.PartyName = q.PartyName
	form.MarketedBy = q.MarketedBy
	form.ClientEmail = q.ClientEmail
	form.ClientPhone = q.ClientPhone
	form.ClientAddress = q.ClientAddress
	form.DiscountPercent = q.DiscountPercent
	form.TaxPercent = q.TaxPercent
	form.CylinderCharges = q.CylinderCharges
	form.InventoryCharges = q.InventoryCharges
	form.Terms = q.Terms
	form.BankDetails = q.BankDetails
	if len(items) > 0 {
		form.Items.SetItems(items)
	}
	return form, nil
}
