package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pharmapack/quotebuilder/models"
)

type approvalReq struct {
	Comment string `json:"comment"`
}

// ApproveQuotation handles POST /quotations/{id}/approve (admin).
func (s *QuotationService) ApproveQuotation(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.StatusApproved, "approve")
}

// RejectQuotation handles POST /quotations/{id}/reject (admin).
func (s *QuotationService) RejectQuotation(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.StatusRejected, "reject")
}

// ReopenQuotation handles POST /quotations/{id}/reopen: a rejected quotation
// goes back to draft for rework.
func (s *QuotationService) ReopenQuotation(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, models.StatusDraft, "reopen")
}

func (s *QuotationService) transition(w http.ResponseWriter, r *http.Request, to, action string) {
	q, ok := s.load(w, r)
	if !ok {
		return
	}
	if !models.CanTransition(q.Status, to) {
		http.Error(w, "cannot "+action+" a quotation in status "+q.Status, http.StatusConflict)
		return
	}

	var req approvalReq
	json.NewDecoder(r.Body).Decode(&req)

	fromStatus := q.Status
	q.Status = to
	if err := s.db.Save(&q).Error; err != nil {
		http.Error(w, "failed to update quotation", http.StatusInternalServerError)
		return
	}
	s.recordTransition(r, &q, fromStatus, action, req.Comment)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(q)
}

// GetApprovalHistory handles GET /quotations/{id}/approvals: the ordered
// timeline the history view renders.
func (s *QuotationService) GetApprovalHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var entries []models.QuotationApproval
	if err := s.db.Where("quotation_id = ?", id).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		http.Error(w, "failed to fetch approval history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"approvals": entries,
		"count":     len(entries),
	})
}
