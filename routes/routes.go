package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pharmapack/quotebuilder/config"
	_ "github.com/pharmapack/quotebuilder/docs"
	"github.com/pharmapack/quotebuilder/handlers"
	"github.com/pharmapack/quotebuilder/middleware"
	"github.com/pharmapack/quotebuilder/models"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	settings := handlers.NewSettingsService(config.DB)
	quotations := handlers.NewQuotationService(config.DB, settings)

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/profile", handlers.GetCurrentUser).Methods("GET")

	// Formulation option catalog
	api.HandleFunc("/catalog/formulations", handlers.GetFormulations).Methods("GET")
	api.HandleFunc("/catalog/formulations/{type}", handlers.GetFormulationOptions).Methods("GET")

	// Company settings
	api.HandleFunc("/settings", settings.GetSettings).Methods("GET")

	// Quotations
	api.HandleFunc("/quotations", quotations.GetQuotations).Methods("GET")
	api.HandleFunc("/quotations", quotations.CreateQuotation).Methods("POST")
	api.HandleFunc("/quotations/items/resolve", quotations.ResolveItemField).Methods("POST")
	api.HandleFunc("/quotations/{id}", quotations.GetQuotation).Methods("GET")
	api.HandleFunc("/quotations/{id}", quotations.UpdateQuotation).Methods("PUT")
	api.HandleFunc("/quotations/{id}", quotations.DeleteQuotation).Methods("DELETE")
	api.HandleFunc("/quotations/{id}/submit", quotations.SubmitQuotation).Methods("POST")
	api.HandleFunc("/quotations/{id}/approvals", quotations.GetApprovalHistory).Methods("GET")
	api.HandleFunc("/quotations/{id}/export/excel", quotations.ExportQuotationToExcel).Methods("GET")
	api.HandleFunc("/quotations/{id}/export/csv", quotations.ExportQuotationToCSV).Methods("GET")

	// =====================================================
	// Admin Routes (require admin role)
	// =====================================================
	adminOnly := []string{models.RoleAdmin}
	api.Handle("/quotations/{id}/approve",
		middleware.RequireRole(adminOnly, http.HandlerFunc(quotations.ApproveQuotation))).Methods("POST")
	api.Handle("/quotations/{id}/reject",
		middleware.RequireRole(adminOnly, http.HandlerFunc(quotations.RejectQuotation))).Methods("POST")
	api.Handle("/quotations/{id}/reopen",
		middleware.RequireRole(adminOnly, http.HandlerFunc(quotations.ReopenQuotation))).Methods("POST")
	api.Handle("/admin/settings",
		middleware.RequireRole(adminOnly, http.HandlerFunc(settings.UpdateSettings))).Methods("PUT")

	return r
}
