package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/pharmapack/quotebuilder/models"
	"github.com/pharmapack/quotebuilder/pkg/cache"
	"github.com/pharmapack/quotebuilder/pkg/quote"
)

const settingsCacheKey = "company_settings"

// SettingsService serves the organisation-wide defaults behind a short TTL
// cache so every draft creation does not hit the database.
type SettingsService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{
		db:    db,
		cache: cache.New(5*time.Minute, nil),
	}
}

// Fetch returns the current settings, from cache when fresh.
func (s *SettingsService) Fetch() (*models.CompanySettings, error) {
	if v, ok := s.cache.Get(settingsCacheKey); ok {
		return v.(*models.CompanySettings), nil
	}
	settings, err := models.GetCompanySettings(s.db)
	if err != nil {
		return nil, err
	}
	s.cache.Set(settingsCacheKey, settings)
	return settings, nil
}

// QuoteDefaults maps the settings row onto the form-seeding shape. A missing
// settings row is not an error for callers: they get zero values and the
// quotation proceeds with built-in defaults.
func (s *SettingsService) QuoteDefaults() quote.Settings {
	settings, err := s.Fetch()
	if err != nil {
		log.Printf("settings fetch failed, using built-in defaults: %v", err)
		return quote.Settings{}
	}
	return quote.Settings{
		Terms:        settings.Terms,
		BankDetails:  settings.BankDetails,
		CompanyPhone: settings.CompanyPhone,
		CompanyEmail: settings.CompanyEmail,
		InvoiceLabel: settings.InvoiceLabel,
	}
}

// GetSettings handles GET /settings
func (s *SettingsService) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Fetch()
	if err != nil {
		http.Error(w, "settings not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// UpdateSettings handles PUT /admin/settings
func (s *SettingsService) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := models.GetCompanySettings(s.db)
	if err != nil {
		http.Error(w, "settings not found", http.StatusNotFound)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := s.db.Save(settings).Error; err != nil {
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}
	s.cache.Invalidate(settingsCacheKey)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
