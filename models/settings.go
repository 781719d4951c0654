package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CompanySettings is the organisation-wide defaults row seeded at startup.
// There is exactly one active row; new quotations copy its terms and bank
// details.
type CompanySettings struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Terms        string         `gorm:"type:text" json:"terms"`
	BankDetails  string         `gorm:"type:text" json:"bankDetails"`
	CompanyPhone string         `gorm:"size:20" json:"companyPhone"`
	CompanyEmail string         `gorm:"size:120" json:"companyEmail"`
	InvoiceLabel string         `gorm:"size:100" json:"invoiceLabel"`
	NotifyEmails pq.StringArray `gorm:"type:text[]" json:"notifyEmails"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName pins the singleton row table.
func (CompanySettings) TableName() string {
	return "company_settings"
}

// GetCompanySettings loads the settings row, oldest first so the seeded row
// wins if duplicates ever appear.
func GetCompanySettings(db *gorm.DB) (*CompanySettings, error) {
	var s CompanySettings
	if err := db.Order("created_at ASC").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
