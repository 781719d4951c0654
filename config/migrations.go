package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/pharmapack/quotebuilder/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.CompanySettings{},
					&models.Quotation{}, &models.QuotationApproval{})
			},
		},
		{
			ID: "20250902_add_quotation_status_index",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_quotations_status_created_at ON quotations (status, created_at DESC)").Error
			},
		},
	})

	return m.Migrate()
}
