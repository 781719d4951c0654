package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pharmapack/quotebuilder/models"
)

// RunAllSeeding runs all seeding operations in the correct order
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	log.Println("[1/2] Seeding Company Settings...")
	SeedCompanySettings()

	log.Println("[2/2] Seeding Default Admin...")
	SeedAdminUser()

	log.Println("=== Database Seeding Complete ===")
	return nil
}

// SeedCompanySettings creates the settings row new quotations copy their
// terms and bank details from. Skips if a row already exists.
func SeedCompanySettings() {
	var existing models.CompanySettings
	err := DB.First(&existing).Error
	if err == nil {
		log.Println("Company settings already seeded, skipping")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: could not check company settings: %v", err)
		return
	}

	settings := models.CompanySettings{
		Terms: "1. Prices are ex-works and exclusive of freight.\n" +
			"2. Delivery within 30-45 days of confirmed order.\n" +
			"3. 50% advance with order, balance against proforma invoice.\n" +
			"4. Quotation valid for 30 days from date of issue.",
		BankDetails:  "Account Name: PharmaPack Labs Pvt Ltd\nAccount No: 50200012345678\nIFSC: HDFC0001234\nBranch: Industrial Area Phase II",
		CompanyPhone: "+91 98765 00000",
		CompanyEmail: "sales@pharmapack.example",
		InvoiceLabel: "Quotation",
		NotifyEmails: []string{"sales@pharmapack.example"},
	}
	if err := DB.Create(&settings).Error; err != nil {
		log.Printf("Warning: failed to seed company settings: %v", err)
		return
	}
	log.Println("Seeded company settings")
}

// SeedAdminUser creates the bootstrap admin from ADMIN_EMAIL/ADMIN_PASSWORD.
// Skips when the user exists or the env vars are absent.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seeding")
		return
	}

	var existing models.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already seeded, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: could not hash admin password: %v", err)
		return
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user", email)
}
