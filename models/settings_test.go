package models

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGetCompanySettings(t *testing.T) {
	db, mock := newMockDB(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "terms", "bank_details", "company_phone", "company_email",
		"invoice_label", "notify_emails", "created_at", "updated_at",
	}).AddRow(
		id, "50% advance with order", "HDFC0001234", "+91 98765 00000",
		"sales@pharmapack.example", "Quotation",
		"{sales@pharmapack.example}", now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM "company_settings"`).WillReturnRows(rows)

	got, err := GetCompanySettings(db)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "50% advance with order", got.Terms)
	assert.Equal(t, "Quotation", got.InvoiceLabel)
	assert.Equal(t, []string{"sales@pharmapack.example"}, []string(got.NotifyEmails))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompanySettingsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "company_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := GetCompanySettings(db)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
