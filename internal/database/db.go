package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lalindra-code/clearBillCopy/internal/model"
)

// NewConnection opens the GORM connection pool and migrates the two
// aggregates. TranslateError is on so unique-index violations surface
// as gorm.ErrDuplicatedKey — duplicate emails and invoice numbers are
// detected there, not by client-side sequencing.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Invoice{},
		&model.InvoiceItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
