package db

import (
	"uparjan/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
)

// Open connects to the SQLite database file at the given path.
// TranslateError maps driver constraint violations onto GORM's sentinel
// errors so handlers can tell a duplicate key from a storage failure.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
}

// Migrate creates the users and transactions tables if absent; it is
// idempotent and safe to run on every start.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing constraints, columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Transaction{})
}

// MigrateFile opens the database at path and runs the migration, exiting on failure
func MigrateFile(path string) {
	db, err := Open(path) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
