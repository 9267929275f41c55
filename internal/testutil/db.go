// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"ecommerce-platform/internal/client"
	"ecommerce-platform/internal/config"

	"gorm.io/gorm"
)

// NewDB opens a migrated SQLite database in a per-test temp directory.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := client.InitDBClient(config.Database{
		Driver:       "sqlite",
		URL:          filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("init test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
