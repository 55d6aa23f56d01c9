// Package psqltest opens migrated in-memory SQLite databases for tests.
package psqltest

import (
	"aiwallet/aiwallet/sources/psql"
	"context"
	"database/sql"
	"testing"

	"gorm.io/driver/sqlite"
)

// NewDatabase returns a fresh migrated database. The pool is pinned to one
// connection because every SQLite :memory: connection is its own database.
func NewDatabase(t testing.TB) *psql.Database {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := psql.Open(context.Background(), &sqlite.Dialector{Conn: sqlDB})
	if err != nil {
		sqlDB.Close()
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}
