package app

import (
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"puzshelf/internal/db"
)

// SetupTestService is a helper for integration tests that need a real DB and Service.
func SetupTestService(t *testing.T) (*Service, *db.Queries, *sql.DB) {
	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// Each pooled connection would get its own empty in-memory database.
	dbConn.SetMaxOpenConns(1)

	goose.SetDialect("sqlite3")
	// Try standard relative paths for migrations
	err = goose.Up(dbConn, "../../sql/schema")
	if err != nil {
		err = goose.Up(dbConn, "../sql/schema")
		if err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	queries := db.New(dbConn)
	service := NewService(queries, dbConn)

	t.Cleanup(func() {
		service.Shutdown()
		dbConn.Close()
	})

	return service, queries, dbConn
}
