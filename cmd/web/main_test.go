package main

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/myrjola/unbroken/internal/e2etest"
	"github.com/myrjola/unbroken/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "UNBROKEN_SQLITE_URL":
		return ":memory:", true
	case "UNBROKEN_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(t.Context(), testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	t.Cleanup(server.Shutdown)
	return server
}

// startSeededServer boots against a file-backed database whose snapshot
// partitions are pre-populated so that a test can start mid-plan.
func startSeededServer(t *testing.T, seeds map[string]string) *e2etest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "unbroken.sqlite3")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open seed database: %v", err)
	}
	if _, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			partition  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`); err != nil {
		t.Fatalf("create snapshots table: %v", err)
	}
	for partition, payload := range seeds {
		if _, err = db.Exec(`
			INSERT INTO snapshots (partition, payload, updated_at)
			VALUES (?, ?, '2025-01-01T00:00:00.000Z')`, partition, payload); err != nil {
			t.Fatalf("seed snapshot %s: %v", partition, err)
		}
	}
	if err = db.Close(); err != nil {
		t.Fatalf("close seed database: %v", err)
	}

	lookupEnv := func(key string) (string, bool) {
		if key == "UNBROKEN_SQLITE_URL" {
			return dbPath, true
		}
		return testLookupEnv(key)
	}
	server, err := e2etest.StartServer(t.Context(), testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("start seeded server: %v", err)
	}
	t.Cleanup(server.Shutdown)
	return server
}

// assertStatus fails the test when got differs from want.
func assertStatus(t *testing.T, got, want int, urlPath string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got status %d, want %d", urlPath, got, want)
	}
}

// errorResponse is the body shape of client errors.
type errorResponse struct {
	Error string `json:"error"`
}
