package sqlite_test

import (
	"testing"

	"github.com/myrjola/unbroken/internal/sqlite"
	"github.com/myrjola/unbroken/internal/testhelpers"
)

func TestNewDatabase_AppliesSchema(t *testing.T) {
	ctx := t.Context()
	db, err := sqlite.NewDatabase(ctx, ":memory:", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	if err != nil {
		t.Fatalf("create database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	for _, table := range []string{"snapshots", "sessions"} {
		var name string
		err = db.ReadOnly.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestSnapshotUpsert(t *testing.T) {
	ctx := t.Context()
	db, err := sqlite.NewDatabase(ctx, ":memory:", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	if err != nil {
		t.Fatalf("create database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	upsert := `
		INSERT INTO snapshots (partition, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (partition) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`
	if _, err = db.ReadWrite.ExecContext(ctx, upsert, "workoutState", `{"currentWeek":1}`, "2025-01-01T00:00:00.000Z"); err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}
	if _, err = db.ReadWrite.ExecContext(ctx, upsert, "workoutState", `{"currentWeek":2}`, "2025-01-02T00:00:00.000Z"); err != nil {
		t.Fatalf("update snapshot: %v", err)
	}

	var payload string
	err = db.ReadOnly.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE partition = ?", "workoutState").Scan(&payload)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if payload != `{"currentWeek":2}` {
		t.Errorf("payload = %s, want the updated document", payload)
	}
	var count int
	if err = db.ReadOnly.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}
