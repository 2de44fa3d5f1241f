package workout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/myrjola/unbroken/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// Partition keys of the snapshot table. Each partition holds one JSON
// document and is written whole, so unrelated concerns never contend.
const (
	partitionWorkoutState      = "workoutState"
	partitionTrainingPlanState = "trainingPlanState"
	partitionExerciseState     = "exerciseState"
	partitionPreferencesState  = "preferencesState"
)

// baseRepository provides snapshot load and save over the shared table.
type baseRepository struct {
	db *sqlite.Database
}

func newBaseRepository(db *sqlite.Database) baseRepository {
	return baseRepository{db: db}
}

// loadSnapshot reads a partition's JSON document into v. A partition that has
// never been written returns ErrNotFound.
func (r baseRepository) loadSnapshot(ctx context.Context, partition string, v any) error {
	var payload string
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT payload FROM snapshots WHERE partition = ?`, partition).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("snapshot %s: %w", partition, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("query snapshot %s: %w", partition, err)
	}
	if err = json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", partition, err)
	}
	return nil
}

// saveSnapshot serialises v and upserts it as the partition's document.
func (r baseRepository) saveSnapshot(ctx context.Context, partition string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", partition, err)
	}
	updatedAt := time.Now().UTC().Format(timestampFormat)
	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO snapshots (partition, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (partition) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		partition, string(payload), updatedAt)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", partition, err)
	}
	return nil
}

// repository bundles the per-partition repositories behind one factory.
type repository struct {
	workoutState *sqliteWorkoutStateRepository
	trainingPlan *sqliteTrainingPlanRepository
	exercises    *sqliteExerciseRepository
	preferences  *sqlitePreferencesRepository
}

func newRepository(db *sqlite.Database) *repository {
	return &repository{
		workoutState: newSQLiteWorkoutStateRepository(db),
		trainingPlan: newSQLiteTrainingPlanRepository(db),
		exercises:    newSQLiteExerciseRepository(db),
		preferences:  newSQLitePreferencesRepository(db),
	}
}
