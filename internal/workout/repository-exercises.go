package workout

import (
	"context"

	"github.com/myrjola/unbroken/internal/sqlite"
)

// exerciseState is the persisted shape of the training maxes and 10RMs,
// keyed by canonical exercise key.
type exerciseState struct {
	Maxes  map[string]float64 `json:"maxes"`
	TenRMs map[string]float64 `json:"tenRMs"`
}

// sqliteExerciseRepository persists the exerciseState partition.
type sqliteExerciseRepository struct {
	baseRepository
}

func newSQLiteExerciseRepository(db *sqlite.Database) *sqliteExerciseRepository {
	return &sqliteExerciseRepository{baseRepository: newBaseRepository(db)}
}

func (r *sqliteExerciseRepository) Get(ctx context.Context) (exerciseState, error) {
	var state exerciseState
	if err := r.loadSnapshot(ctx, partitionExerciseState, &state); err != nil {
		return exerciseState{}, err
	}
	return state, nil
}

func (r *sqliteExerciseRepository) Set(ctx context.Context, state exerciseState) error {
	return r.saveSnapshot(ctx, partitionExerciseState, state)
}
