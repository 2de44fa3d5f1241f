package workout

import (
	"context"

	"github.com/myrjola/unbroken/internal/sqlite"
)

// preferencesState is the persisted shape of the user preferences.
type preferencesState struct {
	WeightUnit WeightUnit `json:"weightUnit"`
}

// sqlitePreferencesRepository persists the preferencesState partition.
type sqlitePreferencesRepository struct {
	baseRepository
}

func newSQLitePreferencesRepository(db *sqlite.Database) *sqlitePreferencesRepository {
	return &sqlitePreferencesRepository{baseRepository: newBaseRepository(db)}
}

func (r *sqlitePreferencesRepository) Get(ctx context.Context) (preferencesState, error) {
	var state preferencesState
	if err := r.loadSnapshot(ctx, partitionPreferencesState, &state); err != nil {
		return preferencesState{}, err
	}
	return state, nil
}

func (r *sqlitePreferencesRepository) Set(ctx context.Context, state preferencesState) error {
	return r.saveSnapshot(ctx, partitionPreferencesState, state)
}
