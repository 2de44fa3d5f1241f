package workout

import (
	"context"

	"github.com/myrjola/unbroken/internal/sqlite"
)

// workoutState is the persisted shape of the plan cursor and set-completion
// tracking. Field names are part of the stored document format.
type workoutState struct {
	CurrentWeek       int                `json:"currentWeek"`
	CurrentDay        int                `json:"currentDay"`
	CompletedWorkouts []CompletedWorkout `json:"completedWorkouts"`
	CompletedSets     map[string]bool    `json:"completedSets"`
}

// sqliteWorkoutStateRepository persists the workoutState partition.
type sqliteWorkoutStateRepository struct {
	baseRepository
}

func newSQLiteWorkoutStateRepository(db *sqlite.Database) *sqliteWorkoutStateRepository {
	return &sqliteWorkoutStateRepository{baseRepository: newBaseRepository(db)}
}

func (r *sqliteWorkoutStateRepository) Get(ctx context.Context) (workoutState, error) {
	var state workoutState
	if err := r.loadSnapshot(ctx, partitionWorkoutState, &state); err != nil {
		return workoutState{}, err
	}
	return state, nil
}

func (r *sqliteWorkoutStateRepository) Set(ctx context.Context, state workoutState) error {
	return r.saveSnapshot(ctx, partitionWorkoutState, state)
}
