package workout

import (
	"context"

	"github.com/myrjola/unbroken/internal/sqlite"
)

// trainingPlanState is the persisted shape of the editable plan queue.
type trainingPlanState struct {
	CustomPlan []PlanBlock `json:"customPlan"`
}

// sqliteTrainingPlanRepository persists the trainingPlanState partition.
type sqliteTrainingPlanRepository struct {
	baseRepository
}

func newSQLiteTrainingPlanRepository(db *sqlite.Database) *sqliteTrainingPlanRepository {
	return &sqliteTrainingPlanRepository{baseRepository: newBaseRepository(db)}
}

func (r *sqliteTrainingPlanRepository) Get(ctx context.Context) (trainingPlanState, error) {
	var state trainingPlanState
	if err := r.loadSnapshot(ctx, partitionTrainingPlanState, &state); err != nil {
		return trainingPlanState{}, err
	}
	return state, nil
}

func (r *sqliteTrainingPlanRepository) Set(ctx context.Context, state trainingPlanState) error {
	return r.saveSnapshot(ctx, partitionTrainingPlanState, state)
}
