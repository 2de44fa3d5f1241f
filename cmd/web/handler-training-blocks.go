package main

import (
	"errors"
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

// trainingBlocksGET lists the block types that can be added to the plan.
func (app *application) trainingBlocksGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, workout.AvailableBlocks())
}

// trainingBlockGET returns the full week-by-week template for one block type.
func (app *application) trainingBlockGET(w http.ResponseWriter, r *http.Request) {
	blockType := r.PathValue("blockType")
	template, err := workout.Template(blockType)
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			clientError(w, http.StatusNotFound, "unknown block type")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, template)
}

// currentBlockExercisesGET returns the distinct strength and hypertrophy
// exercises of a block template so that the maxes editor can offer them.
// Unknown block types yield empty lists, not an error.
func (app *application) currentBlockExercisesGET(w http.ResponseWriter, r *http.Request) {
	blockType := r.URL.Query().Get("blockType")
	app.writeJSON(w, r, http.StatusOK, app.workoutService.BlockExercises(r.Context(), blockType))
}
