package main

import (
	"errors"
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

// workoutCurrentGET returns today's prescription, or a JSON null when the plan
// queue is empty or the active block has nothing scheduled for today.
func (app *application) workoutCurrentGET(w http.ResponseWriter, r *http.Request) {
	prescription, err := app.workoutService.CurrentWorkout(r.Context())
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			app.writeJSON(w, r, http.StatusOK, nil)
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, prescription)
}

// workoutExercisesGET returns the per-exercise plans for today's workout with
// computed weights and warm-up ramps. Days without exercises yield an empty
// list.
func (app *application) workoutExercisesGET(w http.ResponseWriter, r *http.Request) {
	plans, err := app.workoutService.CurrentExercisePlans(r.Context())
	if err != nil && !errors.Is(err, workout.ErrNotFound) {
		app.serverError(w, r, err)
		return
	}
	if plans == nil {
		plans = []workout.ExercisePlan{}
	}
	app.writeJSON(w, r, http.StatusOK, plans)
}

func (app *application) workoutStateGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.State(r.Context()))
}

// workoutCompletePOST marks today's workout done and advances the plan cursor.
func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	completion, err := app.workoutService.CompleteWorkout(r.Context())
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			clientError(w, http.StatusBadRequest, "no current workout found")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, completion)
}

// setTogglePOST flips the completion state of a single working or warm-up set.
func (app *application) setTogglePOST(w http.ResponseWriter, r *http.Request) {
	setID := r.PathValue("setID")
	completed, err := app.workoutService.ToggleSet(r.Context(), setID)
	if err != nil {
		if !domainError(w, err) {
			app.serverError(w, r, err)
		}
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]any{"setID": setID, "completed": completed})
}
