package main

import (
	"errors"
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

func (app *application) restTimerGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.RestTimer(r.Context()))
}

// restTimerStartPOST starts the between-sets countdown for a strength or
// hypertrophy workout.
func (app *application) restTimerStartPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkoutType workout.Type `json:"workoutType"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	timer, err := app.workoutService.StartRestTimer(r.Context(), req.WorkoutType)
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			clientError(w, http.StatusBadRequest, "rest timer is only available for strength and hypertrophy workouts")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, timer)
}

// restTimerExtendPOST applies the one-time extension to a running strength
// rest.
func (app *application) restTimerExtendPOST(w http.ResponseWriter, r *http.Request) {
	timer, err := app.workoutService.ExtendRestTimer(r.Context())
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			clientError(w, http.StatusBadRequest, "rest timer is not extendable")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, timer)
}

func (app *application) restTimerStopPOST(w http.ResponseWriter, r *http.Request) {
	app.workoutService.StopRestTimer(r.Context())
	app.writeJSON(w, r, http.StatusOK, app.workoutService.RestTimer(r.Context()))
}
