package main

import (
	"net/http"
)

// resetPOST restores the default plan, maxes, 10RMs, and preferences, and
// clears the workout history.
func (app *application) resetPOST(w http.ResponseWriter, r *http.Request) {
	app.workoutService.Reset(r.Context())
	app.writeJSON(w, r, http.StatusOK, app.workoutService.State(r.Context()))
}
