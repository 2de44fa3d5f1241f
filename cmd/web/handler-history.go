package main

import (
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

// historyGET returns the most recent completed workouts, newest first, with
// the badge colours and summaries the history view renders.
func (app *application) historyGET(w http.ResponseWriter, r *http.Request) {
	entries := app.workoutService.History(r.Context())
	if entries == nil {
		entries = []workout.HistoryEntry{}
	}
	app.writeJSON(w, r, http.StatusOK, entries)
}
