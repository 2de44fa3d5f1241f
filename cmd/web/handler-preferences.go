package main

import (
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

func (app *application) preferencesGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]workout.WeightUnit{
		"weightUnit": app.workoutService.WeightUnit(r.Context()),
	})
}

// preferencesPOST switches the weight unit. Stored numbers keep their value;
// only rounding and the warm-up floor change.
func (app *application) preferencesPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeightUnit workout.WeightUnit `json:"weightUnit"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.SetWeightUnit(r.Context(), req.WeightUnit); err != nil {
		clientError(w, http.StatusBadRequest, "invalid weight unit")
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]workout.WeightUnit{
		"weightUnit": app.workoutService.WeightUnit(r.Context()),
	})
}
