package main

import (
	"net/http"
)

func (app *application) exerciseMaxGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Maxes(r.Context()))
}

// exerciseMaxPOST stores a training max. The exercise may be a display name or
// an already-canonical key.
func (app *application) exerciseMaxPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercise string  `json:"exercise"`
		Value    float64 `json:"value"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.SetMax(r.Context(), req.Exercise, req.Value); err != nil {
		clientError(w, http.StatusBadRequest, "invalid exercise key or value")
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Maxes(r.Context()))
}

func (app *application) exerciseTenRMGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.workoutService.TenRMs(r.Context()))
}

func (app *application) exerciseTenRMPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercise string  `json:"exercise"`
		Value    float64 `json:"value"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.SetTenRM(r.Context(), req.Exercise, req.Value); err != nil {
		clientError(w, http.StatusBadRequest, "invalid exercise key or value")
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.workoutService.TenRMs(r.Context()))
}
