package main

import (
	"net/http"
	"strconv"

	"github.com/myrjola/unbroken/internal/workout"
)

func (app *application) trainingPlanGET(w http.ResponseWriter, r *http.Request) {
	plan := app.workoutService.Plan(r.Context())
	if plan == nil {
		plan = []workout.PlanBlock{}
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}

// trainingPlanAddPOST appends a block from the catalogue to the end of the
// plan queue.
func (app *application) trainingPlanAddPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlockType string `json:"blockType"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.AddBlock(r.Context(), req.BlockType); err != nil {
		if !domainError(w, err) {
			app.serverError(w, r, err)
		}
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Plan(r.Context()))
}

// trainingPlanRemovePOST removes the block at the given queue index. The
// active block and the last remaining block are protected.
func (app *application) trainingPlanRemovePOST(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		clientError(w, http.StatusBadRequest, "invalid block index")
		return
	}
	if err = app.workoutService.RemoveBlock(r.Context(), index); err != nil {
		if !domainError(w, err) {
			app.serverError(w, r, err)
		}
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Plan(r.Context()))
}

// trainingPlanReorderPOST moves a queued block to a new position. The active
// block stays at the head of the queue.
func (app *application) trainingPlanReorderPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromIndex int `json:"fromIndex"`
		ToIndex   int `json:"toIndex"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.MoveBlock(r.Context(), req.FromIndex, req.ToIndex); err != nil {
		if !domainError(w, err) {
			app.serverError(w, r, err)
		}
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.workoutService.Plan(r.Context()))
}
