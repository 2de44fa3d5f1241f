package main

import (
	"net/http"
	"testing"

	"github.com/myrjola/unbroken/internal/workout"
)

func Test_application_trainingPlanEditing(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	var plan []workout.PlanBlock
	status, err := client.GetJSON(ctx, "/api/training-plan", &plan)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-plan")
	if len(plan) != 11 {
		t.Fatalf("got %d plan blocks, want 11", len(plan))
	}
	if plan[0].Type != "getready" {
		t.Fatalf("got first block type %q, want getready", plan[0].Type)
	}

	// Append a block from the catalogue.
	if status, err = client.PostJSON(ctx, "/api/training-plan/blocks",
		map[string]string{"blockType": "bodybuilding"}, &plan); err != nil {
		t.Fatalf("add block: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-plan/blocks")
	if len(plan) != 12 {
		t.Fatalf("got %d plan blocks after add, want 12", len(plan))
	}
	if got := plan[len(plan)-1]; got.Type != "bodybuilding" || got.Name != "Bodybuilding Block" {
		t.Errorf("got appended block %+v, want the bodybuilding catalogue entry", got)
	}

	// Unknown block types are rejected.
	if status, err = client.PostJSON(ctx, "/api/training-plan/blocks",
		map[string]string{"blockType": "crossfit"}, nil); err != nil {
		t.Fatalf("add unknown block: %v", err)
	}
	assertStatus(t, status, http.StatusNotFound, "/api/training-plan/blocks")

	// The active block can be neither removed nor moved.
	if status, err = client.PostJSON(ctx, "/api/training-plan/blocks/0/remove", nil, nil); err != nil {
		t.Fatalf("remove active block: %v", err)
	}
	assertStatus(t, status, http.StatusBadRequest, "/api/training-plan/blocks/0/remove")
	if status, err = client.PostJSON(ctx, "/api/training-plan/reorder",
		map[string]int{"fromIndex": 0, "toIndex": 3}, nil); err != nil {
		t.Fatalf("reorder active block: %v", err)
	}
	assertStatus(t, status, http.StatusBadRequest, "/api/training-plan/reorder")

	// Queued blocks can be removed and reordered.
	if status, err = client.PostJSON(ctx, "/api/training-plan/blocks/11/remove", nil, &plan); err != nil {
		t.Fatalf("remove queued block: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-plan/blocks/11/remove")
	if len(plan) != 11 {
		t.Fatalf("got %d plan blocks after remove, want 11", len(plan))
	}

	if status, err = client.PostJSON(ctx, "/api/training-plan/reorder",
		map[string]int{"fromIndex": 1, "toIndex": 3}, &plan); err != nil {
		t.Fatalf("reorder queued block: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-plan/reorder")
	if plan[2].Type != "endurance1" {
		t.Errorf("got block type %q at index 2, want endurance1", plan[2].Type)
	}

	// Out-of-range indices are not found.
	if status, err = client.PostJSON(ctx, "/api/training-plan/blocks/99/remove", nil, nil); err != nil {
		t.Fatalf("remove out-of-range block: %v", err)
	}
	assertStatus(t, status, http.StatusNotFound, "/api/training-plan/blocks/99/remove")
}

func Test_application_trainingBlocks(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	var blocks map[string]workout.BlockInfo
	status, err := client.GetJSON(ctx, "/api/training-blocks/all", &blocks)
	if err != nil {
		t.Fatalf("get training blocks: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-blocks/all")
	if len(blocks) != 7 {
		t.Errorf("got %d block types, want 7", len(blocks))
	}
	if _, ok := blocks["getready"]; ok {
		t.Error("the ramp-up placeholder should not be addable")
	}

	var template workout.BlockTemplate
	if status, err = client.GetJSON(ctx, "/api/training-blocks/strength", &template); err != nil {
		t.Fatalf("get strength template: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/training-blocks/strength")
	if len(template.Weeks) == 0 {
		t.Error("strength template has no weeks")
	}

	if status, err = client.GetJSON(ctx, "/api/training-blocks/crossfit", nil); err != nil {
		t.Fatalf("get unknown template: %v", err)
	}
	assertStatus(t, status, http.StatusNotFound, "/api/training-blocks/crossfit")
}
