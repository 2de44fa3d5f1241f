package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/myrjola/unbroken/internal/workout"
)

func Test_application_workoutCurrent_defaultPlanStartsWithPlaceholder(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startTestServer(t)
		client = server.Client()
	)

	// The out-of-the-box plan opens with the ramp-up placeholder which has no
	// authored content, so there is no workout to show or complete.
	var raw json.RawMessage
	status, err := client.GetJSON(ctx, "/api/workout/current", &raw)
	if err != nil {
		t.Fatalf("get current workout: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/current")
	if string(raw) != "null" {
		t.Errorf("got body %s, want null", raw)
	}

	var plans []workout.ExercisePlan
	if status, err = client.GetJSON(ctx, "/api/workout/exercises", &plans); err != nil {
		t.Fatalf("get exercise plans: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/exercises")
	if len(plans) != 0 {
		t.Errorf("got %d exercise plans, want 0", len(plans))
	}

	var errBody errorResponse
	if status, err = client.PostJSON(ctx, "/api/workout/complete", nil, &errBody); err != nil {
		t.Fatalf("post complete: %v", err)
	}
	assertStatus(t, status, http.StatusBadRequest, "/api/workout/complete")
	if errBody.Error == "" {
		t.Error("expected an error message in the response body")
	}

	var state workout.StateView
	if status, err = client.GetJSON(ctx, "/api/workout/state", &state); err != nil {
		t.Fatalf("get state: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/state")
	if state.CurrentWeek != 1 || state.CurrentDay != 1 {
		t.Errorf("got week %d day %d, want week 1 day 1", state.CurrentWeek, state.CurrentDay)
	}
	if state.CurrentBlockInfo.Name != "Get Ready" || state.CurrentBlockInfo.Weeks != 1 {
		t.Errorf("got block %+v, want Get Ready with 1 week", state.CurrentBlockInfo)
	}
}

func Test_application_workoutComplete_progression(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startSeededServer(t, map[string]string{
			"trainingPlanState": `{"customPlan":[
				{"name":"Powerbuilding Block 1","weeks":1,"type":"powerbuilding1"},
				{"name":"Strength Block","weeks":6,"type":"strength"}]}`,
		})
		client = server.Client()
	)

	var prescription workout.Prescription
	status, err := client.GetJSON(ctx, "/api/workout/current", &prescription)
	if err != nil {
		t.Fatalf("get current workout: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/current")
	if prescription.Type != workout.TypeStrength {
		t.Fatalf("got workout type %q, want %q", prescription.Type, workout.TypeStrength)
	}

	// Work through the first six days of the one-week block.
	var completion workout.Completion
	for day := 1; day <= 6; day++ {
		if status, err = client.PostJSON(ctx, "/api/workout/complete", nil, &completion); err != nil {
			t.Fatalf("complete day %d: %v", day, err)
		}
		assertStatus(t, status, http.StatusOK, "/api/workout/complete")
		if completion.Workout.Day != day || completion.Workout.Week != 1 {
			t.Errorf("archived week %d day %d, want week 1 day %d",
				completion.Workout.Week, completion.Workout.Day, day)
		}
		if completion.NewDay != day+1 || completion.MovedToNextBlock {
			t.Errorf("after day %d: cursor at day %d moved=%v, want day %d",
				day, completion.NewDay, completion.MovedToNextBlock, day+1)
		}
	}

	// Day seven finishes the declared single week and dequeues the block.
	if status, err = client.PostJSON(ctx, "/api/workout/complete", nil, &completion); err != nil {
		t.Fatalf("complete day 7: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/workout/complete")
	if !completion.MovedToNextBlock || completion.NewWeek != 1 || completion.NewDay != 1 {
		t.Errorf("got completion %+v, want move to next block at week 1 day 1", completion)
	}

	var state workout.StateView
	if _, err = client.GetJSON(ctx, "/api/workout/state", &state); err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.CurrentBlockInfo.Name != "Strength Block" {
		t.Errorf("got active block %q, want %q", state.CurrentBlockInfo.Name, "Strength Block")
	}
	if len(state.CompletedWorkouts) != 7 {
		t.Errorf("got %d completed workouts, want 7", len(state.CompletedWorkouts))
	}

	var history []workout.HistoryEntry
	if _, err = client.GetJSON(ctx, "/api/history", &history); err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 7 {
		t.Fatalf("got %d history entries, want 7", len(history))
	}
	// Newest first: the last completed day was a rest day.
	if history[0].Day != 7 || history[0].Type != workout.TypeRest {
		t.Errorf("got newest entry day %d type %q, want day 7 rest", history[0].Day, history[0].Type)
	}
}

func Test_application_setToggle(t *testing.T) {
	var (
		ctx    = t.Context()
		server = startSeededServer(t, map[string]string{
			"trainingPlanState": `{"customPlan":[
				{"name":"Powerbuilding Block 1","weeks":3,"type":"powerbuilding1"}]}`,
		})
		client = server.Client()
	)

	var toggled struct {
		SetID     string `json:"setID"`
		Completed bool   `json:"completed"`
	}
	status, err := client.PostJSON(ctx, "/api/sets/0-0-0/toggle", nil, &toggled)
	if err != nil {
		t.Fatalf("toggle set: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/sets/0-0-0/toggle")
	if !toggled.Completed {
		t.Error("got completed=false after first toggle, want true")
	}

	if _, err = client.PostJSON(ctx, "/api/sets/0-0-0/toggle", nil, &toggled); err != nil {
		t.Fatalf("toggle set again: %v", err)
	}
	if toggled.Completed {
		t.Error("got completed=true after second toggle, want false")
	}

	var state workout.StateView
	if _, err = client.GetJSON(ctx, "/api/workout/state", &state); err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.CompletedSets["0-0-0"] {
		t.Error("set 0-0-0 still marked completed in state")
	}
}
