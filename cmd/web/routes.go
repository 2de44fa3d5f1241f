package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		api = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.logAndTraceRequest(secureHeaders(
				app.crossOriginProtection(commonContext(app.timeout(next)))))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.logAndTraceRequest(secureHeaders(
					app.crossOriginProtection(commonContext(app.timeout(next))))))))
		}
	)

	mux.Handle("GET /api/workout/current", api(http.HandlerFunc(app.workoutCurrentGET)))
	mux.Handle("GET /api/workout/exercises", api(http.HandlerFunc(app.workoutExercisesGET)))
	mux.Handle("GET /api/workout/state", api(http.HandlerFunc(app.workoutStateGET)))
	mux.Handle("POST /api/workout/complete", api(http.HandlerFunc(app.workoutCompletePOST)))
	mux.Handle("POST /api/sets/{setID}/toggle", api(http.HandlerFunc(app.setTogglePOST)))

	mux.Handle("GET /api/history", api(http.HandlerFunc(app.historyGET)))

	mux.Handle("GET /api/training-blocks/all", api(http.HandlerFunc(app.trainingBlocksGET)))
	mux.Handle("GET /api/training-blocks/{blockType}", api(http.HandlerFunc(app.trainingBlockGET)))

	mux.Handle("GET /api/training-plan", api(http.HandlerFunc(app.trainingPlanGET)))
	mux.Handle("POST /api/training-plan/blocks", api(http.HandlerFunc(app.trainingPlanAddPOST)))
	mux.Handle("POST /api/training-plan/blocks/{index}/remove", api(http.HandlerFunc(app.trainingPlanRemovePOST)))
	mux.Handle("POST /api/training-plan/reorder", api(http.HandlerFunc(app.trainingPlanReorderPOST)))

	mux.Handle("GET /api/exercises/max", api(http.HandlerFunc(app.exerciseMaxGET)))
	mux.Handle("POST /api/exercises/max", api(http.HandlerFunc(app.exerciseMaxPOST)))
	mux.Handle("GET /api/exercises/ten-rm", api(http.HandlerFunc(app.exerciseTenRMGET)))
	mux.Handle("POST /api/exercises/ten-rm", api(http.HandlerFunc(app.exerciseTenRMPOST)))
	mux.Handle("GET /api/exercises/current-block", api(http.HandlerFunc(app.currentBlockExercisesGET)))

	mux.Handle("GET /api/preferences", api(http.HandlerFunc(app.preferencesGET)))
	mux.Handle("POST /api/preferences", api(http.HandlerFunc(app.preferencesPOST)))

	mux.Handle("GET /api/rest-timer", api(http.HandlerFunc(app.restTimerGET)))
	mux.Handle("POST /api/rest-timer/start", api(http.HandlerFunc(app.restTimerStartPOST)))
	mux.Handle("POST /api/rest-timer/extend", api(http.HandlerFunc(app.restTimerExtendPOST)))
	mux.Handle("POST /api/rest-timer/stop", api(http.HandlerFunc(app.restTimerStopPOST)))

	mux.Handle("GET /api/ui/state", session(http.HandlerFunc(app.uiStateGET)))
	mux.Handle("POST /api/ui/state", session(http.HandlerFunc(app.uiStatePOST)))

	mux.Handle("POST /api/reset", api(http.HandlerFunc(app.resetPOST)))
	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	return mux
}
