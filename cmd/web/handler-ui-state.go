package main

import (
	"net/http"
	"slices"
)

const activeTabSessionKey = "activeTab"

// uiTabs are the tabs the client can remember across page loads.
var uiTabs = []string{"overview", "workout", "plan", "history", "settings"} //nolint:gochecknoglobals // static set

// uiStateGET returns the per-session UI state. A fresh session lands on the
// overview tab.
func (app *application) uiStateGET(w http.ResponseWriter, r *http.Request) {
	activeTab := app.sessionManager.GetString(r.Context(), activeTabSessionKey)
	if activeTab == "" {
		activeTab = "overview"
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"activeTab": activeTab})
}

func (app *application) uiStatePOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveTab string `json:"activeTab"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if !slices.Contains(uiTabs, req.ActiveTab) {
		clientError(w, http.StatusBadRequest, "unknown tab")
		return
	}
	app.sessionManager.Put(r.Context(), activeTabSessionKey, req.ActiveTab)
	app.writeJSON(w, r, http.StatusOK, map[string]string{"activeTab": req.ActiveTab})
}
