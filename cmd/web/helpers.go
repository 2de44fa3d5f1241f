package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/myrjola/unbroken/internal/workout"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	clientError(w, http.StatusInternalServerError, "internal server error")
}

// writeJSON renders v as the JSON response body.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.serverError(w, r, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// readJSON decodes the request body into v. On failure it sends a 400 response
// and returns false.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		clientError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func clientError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// domainError translates the workout package sentinels into client responses.
// It returns false when err is not one of them so that the caller can fall
// back to serverError.
func domainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, workout.ErrNotFound):
		clientError(w, http.StatusNotFound, "not found")
	case errors.Is(err, workout.ErrRemoveActiveBlock):
		clientError(w, http.StatusBadRequest, "cannot remove the active block")
	case errors.Is(err, workout.ErrRemoveLastBlock):
		clientError(w, http.StatusBadRequest, "cannot remove the last block")
	case errors.Is(err, workout.ErrReorderActiveBlock):
		clientError(w, http.StatusBadRequest, "cannot reorder the active block")
	default:
		return false
	}
	return true
}
