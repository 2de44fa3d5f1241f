package main

import (
	"net/http"
	"testing"
)

func Test_application_healthy(t *testing.T) {
	server := startTestServer(t)

	var body struct {
		Status string `json:"status"`
	}
	status, err := server.Client().GetJSON(t.Context(), "/api/healthy", &body)
	if err != nil {
		t.Fatalf("get healthy: %v", err)
	}
	assertStatus(t, status, http.StatusOK, "/api/healthy")
	if body.Status != "ok" {
		t.Errorf("got status %q, want %q", body.Status, "ok")
	}
}
