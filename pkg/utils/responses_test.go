package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantCode   int
		wantStatus bool
		wantMsg    string
		wantErrors bool
	}{
		{"success", func(w http.ResponseWriter) { ResponseSuccess(w, "success", []int{1}) }, http.StatusOK, true, "success", false},
		{"created", func(w http.ResponseWriter) { ResponseCreated(w, "Booking submitted", map[string]string{"id": "x"}) }, http.StatusCreated, true, "Booking submitted", false},
		{"validation", func(w http.ResponseWriter) {
			ResponseValidationFailed(w, map[string]string{"location": "This field is required"})
		}, http.StatusBadRequest, false, "Validation failed", true},
		{"not found", func(w http.ResponseWriter) { ResponseNotFound(w, "package not found") }, http.StatusNotFound, false, "package not found", false},
		{"rate limited", func(w http.ResponseWriter) { ResponseTooManyRequests(w, "Too many requests") }, http.StatusTooManyRequests, false, "Too many requests", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var body struct {
				Status  bool              `json:"status"`
				Message string            `json:"message"`
				Errors  map[string]string `json:"errors"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantStatus || body.Message != tt.wantMsg {
				t.Errorf("body = %+v", body)
			}
			if (len(body.Errors) > 0) != tt.wantErrors {
				t.Errorf("errors = %v, want present %v", body.Errors, tt.wantErrors)
			}
		})
	}
}
