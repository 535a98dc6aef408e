package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		db         Pinger
		wantStatus int
		wantState  string
		wantIssues int
	}{
		{
			name:       "healthy",
			method:     http.MethodGet,
			db:         pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusOK,
			wantState:  "healthy",
		},
		{
			name:       "database down",
			method:     http.MethodGet,
			db:         pingFunc(func(context.Context) error { return errors.New("closed") }),
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
			wantIssues: 1,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			db:         pingFunc(func(context.Context) error { return nil }),
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db)

			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantState == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantState)
			}
			if len(resp.Issues) != tt.wantIssues {
				t.Errorf("Issues = %v, want %d entries", resp.Issues, tt.wantIssues)
			}
			if resp.Timestamp == "" {
				t.Error("Timestamp is empty")
			}
		})
	}
}
