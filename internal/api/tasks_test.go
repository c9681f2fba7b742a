package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// mockServer creates a test HTTP server for mocking backend responses.
func mockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(handler)
}

func TestFetchTasksEnvelope(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET request, got %s", r.Method)
		}
		if r.URL.Path != "/api/tasks" {
			t.Errorf("expected /api/tasks, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected Bearer token, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"today": "2025-06-14",
			"tasks": [
				{"id": 1, "technical_name": "swimming", "tile_text": "Been swimming?", "goal": 26, "current": 2, "done_today": false}
			]
		}`))
	})
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	list, err := client.FetchTasks()
	if err != nil {
		t.Fatalf("FetchTasks: %v", err)
	}

	if len(list.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(list.Tasks))
	}
	if list.Tasks[0].ID != "swimming" {
		t.Errorf("task ID = %q, want %q", list.Tasks[0].ID, "swimming")
	}
	want := time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local)
	if !list.Today.Equal(want) {
		t.Errorf("Today = %v, want %v", list.Today, want)
	}
}

func TestFetchTasksBareArray(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "tile_text": "Read"},
			{"id": 2, "tile_text": "Run"}
		]`))
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	list, err := client.FetchTasks()
	if err != nil {
		t.Fatalf("FetchTasks: %v", err)
	}

	if len(list.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(list.Tasks))
	}
	if list.Today.IsZero() {
		t.Error("Today should fall back to the local date for bare arrays")
	}
}

func TestFetchTasksServerError(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database is on fire"))
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.FetchTasks()
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if !apiErr.IsServerError() {
		t.Errorf("IsServerError = false for status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "database is on fire" {
		t.Errorf("Message = %q, want verbatim body", apiErr.Message)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		value      bool
		statusCode int
		wantErr    bool
	}{
		{"affirmative answer", true, http.StatusOK, false},
		{"negative answer", false, http.StatusOK, false},
		{"rejected", true, http.StatusBadRequest, true},
	}

	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mockServer(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST request, got %s", r.Method)
				}
				if r.URL.Path != "/api/confirm" {
					t.Errorf("expected /api/confirm, got %s", r.URL.Path)
				}

				var body confirmRequest
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body.TechnicalName != "swimming" {
					t.Errorf("technical_name = %q, want %q", body.TechnicalName, "swimming")
				}
				if body.Value != tt.value {
					t.Errorf("value = %v, want %v", body.Value, tt.value)
				}
				if body.Date != "2025-06-14" {
					t.Errorf("date = %q, want %q", body.Date, "2025-06-14")
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"ok": true}`))
			})
			defer server.Close()

			client := NewClient(server.URL, "")
			err := client.Confirm("swimming", tt.value, date)
			if (err != nil) != tt.wantErr {
				t.Errorf("Confirm error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitValue(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/number-diff" {
			t.Errorf("expected /api/number-diff, got %s", r.URL.Path)
		}

		var body numberDiffRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.TechnicalName != "weight" {
			t.Errorf("technical_name = %q, want %q", body.TechnicalName, "weight")
		}
		if body.Value != 79.0 {
			t.Errorf("value = %v, want 79.0", body.Value)
		}

		w.Write([]byte(`{"ok": true}`))
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.Local)
	if err := client.SubmitValue("weight", 79.0, date); err != nil {
		t.Errorf("SubmitValue: %v", err)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	server := mockServer(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization header set without token: %q", got)
		}
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.FetchTasks(); err != nil {
		t.Errorf("FetchTasks: %v", err)
	}
}
