package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ZainUlabideen460/fitness-app/internal/models"
)

type stubProgressStore struct {
	entries   []models.Progress
	createErr error
}

func (s *stubProgressStore) Create(_ context.Context, progress *models.Progress) error {
	if s.createErr != nil {
		return s.createErr
	}
	progress.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, *progress)
	return nil
}

func (s *stubProgressStore) ListByUserID(_ context.Context, userID int64) ([]models.Progress, error) {
	matches := make([]models.Progress, 0)
	for _, entry := range s.entries {
		if entry.UserID == userID {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

func newProgressApp(store *stubProgressStore, now func() time.Time) *fiber.App {
	handler := NewProgressHandler(store)
	if now != nil {
		handler.now = now
	}
	app := fiber.New()
	app.Post("/progress", handler.TrackProgress)
	app.Get("/api/progress/:user_id", handler.GetUserProgress)
	return app
}

func TestTrackProgressUsesServerDateAndDefaults(t *testing.T) {
	store := &stubProgressStore{}
	fixed := time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC)
	app := newProgressApp(store, func() time.Time { return fixed })

	resp := postJSON(t, app, "/progress", map[string]any{
		"user_id": 7,
		"date":    "1999-01-01",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if len(store.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(store.entries))
	}
	entry := store.entries[0]
	if entry.Date.Format("2006-01-02") != "2025-03-14" {
		t.Fatalf("expected the server date, got %s", entry.Date)
	}
	if entry.WorkoutsCompleted != 0 || entry.CaloriesBurned != 0 || entry.Notes != "" {
		t.Fatalf("expected zero defaults, got %+v", entry)
	}
	if entry.Weight != nil {
		t.Fatalf("expected weight to stay nil when omitted")
	}
}

func TestTrackProgressRequiresUserID(t *testing.T) {
	store := &stubProgressStore{}
	app := newProgressApp(store, nil)

	resp := postJSON(t, app, "/progress", map[string]any{"weight": 70.0})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(store.entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(store.entries))
	}
}

func TestTrackProgressTwiceSameDayKeepsBothRecords(t *testing.T) {
	store := &stubProgressStore{}
	fixed := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	app := newProgressApp(store, func() time.Time { return fixed })

	for _, weight := range []float64{70.5, 70.1} {
		resp := postJSON(t, app, "/progress", map[string]any{
			"user_id": 7,
			"weight":  weight,
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/progress/7", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var entries []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 records for the same day, got %d", len(entries))
	}
	if entries[0]["date"] != "2025-03-14" || entries[1]["date"] != "2025-03-14" {
		t.Fatalf("expected both records dated 2025-03-14, got %v", entries)
	}
	if entries[0]["weight"] == entries[1]["weight"] {
		t.Fatalf("expected both submissions preserved, got %v", entries)
	}
}

func TestGetUserProgressShape(t *testing.T) {
	weight := 70.5
	store := &stubProgressStore{entries: []models.Progress{{
		ID:                1,
		UserID:            7,
		Date:              time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Weight:            &weight,
		WorkoutsCompleted: 2,
		CaloriesBurned:    350,
		Notes:             "felt strong",
	}}}
	app := newProgressApp(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/progress/7", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var entries []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 record, got %d", len(entries))
	}
	for _, key := range []string{"date", "weight", "workouts_completed", "calories_burned", "notes"} {
		if _, ok := entries[0][key]; !ok {
			t.Fatalf("expected %s in the record, got %v", key, entries[0])
		}
	}
	if _, ok := entries[0]["id"]; ok {
		t.Fatalf("expected the record id to be excluded, got %v", entries[0])
	}
}
