package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/models"
	"github.com/metrondb/metrond/internal/point"
	"github.com/metrondb/metrond/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.Engine) {
	t.Helper()

	store, err := storage.Open(storage.MemoryLocation)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewServer(store, logging.NewDevelopment()), store
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var health models.HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if health.Version == "" {
		t.Error("version is empty")
	}
}

func TestStats(t *testing.T) {
	s, store := newTestServer(t)

	seed := []point.Point{
		{Name: "hosts.aura.cpu_load", Timestamp: 100, Value: 0.5},
		{Name: "hosts.beta.cpu_load", Timestamp: 150, Value: 0.9},
	}
	if err := store.PutBatch(context.Background(), seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp, err := s.app.Test(httptest.NewRequest("GET", "/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var stats models.StatsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !stats.InMemory {
		t.Error("expected in-memory store")
	}
	if stats.Storage.Points != 2 {
		t.Errorf("points = %d, want 2", stats.Storage.Points)
	}
	if stats.Storage.Names != 2 {
		t.Errorf("names = %d, want 2", stats.Storage.Names)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/nope", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if errResp.Error.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", errResp.Error.Code)
	}
	if errResp.Error.Path != "/nope" {
		t.Errorf("path = %q, want /nope", errResp.Error.Path)
	}
}
