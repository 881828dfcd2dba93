package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocateSuccess(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "lat": 52.52, "lon": 13.405}`))
	}))
	defer srv.Close()

	provider, err := NewIPAPIProvider(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	coord, err := provider.Locate(context.Background(), "203.0.113.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/203.0.113.7" {
		t.Errorf("request path = %q, want /203.0.113.7", gotPath)
	}
	if coord.Lat != 52.52 || coord.Lon != 13.405 {
		t.Errorf("unexpected coordinates: %+v", coord)
	}
}

func TestLocateOwnAddressUsesBarePath(t *testing.T) {
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "lat": 1, "lon": 2}`))
	}))
	defer srv.Close()

	provider, err := NewIPAPIProvider(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := provider.Locate(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/" {
		t.Errorf("request path = %q, want /", gotPath)
	}
}

func TestLocateLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	}))
	defer srv.Close()

	provider, err := NewIPAPIProvider(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = provider.Locate(context.Background(), "10.0.0.1")
	if err == nil {
		t.Fatal("expected error for fail status, got nil")
	}
	if !strings.Contains(err.Error(), "private range") {
		t.Errorf("error does not carry upstream message: %v", err)
	}
}

func TestLocateRejectsOutOfRangeCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "lat": 120.0, "lon": 13.4}`))
	}))
	defer srv.Close()

	provider, err := NewIPAPIProvider(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := provider.Locate(context.Background(), "203.0.113.7"); err == nil {
		t.Fatal("expected error for out-of-range coordinates, got nil")
	}
}
