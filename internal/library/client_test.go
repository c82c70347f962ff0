package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleLibraryJSON = `[
	{
		"ratingKey": "1",
		"title": "Dune",
		"year": 2021,
		"audienceRating": 8.5,
		"Label": [{"tag": "rustizarr"}],
		"Media": [{"videoResolution": "4k", "audioCodec": "truehd"}]
	},
	{
		"ratingKey": "2",
		"title": "Old Movie",
		"Label": {"tag": "favorite"}
	},
	{
		"ratingKey": "3",
		"title": "Bare"
	}
]`

func TestClient_FetchEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/library" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleLibraryJSON))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	entries, err := client.FetchEntries(context.Background())
	if err != nil {
		t.Fatalf("FetchEntries() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("FetchEntries() returned %d entries, expected 3", len(entries))
	}
	if entries[0].RatingKey != "1" || entries[0].Title != "Dune" {
		t.Errorf("First entry decoded wrong: %+v", entries[0])
	}
	if entries[0].Year != 2021 || entries[0].AudienceRating != 8.5 {
		t.Errorf("First entry fields decoded wrong: %+v", entries[0])
	}
	if len(entries[0].Media) != 1 || entries[0].Media[0].VideoResolution != "4k" {
		t.Errorf("First entry media decoded wrong: %+v", entries[0].Media)
	}
	// The single-object label shape must survive decoding for the normalizer.
	if len(entries[1].Label) == 0 {
		t.Error("Second entry lost its single-object label field")
	}
	if entries[2].Year != 0 || entries[2].Label != nil {
		t.Errorf("Bare entry should decode to zero values: %+v", entries[2])
	}
}

func TestClient_FetchEntriesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchEntries(context.Background()); err == nil {
		t.Error("FetchEntries() should fail on HTTP 500")
	}
}

func TestClient_FetchEntriesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchEntries(context.Background()); err == nil {
		t.Error("FetchEntries() should fail on malformed JSON")
	}
}

func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/library/refresh" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success": true, "total": 12, "processed": 8}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if result.Total != 12 || result.Processed != 8 {
		t.Errorf("Refresh() = %+v, expected total 12 processed 8", result)
	}
}

func TestClient_RefreshBackendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "plex unreachable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Refresh(context.Background()); err == nil {
		t.Error("Refresh() should fail when the backend reports success=false")
	}
}

func TestClient_TriggerScan(t *testing.T) {
	var called bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scan" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		called = true
		// Free-form report body; the client must not care about its shape.
		_, _ = w.Write([]byte("processed 3 movies\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.TriggerScan(context.Background()); err != nil {
		t.Fatalf("TriggerScan() error: %v", err)
	}
	if !called {
		t.Error("TriggerScan() never reached the server")
	}
}

func TestClient_TriggerScanFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.TriggerScan(context.Background()); err == nil {
		t.Error("TriggerScan() should fail on HTTP 502")
	}
}

func TestClient_ImageURLs(t *testing.T) {
	client := NewClient("http://backend:3000/")

	if url := client.ImageURL("42"); url != "http://backend:3000/api/image/42" {
		t.Errorf("ImageURL() = %s", url)
	}
	if url := client.OriginalImageURL("42"); url != "http://backend:3000/api/image/42/original" {
		t.Errorf("OriginalImageURL() = %s", url)
	}
}
