package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBuildRecord_FullEntry(t *testing.T) {
	entry := LibraryEntry{
		RatingKey:      "1",
		Title:          "Dune",
		Year:           2021,
		AudienceRating: 8.5,
		Label:          json.RawMessage(`[{"tag":"rustizarr"}]`),
		Media:          []MediaVariant{{VideoResolution: "4k", AudioCodec: "truehd"}},
	}

	record := BuildRecord(entry)

	if record.ID != "1" {
		t.Errorf("Expected ID '1', got '%s'", record.ID)
	}
	if record.Title != "Dune" {
		t.Errorf("Expected title 'Dune', got '%s'", record.Title)
	}
	if record.Year != "2021" {
		t.Errorf("Expected year '2021', got '%s'", record.Year)
	}
	if record.Status != StatusProcessed {
		t.Errorf("Expected status %s, got %s", StatusProcessed, record.Status)
	}
	if record.Resolution != "4K" {
		t.Errorf("Expected resolution '4K', got '%s'", record.Resolution)
	}
	if record.AudioCodec != "TRUEHD" {
		t.Errorf("Expected audio codec 'TRUEHD', got '%s'", record.AudioCodec)
	}
	if record.Rating != 8.5 {
		t.Errorf("Expected rating 8.5, got %v", record.Rating)
	}
}

func TestBuildRecord_EmptyEntry(t *testing.T) {
	entry := LibraryEntry{
		RatingKey: "42",
		Title:     "Unknown Movie",
	}

	record := BuildRecord(entry)

	if record.Status != StatusPending {
		t.Errorf("Expected status %s, got %s", StatusPending, record.Status)
	}
	if record.Year != YearUnknown {
		t.Errorf("Expected year sentinel '%s', got '%s'", YearUnknown, record.Year)
	}
	if record.Resolution != ResolutionUnknown {
		t.Errorf("Expected resolution sentinel '%s', got '%s'", ResolutionUnknown, record.Resolution)
	}
	if record.AudioCodec != "" {
		t.Errorf("Expected empty audio codec, got '%s'", record.AudioCodec)
	}
	if record.IsRecentlyAdded() {
		t.Error("Record without addedAt should never be recent")
	}
}

func TestBuildRecord_MediaWithoutResolution(t *testing.T) {
	entry := LibraryEntry{
		RatingKey: "7",
		Title:     "No Res",
		Media:     []MediaVariant{{AudioCodec: "aac"}},
	}

	record := BuildRecord(entry)

	if record.Resolution != ResolutionUnknown {
		t.Errorf("Expected resolution sentinel '%s', got '%s'", ResolutionUnknown, record.Resolution)
	}
	if record.AudioCodec != "AAC" {
		t.Errorf("Expected audio codec 'AAC', got '%s'", record.AudioCodec)
	}
}

func TestBuildRecord_Deterministic(t *testing.T) {
	entry := LibraryEntry{
		RatingKey: "9",
		Title:     "Stable",
		Label:     json.RawMessage(`{"tag":"RUSTIZARR"}`),
	}

	first := BuildRecord(entry)
	second := BuildRecord(entry)

	if first != second {
		t.Errorf("BuildRecord not deterministic: %+v vs %+v", first, second)
	}
	if first.Status != StatusProcessed {
		t.Errorf("Expected status %s for marker label, got %s", StatusProcessed, first.Status)
	}
}

func TestDisplayRecord_IsRecentlyAdded(t *testing.T) {
	tests := []struct {
		name     string
		addedAt  int64
		expected bool
	}{
		{"just added", time.Now().Unix(), true},
		{"three days ago", time.Now().Add(-3 * 24 * time.Hour).Unix(), true},
		{"thirty days ago", time.Now().Add(-30 * 24 * time.Hour).Unix(), false},
		{"never set", 0, false},
	}

	for _, test := range tests {
		record := BuildRecord(LibraryEntry{RatingKey: "1", Title: "x", AddedAt: test.addedAt})
		if record.IsRecentlyAdded() != test.expected {
			t.Errorf("IsRecentlyAdded() [%s] = %v, expected %v", test.name, record.IsRecentlyAdded(), test.expected)
		}
	}
}

func TestDisplayRecord_DisplayRating(t *testing.T) {
	tests := []struct {
		rating   float64
		expected string
	}{
		{8.5, "8.5"},
		{7, "7.0"},
		{0, "—"},
	}

	for _, test := range tests {
		record := DisplayRecord{Rating: test.rating}
		result := record.DisplayRating()
		if result != test.expected {
			t.Errorf("DisplayRating() with rating=%v = %s, expected %s", test.rating, result, test.expected)
		}
	}
}

func TestDisplayRecord_DisplayMeta(t *testing.T) {
	tests := []struct {
		resolution string
		codec      string
		expected   string
	}{
		{"4K", "TRUEHD", "4K · TRUEHD"},
		{"UNK", "", "UNK"},
	}

	for _, test := range tests {
		record := DisplayRecord{Resolution: test.resolution, AudioCodec: test.codec}
		result := record.DisplayMeta()
		if result != test.expected {
			t.Errorf("DisplayMeta() with res='%s' codec='%s' = '%s', expected '%s'",
				test.resolution, test.codec, result, test.expected)
		}
	}
}
