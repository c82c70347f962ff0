package catalog

import (
	"reflect"
	"testing"

	"github.com/rustizarr/dashboard/internal/model"
)

func sampleRecords() []model.DisplayRecord {
	return []model.DisplayRecord{
		{ID: "1", Title: "Inception", Status: model.StatusProcessed},
		{ID: "2", Title: "Dune", Status: model.StatusPending},
		{ID: "3", Title: "Interstellar", Status: model.StatusProcessed},
	}
}

func TestStore_CountsInvariant(t *testing.T) {
	tests := []struct {
		name    string
		records []model.DisplayRecord
	}{
		{"empty", nil},
		{"mixed", sampleRecords()},
		{"all processed", []model.DisplayRecord{
			{ID: "1", Status: model.StatusProcessed},
			{ID: "2", Status: model.StatusProcessed},
		}},
	}

	for _, test := range tests {
		store := NewStore()
		store.SetRecords(test.records)

		counts := store.Counts()
		if counts.Total != counts.Processed+counts.Pending {
			t.Errorf("Counts [%s]: total %d != processed %d + pending %d",
				test.name, counts.Total, counts.Processed, counts.Pending)
		}
		if counts.Total != len(test.records) {
			t.Errorf("Counts [%s]: total %d, expected %d", test.name, counts.Total, len(test.records))
		}
	}
}

func TestStore_FilteredDefaultReturnsAllInOrder(t *testing.T) {
	store := NewStore()
	records := sampleRecords()
	store.SetRecords(records)

	filtered := store.Filtered()
	if !reflect.DeepEqual(filtered, records) {
		t.Errorf("Filtered() with defaults = %v, expected full collection %v", filtered, records)
	}
}

func TestStore_FilteredIdempotent(t *testing.T) {
	store := NewStore()
	store.SetRecords(sampleRecords())
	store.SetSearchTerm("in")
	store.SetStatusFilter(FilterProcessed)

	first := store.Filtered()
	second := store.Filtered()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Filtered() not idempotent: %v vs %v", first, second)
	}
}

func TestStore_SearchCaseInsensitive(t *testing.T) {
	tests := []struct {
		term    string
		matches bool
	}{
		{"incep", true},
		{"INCEP", true},
		{"Inception", true},
		{"xyz", false},
		{"", true},
	}

	store := NewStore()
	store.SetRecords([]model.DisplayRecord{{ID: "1", Title: "Inception", Status: model.StatusProcessed}})

	for _, test := range tests {
		store.SetSearchTerm(test.term)
		got := len(store.Filtered()) == 1
		if got != test.matches {
			t.Errorf("Filtered() with term '%s': matched=%v, expected %v", test.term, got, test.matches)
		}
	}
}

func TestStore_StatusFilter(t *testing.T) {
	store := NewStore()
	store.SetRecords(sampleRecords())

	tests := []struct {
		filter   StatusFilter
		expected []string
	}{
		{FilterAll, []string{"1", "2", "3"}},
		{FilterProcessed, []string{"1", "3"}},
		{FilterPending, []string{"2"}},
	}

	for _, test := range tests {
		store.SetStatusFilter(test.filter)
		var ids []string
		for _, record := range store.Filtered() {
			ids = append(ids, record.ID)
		}
		if !reflect.DeepEqual(ids, test.expected) {
			t.Errorf("Filtered() with filter %s = %v, expected %v", test.filter, ids, test.expected)
		}
	}
}

func TestStore_SearchAndFilterCombine(t *testing.T) {
	store := NewStore()
	store.SetRecords(sampleRecords())
	store.SetSearchTerm("in")
	store.SetStatusFilter(FilterProcessed)

	filtered := store.Filtered()
	if len(filtered) != 2 {
		t.Fatalf("Filtered() = %d records, expected 2", len(filtered))
	}
	for _, record := range filtered {
		if record.Status != model.StatusProcessed {
			t.Errorf("Filtered() returned %s record %s with processed filter", record.Status, record.ID)
		}
	}
}

func TestStore_SetRecordsKeepsViewState(t *testing.T) {
	store := NewStore()
	store.SetSearchTerm("dune")
	store.SetStatusFilter(FilterPending)

	store.SetRecords(sampleRecords())

	if store.SearchTerm() != "dune" {
		t.Errorf("SetRecords reset search term to '%s'", store.SearchTerm())
	}
	if store.StatusFilter() != FilterPending {
		t.Errorf("SetRecords reset status filter to %s", store.StatusFilter())
	}

	filtered := store.Filtered()
	if len(filtered) != 1 || filtered[0].ID != "2" {
		t.Errorf("Filtered() after reload = %v, expected only record 2", filtered)
	}
}

func TestStore_Flags(t *testing.T) {
	store := NewStore()

	if store.Loading() || store.Refreshing() {
		t.Error("New store should have no flags set")
	}

	store.BeginLoad()
	if !store.Loading() {
		t.Error("Loading() should be true after BeginLoad")
	}
	store.EndLoad()
	if store.Loading() {
		t.Error("Loading() should be false after EndLoad")
	}

	store.BeginRefresh()
	if !store.Refreshing() {
		t.Error("Refreshing() should be true after BeginRefresh")
	}
	store.EndRefresh()
	if store.Refreshing() {
		t.Error("Refreshing() should be false after EndRefresh")
	}
}

func TestStore_FlagsDoNotTouchRecords(t *testing.T) {
	store := NewStore()
	store.SetRecords(sampleRecords())

	store.BeginRefresh()
	store.EndRefresh()

	if counts := store.Counts(); counts.Total != 3 {
		t.Errorf("Counts().Total = %d after flag toggles, expected 3", counts.Total)
	}
}

func TestStatusFilter_String(t *testing.T) {
	tests := []struct {
		filter   StatusFilter
		expected string
	}{
		{FilterAll, "All"},
		{FilterProcessed, "Processed"},
		{FilterPending, "Pending"},
		{StatusFilter(99), "Unknown"},
	}

	for _, test := range tests {
		if test.filter.String() != test.expected {
			t.Errorf("StatusFilter(%d).String() = %s, expected %s", test.filter, test.filter.String(), test.expected)
		}
	}
}
