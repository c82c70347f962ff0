package catalog

import (
	"strings"
	"sync"

	"github.com/rustizarr/dashboard/internal/model"
)

// StatusFilter enumerates visible subsets of records in the UI
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterProcessed
	FilterPending
)

// String returns the display name for a status filter
func (sf StatusFilter) String() string {
	switch sf {
	case FilterAll:
		return "All"
	case FilterProcessed:
		return "Processed"
	case FilterPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// Counts summarizes the unfiltered record collection
type Counts struct {
	Total     int
	Processed int
	Pending   int
}

// Store owns the full record collection plus the view state the list is
// rendered from. Filtered views and counts are computed fresh on every
// query, so they always reflect the latest mutation. Network goroutines
// write through the setters while the UI thread reads, hence the lock.
type Store struct {
	mu           sync.RWMutex
	records      []model.DisplayRecord
	searchTerm   string
	statusFilter StatusFilter
	loading      bool
	refreshing   bool
}

// NewStore creates an empty store with default view state
func NewStore() *Store {
	return &Store{}
}

// SetRecords replaces the whole collection, keeping arrival order. Search
// term and status filter deliberately survive reloads.
func (s *Store) SetRecords(records []model.DisplayRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]model.DisplayRecord, len(records))
	copy(s.records, records)
}

// Records returns a copy of the full, unfiltered collection
func (s *Store) Records() []model.DisplayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]model.DisplayRecord, len(s.records))
	copy(records, s.records)
	return records
}

// SetSearchTerm updates the live search term
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// SearchTerm returns the current search term
func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// SetStatusFilter updates the status filter
func (s *Store) SetStatusFilter(filter StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusFilter = filter
}

// StatusFilter returns the current status filter
func (s *Store) StatusFilter() StatusFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusFilter
}

// Filtered returns the records matching the current search term and status
// filter, in collection order. The view is derived on every call rather
// than cached, so it can never lag behind the state it is derived from.
func (s *Store) Filtered() []model.DisplayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.searchTerm)
	var filtered []model.DisplayRecord
	for _, record := range s.records {
		if !s.matchesFilter(record) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(record.Title), term) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// matchesFilter reports whether a record passes the status filter.
// Callers must hold the lock.
func (s *Store) matchesFilter(record model.DisplayRecord) bool {
	switch s.statusFilter {
	case FilterProcessed:
		return record.Status == model.StatusProcessed
	case FilterPending:
		return record.Status == model.StatusPending
	default:
		return true
	}
}

// Counts tallies the unfiltered collection. Total is always the sum of
// Processed and Pending.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := Counts{Total: len(s.records)}
	for _, record := range s.records {
		if record.Status.IsProcessed() {
			counts.Processed++
		} else {
			counts.Pending++
		}
	}
	return counts
}

// BeginLoad marks the initial catalog load as in flight
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
}

// EndLoad clears the loading flag
func (s *Store) EndLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// Loading returns true while a catalog load is in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// BeginRefresh marks a backend refresh as in flight. The store does not
// reject overlapping refreshes; callers are expected to disable their
// refresh trigger while Refreshing() is true.
func (s *Store) BeginRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshing = true
}

// EndRefresh clears the refreshing flag
func (s *Store) EndRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshing = false
}

// Refreshing returns true while a backend refresh is in flight
func (s *Store) Refreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing
}
