package library

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/rustizarr/dashboard/internal/catalog"
	"github.com/rustizarr/dashboard/internal/model"
)

// Operation identifies which backend interaction produced a Result
type Operation int

const (
	OpLoad Operation = iota
	OpRefresh
	OpScan
)

// String returns the operation name for logs and notices
func (op Operation) String() string {
	switch op {
	case OpLoad:
		return "load"
	case OpRefresh:
		return "refresh"
	case OpScan:
		return "scan"
	default:
		return "unknown"
	}
}

// Result describes the outcome of a completed operation. Err is nil on
// success; Total/Processed are only meaningful for loads and refreshes.
type Result struct {
	Op        Operation
	Err       error
	Total     int
	Processed int
}

// Service orchestrates backend calls against the catalog store. Each load
// or refresh carries a fresh request token; when requests overlap, a
// response that finishes after a newer request began is dropped, so a slow
// reply can never overwrite fresher records.
type Service struct {
	backend Backend
	store   *catalog.Store

	mu           sync.Mutex
	currentToken string
	onResult     func(Result)
}

// NewService creates a service projecting backend data into the store
func NewService(backend Backend, store *catalog.Store) *Service {
	return &Service{
		backend: backend,
		store:   store,
	}
}

// SetResultCallback sets the callback invoked after every completed
// operation, successful or not
func (s *Service) SetResultCallback(callback func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResult = callback
}

// Load fetches the library listing and replaces the store contents. It
// blocks until the backend answers; callers run it from a goroutine. On
// failure the store keeps its previous records and only the loading flag
// is cleared.
func (s *Service) Load(ctx context.Context) error {
	token := s.beginRequest()
	s.store.BeginLoad()
	defer s.store.EndLoad()

	entries, err := s.backend.FetchEntries(ctx)
	if err != nil {
		log.Printf("library: load failed: %v", err)
		s.notify(Result{Op: OpLoad, Err: err})
		return err
	}

	if !s.finishRequest(token) {
		log.Printf("library: dropping superseded load result (token %s)", token)
		return nil
	}

	records := buildRecords(entries)
	s.store.SetRecords(records)

	counts := s.store.Counts()
	log.Printf("library: loaded %d records (%d processed)", counts.Total, counts.Processed)
	s.notify(Result{Op: OpLoad, Total: counts.Total, Processed: counts.Processed})
	return nil
}

// Refresh asks the backend to rebuild its cache, then reloads the listing
// so the UI reflects the rebuilt data. The refreshing flag brackets the
// whole round trip; on any failure the store's records are untouched.
// Overlap with another refresh is not prevented here — the UI disables its
// refresh trigger while the flag is set.
func (s *Service) Refresh(ctx context.Context) error {
	token := s.beginRequest()
	s.store.BeginRefresh()
	defer s.store.EndRefresh()

	result, err := s.backend.Refresh(ctx)
	if err != nil {
		log.Printf("library: refresh failed: %v", err)
		s.notify(Result{Op: OpRefresh, Err: err})
		return err
	}

	entries, err := s.backend.FetchEntries(ctx)
	if err != nil {
		log.Printf("library: reload after refresh failed: %v", err)
		s.notify(Result{Op: OpRefresh, Err: err})
		return err
	}

	if !s.finishRequest(token) {
		log.Printf("library: dropping superseded refresh result (token %s)", token)
		return nil
	}

	s.store.SetRecords(buildRecords(entries))

	log.Printf("library: refresh done, %d records (%d processed)", result.Total, result.Processed)
	s.notify(Result{Op: OpRefresh, Total: result.Total, Processed: result.Processed})
	return nil
}

// Scan triggers a full processing scan on the backend. Fire and forget:
// no store mutation, only a completion notice.
func (s *Service) Scan(ctx context.Context) error {
	if err := s.backend.TriggerScan(ctx); err != nil {
		log.Printf("library: scan trigger failed: %v", err)
		s.notify(Result{Op: OpScan, Err: err})
		return err
	}

	log.Printf("library: scan triggered")
	s.notify(Result{Op: OpScan})
	return nil
}

// beginRequest issues a new token and makes it the newest request
func (s *Service) beginRequest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.currentToken = token
	return token
}

// finishRequest reports whether token still identifies the newest request.
// A false return means a later request superseded this one and its result
// must be discarded.
func (s *Service) finishRequest(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentToken != token {
		return false
	}
	s.currentToken = ""
	return true
}

// notify invokes the result callback if set
func (s *Service) notify(result Result) {
	s.mu.Lock()
	callback := s.onResult
	s.mu.Unlock()
	if callback != nil {
		callback(result)
	}
}

// buildRecords projects raw entries into display records, keeping order
func buildRecords(entries []model.LibraryEntry) []model.DisplayRecord {
	records := make([]model.DisplayRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, model.BuildRecord(entry))
	}
	return records
}
