package library

import (
	"context"

	"github.com/rustizarr/dashboard/internal/model"
)

// Backend defines the operations the dashboard needs from the library
// server. Client implements it against the real HTTP API; tests substitute
// fakes.
type Backend interface {
	// FetchEntries retrieves the full library listing
	FetchEntries(ctx context.Context) ([]model.LibraryEntry, error)

	// Refresh asks the server to rebuild its library cache and reports the
	// resulting totals
	Refresh(ctx context.Context) (*RefreshResult, error)

	// TriggerScan starts a full processing scan; the report body is ignored
	TriggerScan(ctx context.Context) error

	// ImageURL returns the processed poster URL for a record
	ImageURL(id string) string

	// OriginalImageURL returns the untouched artwork URL for a record
	OriginalImageURL(id string) string
}
