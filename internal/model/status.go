package model

// ProcessStatus classifies a library item by whether the artwork pipeline
// has already handled it
type ProcessStatus string

const (
	// StatusProcessed means the item carries the pipeline's marker label
	StatusProcessed ProcessStatus = "processed"

	// StatusPending means the item is still waiting for the pipeline
	StatusPending ProcessStatus = "pending"
)

// String returns the string representation of ProcessStatus
func (ps ProcessStatus) String() string {
	return string(ps)
}

// IsProcessed returns true if the item has been handled by the pipeline
func (ps ProcessStatus) IsProcessed() bool {
	return ps == StatusProcessed
}
