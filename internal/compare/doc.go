package compare

// Package compare drives the before/after artwork comparison: one session
// per selected record, a paired or slider layout mode, and the drag state
// machine translating pointer coordinates into a clamped divider position.
