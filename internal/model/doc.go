package model

// Package model defines the domain data structures of the dashboard: raw
// library entries as the backend serves them, the normalized display
// records the UI renders, and the processing-status classification derived
// from the backend's label convention.
