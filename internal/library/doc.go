package library

// Package library talks to the artwork backend: it fetches the library
// listing, triggers cache refreshes and full scans, and projects the
// results into the catalog store. All operations are transport-level
// best-effort; a failed call leaves the store exactly as it was.
