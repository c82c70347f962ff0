package catalog

// Package catalog holds the in-memory record collection together with the
// transient view state (search term, status filter, loading/refreshing
// flags) and derives filtered views and counts from it on demand.
