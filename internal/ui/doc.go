package ui

// Package ui contains the Fyne-based desktop user interface for the dashboard.
// It wires user interactions to the library service and renders the record
// list, counts, notifications, settings, and the artwork comparison view.
// All UI strings are localized via Localization.
