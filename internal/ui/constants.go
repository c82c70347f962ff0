package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconScan     = "🔍"
	IconCompare  = "⇄"
	IconClose    = "×"
	IconError    = "❌"
	IconNew      = "✨"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CountsLabelFormat  = "%d total · %d processed · %d pending"
)

// Layout sizing (RecordRow / lists)
const (
	StatusLabelWidth float32 = 96
	MetaLabelWidth   float32 = 140
	RatingLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 56
)

// Comparison view sizing
const (
	CompareDialogWidth  float32 = 720
	CompareDialogHeight float32 = 520
	CompareImageHeight  float32 = 400
	DividerWidth        float32 = 1
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
