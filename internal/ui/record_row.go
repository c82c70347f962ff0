package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rustizarr/dashboard/internal/model"
)

// RecordRow represents a compact library record row widget
type RecordRow struct {
	widget.BaseWidget

	record       model.DisplayRecord
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	yearLabel   *widget.Label
	metaLabel   *widget.Label
	ratingLabel *widget.Label
	statusLabel *widget.Label
	newBadge    *widget.Label

	// Action buttons
	compareBtn *widget.Button

	// Callbacks
	onCompare func(record model.DisplayRecord)
}

// NewRecordRow creates a new record row widget
func NewRecordRow(record model.DisplayRecord, localization *Localization) *RecordRow {
	rr := &RecordRow{
		record:       record,
		localization: localization,
	}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	rr.updateFromRecord()
	return rr
}

// SetCompareCallback sets the callback for the compare button
func (rr *RecordRow) SetCompareCallback(onCompare func(record model.DisplayRecord)) {
	rr.onCompare = onCompare
}

// UpdateRecord updates the row with new record data
func (rr *RecordRow) UpdateRecord(record model.DisplayRecord) {
	rr.record = record
	rr.updateFromRecord()
	rr.Refresh()
}

// createUI creates the UI components
func (rr *RecordRow) createUI() {
	rr.titleLabel = widget.NewLabel("")
	rr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	rr.titleLabel.Alignment = fyne.TextAlignLeading

	rr.yearLabel = widget.NewLabel("")
	rr.yearLabel.Alignment = fyne.TextAlignLeading

	rr.metaLabel = widget.NewLabel("")
	rr.metaLabel.Alignment = fyne.TextAlignTrailing
	rr.metaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rr.ratingLabel = widget.NewLabel("")
	rr.ratingLabel.Alignment = fyne.TextAlignTrailing

	rr.statusLabel = widget.NewLabel("")
	rr.statusLabel.Alignment = fyne.TextAlignTrailing

	rr.newBadge = widget.NewLabel(rr.localization.GetText(KeyNewBadge))
	rr.newBadge.Importance = widget.HighImportance
	rr.newBadge.Hide()

	rr.compareBtn = widget.NewButton(rr.localization.GetText(KeyCompare), func() {
		currentRecord := rr.record
		if rr.onCompare != nil {
			rr.onCompare(currentRecord)
		} else {
			log.Printf("onCompare callback is nil for record %s", currentRecord.ID)
		}
	})
	rr.compareBtn.Importance = widget.MediumImportance
}

// updateFromRecord updates UI components based on record state
func (rr *RecordRow) updateFromRecord() {
	rr.titleLabel.SetText(rr.record.Title)
	rr.yearLabel.SetText(rr.record.Year)
	rr.metaLabel.SetText(rr.record.DisplayMeta())
	rr.ratingLabel.SetText(rr.record.DisplayRating())

	// Update status label color and text
	switch rr.record.Status {
	case model.StatusProcessed:
		rr.statusLabel.Importance = widget.SuccessImportance
		rr.statusLabel.SetText(rr.localization.GetText(KeyStatusProcessed))
	default:
		rr.statusLabel.Importance = widget.WarningImportance
		rr.statusLabel.SetText(rr.localization.GetText(KeyStatusPending))
	}

	if rr.record.IsRecentlyAdded() {
		rr.newBadge.SetText(IconNew + " " + rr.localization.GetText(KeyNewBadge))
		rr.newBadge.Show()
	} else {
		rr.newBadge.Hide()
	}

	// Only processed records have two artwork variants to compare
	if rr.record.Status.IsProcessed() {
		rr.compareBtn.Enable()
	} else {
		rr.compareBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (rr *RecordRow) CreateRenderer() fyne.WidgetRenderer {
	return &recordRowRenderer{recordRow: rr}
}

// recordRowRenderer renders the record row widget
type recordRowRenderer struct {
	recordRow *RecordRow
	layout    *fyne.Container
}

// Layout arranges the components
func (r *recordRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *recordRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *recordRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *recordRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *recordRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *recordRowRenderer) createLayout() {
	rr := r.recordRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Left side: title, year, and the recent badge
	leftSide := container.NewHBox(rr.yearLabel, rr.newBadge)
	titleCluster := container.NewBorder(nil, nil, nil, leftSide, rr.titleLabel)

	// Right side: metadata, rating, status, compare action
	rightSide := container.NewHBox(
		fixedWidth(MetaLabelWidth, rr.metaLabel),
		fixedWidth(RatingLabelWidth, rr.ratingLabel),
		fixedWidth(StatusLabelWidth, rr.statusLabel),
		rr.compareBtn,
	)

	separator := widget.NewSeparator()

	mainContent := container.NewBorder(nil, nil, nil, rightSide, titleCluster)

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
