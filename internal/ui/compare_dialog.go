package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/rustizarr/dashboard/internal/compare"
	"github.com/rustizarr/dashboard/internal/config"
	"github.com/rustizarr/dashboard/internal/library"
	"github.com/rustizarr/dashboard/internal/model"
)

// CompareDialog hosts the comparison view in a modal dialog with a mode
// switch. Closing the dialog ends the engine session.
type CompareDialog struct {
	engine       *compare.Engine
	settings     *config.Settings
	window       fyne.Window
	localization *Localization

	// UI components
	view       *CompareView
	titleLabel *widget.Label
	modeRadio  *widget.RadioGroup
	dialog     dialog.Dialog
}

// NewCompareDialog creates a comparison dialog bound to the engine
func NewCompareDialog(engine *compare.Engine, backend library.Backend, settings *config.Settings, localization *Localization, window fyne.Window) *CompareDialog {
	cd := &CompareDialog{
		engine:       engine,
		settings:     settings,
		window:       window,
		localization: localization,
	}

	cd.view = NewCompareView(engine, backend, localization)
	cd.createUI()

	// Redraw the view whenever the engine reports a state change. Drag
	// input arrives on the UI thread, so the refresh can run directly.
	engine.SetChangeCallback(func(session compare.Session) {
		cd.view.Refresh()
	})
	return cd
}

// createUI creates the dialog content
func (cd *CompareDialog) createUI() {
	cd.titleLabel = widget.NewLabel("")
	cd.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	cd.titleLabel.Alignment = fyne.TextAlignCenter

	pairedLabel := cd.localization.GetText(KeyModePaired)
	sliderLabel := cd.localization.GetText(KeyModeSlider)
	cd.modeRadio = widget.NewRadioGroup([]string{pairedLabel, sliderLabel}, func(selected string) {
		mode := compare.ModePaired
		if selected == sliderLabel {
			mode = compare.ModeSlider
		}
		cd.engine.SetMode(mode)
		cd.settings.SetCompareMode(mode.String())
		cd.view.Refresh()
	})
	cd.modeRadio.Horizontal = true

	content := container.NewBorder(
		container.NewVBox(cd.titleLabel, container.NewCenter(cd.modeRadio)),
		nil,
		nil,
		nil,
		cd.view,
	)

	cd.dialog = dialog.NewCustom(
		cd.localization.GetText(KeyCompare),
		cd.localization.GetText(KeyCancel),
		content,
		cd.window,
	)
	cd.dialog.SetOnClosed(func() {
		cd.engine.Close()
	})
	cd.dialog.Resize(fyne.NewSize(CompareDialogWidth, CompareDialogHeight))
}

// Show opens a comparison session for the record and displays the dialog.
// Records without processed artwork are rejected by the engine and the
// dialog stays closed.
func (cd *CompareDialog) Show(record model.DisplayRecord) bool {
	if !cd.engine.Open(record) {
		return false
	}

	// Restore the last used layout mode
	if cd.settings.GetCompareMode() == compare.ModeSlider.String() {
		cd.engine.SetMode(compare.ModeSlider)
		cd.modeRadio.SetSelected(cd.localization.GetText(KeyModeSlider))
	} else {
		cd.modeRadio.SetSelected(cd.localization.GetText(KeyModePaired))
	}

	cd.titleLabel.SetText(record.Title + " (" + record.Year + ")")
	cd.view.SetRecord(record)
	cd.dialog.Show()
	return true
}
