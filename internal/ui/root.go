package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/rustizarr/dashboard/internal/catalog"
	"github.com/rustizarr/dashboard/internal/compare"
	"github.com/rustizarr/dashboard/internal/config"
	"github.com/rustizarr/dashboard/internal/library"
	"github.com/rustizarr/dashboard/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window          fyne.Window
	searchEntry     *widget.Entry
	filterSelect    *widget.Select
	countsLabel     *widget.Label
	refreshBtn      *widget.Button
	scanBtn         *widget.Button
	recordList      *widget.List
	filteredRecords []model.DisplayRecord

	store        *catalog.Store
	service      *library.Service
	engine       *compare.Engine
	backend      library.Backend
	settings     *config.Settings
	localization *Localization

	compareDialog *CompareDialog

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, service *library.Service, store *catalog.Store, engine *compare.Engine, backend library.Backend) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        store,
		service:      service,
		engine:       engine,
		backend:      backend,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with library service: %v", ui.service != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for completed backend operations
	ui.service.SetResultCallback(ui.onServiceResult)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchRecords))
	ui.searchEntry.OnChanged = ui.onSearchChanged

	// Create status filter
	filterOptions := []string{
		catalog.FilterAll.String(),
		catalog.FilterProcessed.String(),
		catalog.FilterPending.String(),
	}
	ui.filterSelect = widget.NewSelect(filterOptions, ui.onFilterChanged)
	ui.filterSelect.SetSelected(catalog.FilterAll.String())

	// Create counts label
	ui.countsLabel = widget.NewLabel("")
	ui.countsLabel.TextStyle = fyne.TextStyle{Monospace: true}

	// Create action buttons
	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)
	ui.scanBtn = widget.NewButton(ui.localization.GetText(KeyScan), ui.onScanClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	// Create top panel (search row)
	actionCluster := container.NewHBox(ui.filterSelect, ui.refreshBtn, ui.scanBtn)
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), actionCluster, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), actionCluster, ui.searchEntry)
	}

	// Create notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Combine search row, notification panel and counts at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.countsLabel)

	// Create record list
	ui.recordList = widget.NewList(
		func() int {
			return len(ui.filteredRecords)
		},
		func() fyne.CanvasObject { return ui.createRecordItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateRecordItem(id, obj) },
	)

	// Create the comparison dialog
	ui.compareDialog = NewCompareDialog(ui.engine, ui.backend, ui.settings, ui.localization, ui.window)

	// Create main layout
	content := container.NewBorder(
		topCombined,   // top
		nil,           // bottom
		nil,           // left
		nil,           // right
		ui.recordList, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchRecords))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.scanBtn.SetText(ui.localization.GetText(KeyScan))

	// Refresh record list to update row texts
	ui.recordList.Refresh()
}

// LoadInitial kicks off the initial catalog load in the background
func (ui *RootUI) LoadInitial() {
	ui.showNotification(ui.localization.GetText(KeyLoading), true)
	go func() {
		if err := ui.service.Load(context.Background()); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	}()
}

// onSearchChanged handles live search input
func (ui *RootUI) onSearchChanged(term string) {
	ui.store.SetSearchTerm(term)
	ui.updateFilteredRecords()
	ui.recordList.Refresh()
}

// onFilterChanged handles status filter selection
func (ui *RootUI) onFilterChanged(selected string) {
	filter := catalog.FilterAll
	switch selected {
	case catalog.FilterProcessed.String():
		filter = catalog.FilterProcessed
	case catalog.FilterPending.String():
		filter = catalog.FilterPending
	}

	ui.store.SetStatusFilter(filter)
	ui.updateFilteredRecords()
	ui.recordList.Refresh()
}

// onRefreshClick handles the refresh button click
func (ui *RootUI) onRefreshClick() {
	if ui.store.Refreshing() {
		log.Printf("Refresh already in flight, ignoring click")
		return
	}

	ui.refreshBtn.Disable()
	ui.showNotification(ui.localization.GetText(KeyRefreshing), true)

	go func() {
		if err := ui.service.Refresh(context.Background()); err != nil {
			log.Printf("Refresh failed: %v", err)
		}
	}()
}

// onScanClick handles the scan button click
func (ui *RootUI) onScanClick() {
	go func() {
		if err := ui.service.Scan(context.Background()); err != nil {
			log.Printf("Scan trigger failed: %v", err)
		}
	}()
}

// onServiceResult handles completed backend operations. It runs on the
// service goroutine, so every UI mutation is marshalled through fyne.Do.
func (ui *RootUI) onServiceResult(result library.Result) {
	log.Printf("Service result: op=%s err=%v total=%d processed=%d",
		result.Op, result.Err, result.Total, result.Processed)

	fyne.Do(func() {
		ui.refreshBtn.Enable()
		ui.updateFilteredRecords()
		ui.updateCountsLabel()
		ui.recordList.Refresh()

		switch {
		case result.Err != nil:
			ui.showOperationError(result)
		case result.Op == library.OpRefresh:
			ui.showNotification(ui.localization.GetText(KeyRefreshDone), false)
		case result.Op == library.OpScan:
			ui.showNotification(ui.localization.GetText(KeyScanStarted), false)
		default:
			ui.hideNotification()
		}
	})
}

// showOperationError reflects a failed operation in the notification panel
func (ui *RootUI) showOperationError(result library.Result) {
	var message string
	switch result.Op {
	case library.OpRefresh:
		message = ui.localization.GetText(KeyRefreshFailed)
	case library.OpScan:
		message = ui.localization.GetText(KeyScanFailed)
	default:
		message = ui.localization.GetText(KeyLoadFailed)
	}
	ui.showNotification(IconError+" "+message+": "+result.Err.Error(), false)
}

// showNotification displays a message in the notification panel under the
// search row. When spinning is true, a spinner is shown to indicate
// background activity. Must run on the UI thread; background callers go
// through fyne.Do.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	settingsDialog := NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// The server URL may have changed; reload against the new backend
		ui.LoadInitial()
	})
	settingsDialog.Show()
}

// createRecordItem creates a new record item widget
func (ui *RootUI) createRecordItem() fyne.CanvasObject {
	// Create placeholder record row - will be updated in updateRecordItem
	placeholder := model.DisplayRecord{
		ID:    "placeholder",
		Title: "Loading...",
	}

	recordRow := NewRecordRow(placeholder, ui.localization)
	recordRow.SetCompareCallback(ui.onCompareRecord)
	return recordRow
}

// updateRecordItem updates a record item with current data
func (ui *RootUI) updateRecordItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.filteredRecords) {
		return
	}

	if recordRow, ok := item.(*RecordRow); ok {
		recordRow.SetCompareCallback(ui.onCompareRecord)
		recordRow.UpdateRecord(ui.filteredRecords[id])
	}
}

// onCompareRecord opens the comparison dialog for a record
func (ui *RootUI) onCompareRecord(record model.DisplayRecord) {
	log.Printf("Opening comparison for record %s (%s)", record.ID, record.Title)
	if !ui.compareDialog.Show(record) {
		log.Printf("Comparison rejected for record %s: not processed", record.ID)
	}
}

// updateFilteredRecords snapshots the store's filtered view for the list
func (ui *RootUI) updateFilteredRecords() {
	ui.filteredRecords = ui.store.Filtered()
}

// updateCountsLabel reflects the store counts in the header
func (ui *RootUI) updateCountsLabel() {
	counts := ui.store.Counts()
	ui.countsLabel.SetText(fmt.Sprintf(CountsLabelFormat, counts.Total, counts.Processed, counts.Pending))
}
