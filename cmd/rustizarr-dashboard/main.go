package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/rustizarr/dashboard/internal/catalog"
	"github.com/rustizarr/dashboard/internal/compare"
	"github.com/rustizarr/dashboard/internal/config"
	"github.com/rustizarr/dashboard/internal/library"
	"github.com/rustizarr/dashboard/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.rustizarr.dashboard")
	myWindow := myApp.NewWindow("Artwork Dashboard")
	myWindow.Resize(fyne.NewSize(1000, 700))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := library.NewClient(settings.GetServerURL())
	store := catalog.NewStore()
	service := library.NewService(client, store)
	engine := compare.NewEngine()

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, service, store, engine, client)
	rootUI.LoadInitial()

	// Show and run
	myWindow.ShowAndRun()
}
