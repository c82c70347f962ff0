package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/rustizarr/dashboard/internal/catalog"
	"github.com/rustizarr/dashboard/internal/compare"
	"github.com/rustizarr/dashboard/internal/config"
	"github.com/rustizarr/dashboard/internal/library"
	"github.com/rustizarr/dashboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.rustizarr.dashboard"
	AppName = "Artwork Dashboard"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Optional .env file for SERVER_URL and friends
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

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
