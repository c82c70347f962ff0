package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetServerURL()
	if url != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, url)
	}

	// Test setting custom value
	settings.SetServerURL("http://media-box:3000")
	if got := settings.GetServerURL(); got != "http://media-box:3000" {
		t.Errorf("Expected server URL http://media-box:3000, got %s", got)
	}

	// Trailing slashes are stripped on write
	settings.SetServerURL("http://media-box:3000/")
	if got := settings.GetServerURL(); got != "http://media-box:3000" {
		t.Errorf("Trailing slash should be stripped, got %s", got)
	}

	// Empty value defaults back
	settings.SetServerURL("")
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Empty URL should default to %s, got %s", DefaultServerURL, got)
	}
}

func TestServerURLEnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetServerURL("http://stored:3000")
	t.Setenv(EnvServerURL, "http://from-env:4000/")

	if got := settings.GetServerURL(); got != "http://from-env:4000" {
		t.Errorf("Environment should override stored URL, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("fr")
	if got := settings.GetLanguage(); got != "fr" {
		t.Errorf("Expected language 'fr', got %s", got)
	}
}

func TestCompareMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetCompareMode(); mode != "" {
		t.Errorf("Expected empty compare mode before any session, got %s", mode)
	}

	settings.SetCompareMode("slider")
	if got := settings.GetCompareMode(); got != "slider" {
		t.Errorf("Expected compare mode 'slider', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "fr"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
