package config

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL   = "server_url"
	KeyLanguage    = "app_language"
	KeyCompareMode = "compare_mode"
)

// Default values
const (
	DefaultServerURL = "http://127.0.0.1:3000"
	DefaultLanguage  = "system"
)

// EnvServerURL overrides the stored server URL when set. Loaded from the
// environment or a .env file at startup.
const EnvServerURL = "SERVER_URL"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the backend server URL. The SERVER_URL environment
// variable wins over the stored preference; trailing slashes are stripped
// so URL joining stays predictable.
func (s *Settings) GetServerURL() string {
	if env := os.Getenv(EnvServerURL); env != "" {
		return strings.TrimRight(env, "/")
	}
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return strings.TrimRight(url, "/")
}

// SetServerURL sets the backend server URL
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(url, "/"))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCompareMode returns the last used comparison mode name
func (s *Settings) GetCompareMode() string {
	return s.app.Preferences().String(KeyCompareMode)
}

// SetCompareMode remembers the comparison mode between sessions
func (s *Settings) SetCompareMode(mode string) {
	s.app.Preferences().SetString(KeyCompareMode, mode)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}
