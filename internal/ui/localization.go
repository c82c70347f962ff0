package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyRefresh         = "refresh"
	KeyScan            = "scan"
	KeyCompare         = "compare"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyServerURL       = "server_url"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySearchRecords   = "search_records"
	KeyLoading         = "loading"
	KeyRefreshing      = "refreshing"
	KeyLoadFailed      = "load_failed"
	KeyRefreshFailed   = "refresh_failed"
	KeyRefreshDone     = "refresh_done"
	KeyScanStarted     = "scan_started"
	KeyScanFailed      = "scan_failed"
	KeySettingsSaved   = "settings_saved"
	KeyStatusProcessed = "status_processed"
	KeyStatusPending   = "status_pending"
	KeyModePaired      = "mode_paired"
	KeyModeSlider      = "mode_slider"
	KeyOriginal        = "original"
	KeyProcessed       = "processed"
	KeyNewBadge        = "new_badge"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Artwork Dashboard",
		KeyRefresh:         "Refresh",
		KeyScan:            "Scan",
		KeyCompare:         "Compare",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyServerURL:       "Server URL",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySearchRecords:   "Search titles...",
		KeyLoading:         "Loading library...",
		KeyRefreshing:      "Refreshing library cache...",
		KeyLoadFailed:      "Failed to load library",
		KeyRefreshFailed:   "Refresh failed",
		KeyRefreshDone:     "Library refreshed",
		KeyScanStarted:     "Scan started",
		KeyScanFailed:      "Scan failed",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyStatusProcessed: "Processed",
		KeyStatusPending:   "Pending",
		KeyModePaired:      "Side by side",
		KeyModeSlider:      "Slider",
		KeyOriginal:        "Original",
		KeyProcessed:       "Processed",
		KeyNewBadge:        "NEW",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:        "Tableau de bord",
		KeyRefresh:         "Actualiser",
		KeyScan:            "Analyser",
		KeyCompare:         "Comparer",
		KeySettings:        "Paramètres",
		KeyFile:            "Fichier",
		KeyLanguage:        "Langue",
		KeyServerURL:       "URL du serveur",
		KeySave:            "Enregistrer",
		KeyCancel:          "Annuler",
		KeySearchRecords:   "Rechercher un titre...",
		KeyLoading:         "Chargement de la bibliothèque...",
		KeyRefreshing:      "Actualisation du cache...",
		KeyLoadFailed:      "Échec du chargement",
		KeyRefreshFailed:   "Échec de l'actualisation",
		KeyRefreshDone:     "Bibliothèque actualisée",
		KeyScanStarted:     "Analyse lancée",
		KeyScanFailed:      "Échec de l'analyse",
		KeySettingsSaved:   "Paramètres enregistrés !",
		KeyStatusProcessed: "Traité",
		KeyStatusPending:   "En attente",
		KeyModePaired:      "Côte à côte",
		KeyModeSlider:      "Curseur",
		KeyOriginal:        "Original",
		KeyProcessed:       "Traité",
		KeyNewBadge:        "NOUVEAU",
	}
}
