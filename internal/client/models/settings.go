package models

import "strings"

// ExportFormat is the default format used when exporting a document.
type ExportFormat string

const (
	ExportPDF ExportFormat = "PDF"
	ExportJPG ExportFormat = "JPG"
	ExportTXT ExportFormat = "TXT"
)

// ExportFormats lists the selectable export formats.
var ExportFormats = []ExportFormat{ExportPDF, ExportJPG, ExportTXT}

// Languages lists the selectable UI languages.
var Languages = []string{"English", "Spanish", "French", "German", "Chinese", "Japanese"}

// Settings are app preferences. They are independent of the document store.
type Settings struct {
	DarkMode     bool
	Language     string
	ExportFormat ExportFormat
	Premium      bool
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Language:     "English",
		ExportFormat: ExportPDF,
	}
}

// ParseExportFormat matches s against ExportFormats, ignoring case.
func ParseExportFormat(s string) (ExportFormat, bool) {
	for _, f := range ExportFormats {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// ParseLanguage matches s against Languages, ignoring case, and returns the
// canonical spelling.
func ParseLanguage(s string) (string, bool) {
	for _, l := range Languages {
		if strings.EqualFold(l, strings.TrimSpace(s)) {
			return l, true
		}
	}
	return "", false
}
