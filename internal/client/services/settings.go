package services

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/common"
)

// SettingsService holds app preferences for the running session.
type SettingsService interface {
	Get() models.Settings
	ToggleDarkMode() bool
	SetLanguage(lang string) (string, error)
	SetExportFormat(format string) (models.ExportFormat, error)
	Subscribe()
	CancelSubscription()
}

type settingsService struct {
	mu sync.RWMutex
	s  models.Settings
}

func NewSettingsService(initial models.Settings) SettingsService {
	return &settingsService{s: initial}
}

func (s *settingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.s
}

// ToggleDarkMode flips the theme and returns the new state.
func (s *settingsService) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.DarkMode = !s.s.DarkMode
	return s.s.DarkMode
}

func (s *settingsService) SetLanguage(lang string) (string, error) {
	l, ok := models.ParseLanguage(lang)
	if !ok {
		return "", fmt.Errorf("%w: unknown language %q", common.ErrorInvalidSetting, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Language = l
	return l, nil
}

func (s *settingsService) SetExportFormat(format string) (models.ExportFormat, error) {
	f, ok := models.ParseExportFormat(format)
	if !ok {
		return "", fmt.Errorf("%w: unknown export format %q", common.ErrorInvalidSetting, format)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.ExportFormat = f
	return f, nil
}

func (s *settingsService) Subscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Premium = true
}

func (s *settingsService) CancelSubscription() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Premium = false
}
