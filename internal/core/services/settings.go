package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCutterStore          = "cutter.store"
	KeyCutterTablePath      = "cutter.table_path"
	KeyCutterSuffix         = "cutter.suffix"
	KeyCutterFoldDiacritics = "cutter.fold_diacritics"
	KeyRulesPackPath        = "rules.pack_path"
	KeyRulesOptionsPath     = "rules.options_path"
	KeyRulesWatch           = "rules.watch"
	KeyLogVerbose           = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Cutter: domain.CutterSettings{
			Store:          s.getTableStore(defaults.Cutter.Store),
			TablePath:      s.configStore.GetString(KeyCutterTablePath),
			Suffix:         s.configStore.GetString(KeyCutterSuffix),
			FoldDiacritics: s.getBool(KeyCutterFoldDiacritics, defaults.Cutter.FoldDiacritics),
		},
		Rules: domain.RulesSettings{
			PackPath:    s.configStore.GetString(KeyRulesPackPath),
			OptionsPath: s.configStore.GetString(KeyRulesOptionsPath),
			Watch:       s.getBool(KeyRulesWatch, defaults.Rules.Watch),
		},
		Verbose: s.getBool(KeyLogVerbose, defaults.Verbose),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyCutterStore, settings.Cutter.Store.String()},
		{KeyCutterTablePath, settings.Cutter.TablePath},
		{KeyCutterSuffix, settings.Cutter.Suffix},
		{KeyCutterFoldDiacritics, settings.Cutter.FoldDiacritics},
		{KeyRulesPackPath, settings.Rules.PackPath},
		{KeyRulesOptionsPath, settings.Rules.OptionsPath},
		{KeyRulesWatch, settings.Rules.Watch},
		{KeyLogVerbose, settings.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Keys lists the recognised config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyCutterStore,
		KeyCutterTablePath,
		KeyCutterSuffix,
		KeyCutterFoldDiacritics,
		KeyRulesPackPath,
		KeyRulesOptionsPath,
		KeyRulesWatch,
		KeyLogVerbose,
	}
}

// Set parses value for key, checks the resulting settings and stores it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var typed any = value
	switch key {
	case KeyCutterStore:
		settings.Cutter.Store = domain.TableStore(value)
	case KeyCutterTablePath:
		settings.Cutter.TablePath = value
	case KeyCutterSuffix:
		settings.Cutter.Suffix = value
	case KeyRulesPackPath:
		settings.Rules.PackPath = value
	case KeyRulesOptionsPath:
		settings.Rules.OptionsPath = value
	case KeyCutterFoldDiacritics, KeyRulesWatch, KeyLogVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		typed = b
	default:
		return fmt.Errorf("%w: setting %q", domain.ErrNotFound, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTableStore(defaultVal domain.TableStore) domain.TableStore {
	val := domain.TableStore(s.configStore.GetString(KeyCutterStore))
	if !val.IsValid() {
		return defaultVal
	}
	return val
}
