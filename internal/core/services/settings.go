package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/computor-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDisplayPrecision = "display.precision"
	keyDisplayPretty    = "display.pretty"
	keyParserStrict     = "parser.strict"
	keyHistoryEnabled   = "history.enabled"
	keyHistoryLimit     = "history.limit"
)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	keyDisplayPrecision,
	keyDisplayPretty,
	keyParserStrict,
	keyHistoryEnabled,
	keyHistoryLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or mistyped values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := loadSettings(s.configStore)
	return &settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyDisplayPrecision, settings.Display.Precision); err != nil {
		return fmt.Errorf("save display precision: %w", err)
	}
	if err := s.configStore.Set(keyDisplayPretty, settings.Display.Pretty); err != nil {
		return fmt.Errorf("save display pretty: %w", err)
	}
	if err := s.configStore.Set(keyParserStrict, settings.Parser.Strict); err != nil {
		return fmt.Errorf("save parser strict: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}

	return nil
}

// Set parses value according to the type of key, validates the resulting
// settings and persists the single key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var parsed any
	switch key {
	case keyDisplayPrecision:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.Display.Precision = n
		parsed = n
	case keyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		settings.History.Limit = n
		parsed = n
	case keyDisplayPretty, keyParserStrict, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a stored key so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if !isSettingKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// loadSettings reads settings from the store, applying defaults for missing
// or invalid values.
func loadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()
	if store == nil {
		return settings
	}

	settings.Display.Precision = getInt(store, keyDisplayPrecision, settings.Display.Precision)
	if settings.Display.Precision < -1 || settings.Display.Precision > domain.MaxPrecision {
		settings.Display.Precision = domain.DefaultAppSettings().Display.Precision
	}
	settings.Display.Pretty = getBool(store, keyDisplayPretty, settings.Display.Pretty)
	settings.Parser.Strict = getBool(store, keyParserStrict, settings.Parser.Strict)
	settings.History.Enabled = getBool(store, keyHistoryEnabled, settings.History.Enabled)
	settings.History.Limit = getInt(store, keyHistoryLimit, settings.History.Limit)
	if settings.History.Limit <= 0 {
		settings.History.Limit = domain.DefaultAppSettings().History.Limit
	}

	return settings
}

func getInt(store driven.ConfigStore, key string, defaultVal int) int {
	val, exists := store.Get(key)
	if !exists {
		return defaultVal
	}
	switch val.(type) {
	case int, int64:
		return store.GetInt(key)
	default:
		return defaultVal
	}
}

func getBool(store driven.ConfigStore, key string, defaultVal bool) bool {
	val, exists := store.Get(key)
	if !exists {
		return defaultVal
	}
	if _, ok := val.(bool); !ok {
		return defaultVal
	}
	return store.GetBool(key)
}
