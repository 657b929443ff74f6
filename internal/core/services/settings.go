package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyPassagesPerChapter = "check.passages_per_chapter"
	KeyTargetWords        = "check.target_words"
	KeyDelaySeconds       = "check.delay_seconds"
	KeyMaxRetries         = "check.max_retries"
	KeyFormat             = "check.format"
	KeySearchEndpoint     = "search.endpoint"
	KeySearchUserAgent    = "search.user_agent"
	KeySearchTimeout      = "search.timeout_seconds"
	KeyCacheMode          = "cache.mode"
	KeyCacheDir           = "cache.dir"
)

// SettingsService manages application settings.
// Stored values are overlaid on the defaults; invalid stored values fall
// back to the default rather than failing the run.
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
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Check: domain.CheckSettings{
			PassagesPerChapter: s.getPositiveInt(KeyPassagesPerChapter, defaults.Check.PassagesPerChapter),
			TargetWords:        s.getPositiveInt(KeyTargetWords, defaults.Check.TargetWords),
			Delay:              s.getSeconds(KeyDelaySeconds, defaults.Check.Delay, true),
			MaxRetries:         s.getNonNegativeInt(KeyMaxRetries, defaults.Check.MaxRetries),
			Format:             s.getFormat(defaults.Check.Format),
		},
		Search: domain.SearchSettings{
			Endpoint:    s.getString(KeySearchEndpoint, defaults.Search.Endpoint),
			UserAgent:   s.getString(KeySearchUserAgent, defaults.Search.UserAgent),
			Timeout:     s.getSeconds(KeySearchTimeout, defaults.Search.Timeout, false),
			BackoffStep: defaults.Search.BackoffStep,
		},
		Cache: domain.CacheSettings{
			Mode: s.getCacheMode(defaults.Cache.Mode),
			Dir:  s.configStore.GetString(KeyCacheDir), // empty means the default data directory
		},
		Extraction: defaults.Extraction,
	}

	return settings, nil
}

// Set validates a single value and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var parsed any
	switch key {
	case KeyPassagesPerChapter, KeyTargetWords:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n
	case KeyMaxRetries:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = n
	case KeyDelaySeconds, KeySearchTimeout:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) || (key == KeySearchTimeout && f == 0) {
			return fmt.Errorf("%w: %s must be a number of seconds, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = f
	case KeyFormat:
		if !domain.OutputFormat(value).IsValid() {
			return fmt.Errorf("%w: %s must be text or json, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = value
	case KeyCacheMode:
		if !domain.CacheMode(value).IsValid() {
			return fmt.Errorf("%w: %s must be off, memory or sqlite, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = value
	case KeySearchEndpoint:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("%w: %s must be an http(s) URL, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = value
	case KeySearchUserAgent, KeyCacheDir:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyPassagesPerChapter,
		KeyTargetWords,
		KeyDelaySeconds,
		KeyMaxRetries,
		KeyFormat,
		KeySearchEndpoint,
		KeySearchUserAgent,
		KeySearchTimeout,
		KeyCacheMode,
		KeyCacheDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

// getNonNegativeInt treats a stored 0 as a real value.
func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration, allowZero bool) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	secs := s.configStore.GetFloat(key)
	if secs < 0 || (secs == 0 && !allowZero) {
		return defaultVal
	}
	return time.Duration(secs * float64(time.Second))
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(KeyFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getCacheMode(defaultVal domain.CacheMode) domain.CacheMode {
	mode := domain.CacheMode(s.configStore.GetString(KeyCacheMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
