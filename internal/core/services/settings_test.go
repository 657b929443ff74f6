package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, *domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyPassagesPerChapter, int64(3))
	_ = store.Set(KeyTargetWords, 60)
	_ = store.Set(KeyDelaySeconds, 1.5)
	_ = store.Set(KeyMaxRetries, int64(0))
	_ = store.Set(KeyFormat, "json")
	_ = store.Set(KeySearchEndpoint, "http://localhost:8080/html/")
	_ = store.Set(KeySearchTimeout, int64(30))
	_ = store.Set(KeyCacheMode, "sqlite")
	_ = store.Set(KeyCacheDir, "/tmp/cache")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 3, settings.Check.PassagesPerChapter)
	assert.Equal(t, 60, settings.Check.TargetWords)
	assert.Equal(t, 1500*time.Millisecond, settings.Check.Delay)
	assert.Equal(t, 0, settings.Check.MaxRetries)
	assert.Equal(t, domain.FormatJSON, settings.Check.Format)
	assert.Equal(t, "http://localhost:8080/html/", settings.Search.Endpoint)
	assert.Equal(t, 30*time.Second, settings.Search.Timeout)
	assert.Equal(t, domain.CacheModeSQLite, settings.Cache.Mode)
	assert.Equal(t, "/tmp/cache", settings.Cache.Dir)
}

func TestSettingsService_Get_ZeroDelayIsKept(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyDelaySeconds, 0.0)
	_ = store.Set(KeySearchTimeout, 0.0)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Zero(t, settings.Check.Delay)
	assert.Equal(t, domain.DefaultAppSettings().Search.Timeout, settings.Search.Timeout)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyPassagesPerChapter, -1)
	_ = store.Set(KeyMaxRetries, -2)
	_ = store.Set(KeyDelaySeconds, -3.0)
	_ = store.Set(KeyFormat, "yaml")
	_ = store.Set(KeyCacheMode, "redis")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Check, settings.Check)
	assert.Equal(t, defaults.Cache.Mode, settings.Cache.Mode)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected any
	}{
		{KeyPassagesPerChapter, "7", 7},
		{KeyTargetWords, " 50 ", 50},
		{KeyMaxRetries, "0", 0},
		{KeyDelaySeconds, "2.5", 2.5},
		{KeySearchTimeout, "20", 20.0},
		{KeyFormat, "json", "json"},
		{KeyCacheMode, "memory", "memory"},
		{KeySearchEndpoint, "https://example.test/html/", "https://example.test/html/"},
		{KeySearchUserAgent, "Custom/1.0", "Custom/1.0"},
		{KeyCacheDir, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			require.NoError(t, service.Set(tt.key, tt.value))

			val, ok := store.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestSettingsService_Set_RoundTripsThroughGet(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.Set(KeyDelaySeconds, "0"))
	require.NoError(t, service.Set(KeyFormat, "json"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Zero(t, settings.Check.Delay)
	assert.Equal(t, domain.FormatJSON, settings.Check.Format)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{KeyPassagesPerChapter, "0"},
		{KeyPassagesPerChapter, "many"},
		{KeyTargetWords, "-5"},
		{KeyMaxRetries, "-1"},
		{KeyDelaySeconds, "-1"},
		{KeyDelaySeconds, "soon"},
		{KeySearchTimeout, "0"},
		{KeyFormat, "xml"},
		{KeyCacheMode, "disk"},
		{KeySearchEndpoint, "ftp://example.test"},
		{"check.unknown", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, ok := store.Get(tt.key)
			assert.False(t, ok)
		})
	}
}

func TestSettingsService_KeysAndPath(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Len(t, keys, 10)
	assert.Equal(t, KeyPassagesPerChapter, keys[0])
	assert.Equal(t, ":memory:", service.Path())
	assert.Equal(t, *domain.DefaultAppSettings(), service.GetDefaults())
}
