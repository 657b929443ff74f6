package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0600))

	store, err := NewConfigStore(filepath.Join(parent, "config"))

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_ReadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[check]
passages_per_chapter = 3
delay_seconds = 2.5
format = "json"

[search]
timeout_seconds = 20

[cache]
mode = "sqlite"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 3, store.GetInt("check.passages_per_chapter"))
	assert.Equal(t, 2.5, store.GetFloat("check.delay_seconds"))
	assert.Equal(t, 20.0, store.GetFloat("search.timeout_seconds"))
	assert.Equal(t, "json", store.GetString("check.format"))
	assert.Equal(t, "sqlite", store.GetString("cache.mode"))
	assert.Zero(t, store.GetInt("check.format"))
	assert.False(t, store.GetBool("check.format"))
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("check.target_words", 60))
	require.NoError(t, store.Set("check.format", "json"))
	require.NoError(t, store.Set("cache.mode", "memory"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[check]")
	assert.Contains(t, string(raw), "[cache]")
	assert.False(t, strings.Contains(string(raw), `"check.format"`), "keys should not be quoted dotted names")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 60, reloaded.GetInt("check.target_words"))
	assert.Equal(t, "json", reloaded.GetString("check.format"))
	assert.Equal(t, "memory", reloaded.GetString("cache.mode"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("check.format", "text"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("check.format", "text"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("check.format", "json"))
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("check.format", "text"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestNestMap(t *testing.T) {
	t.Run("groups by prefix", func(t *testing.T) {
		got := nestMap(map[string]any{
			"check.format": "json",
			"check.delay":  5,
			"top":          true,
		})
		assert.Equal(t, map[string]any{
			"check": map[string]any{"format": "json", "delay": 5},
			"top":   true,
		}, got)
	})

	t.Run("plain value wins over nested key", func(t *testing.T) {
		got := nestMap(map[string]any{
			"check":        "flat",
			"check.format": "json",
		})
		assert.Equal(t, map[string]any{"check": "flat"}, got)
	})

	t.Run("inverse of flatten", func(t *testing.T) {
		flat := map[string]any{"a.b.c": int64(1), "a.d": "x", "e": 2.5}
		assert.Equal(t, flat, flattenMap(nestMap(flat), ""))
	})
}
