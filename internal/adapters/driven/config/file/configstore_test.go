package file

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
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
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".storefront", "config.toml"), store.Path())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("not toml {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("api.base_url")
	assert.False(t, ok)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[api]
base_url = "https://shop.example.com"
timeout_seconds = 15
rate_per_second = 2.5

[routes]
home = "/catalog"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", store.GetString("api.base_url"))
	assert.Equal(t, 15, store.GetInt("api.timeout_seconds"))
	assert.InDelta(t, 2.5, store.GetFloat("api.rate_per_second"), 1e-9)
	assert.Equal(t, "/catalog", store.GetString("routes.home"))
	assert.Equal(t,
		[]string{"api.base_url", "api.rate_per_second", "api.timeout_seconds", "routes.home"},
		store.Keys())
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://localhost:8080"))
	require.NoError(t, store.Set("routes.login", "/signin"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[api]")
	assert.Contains(t, string(data), "[routes]")
	assert.NotContains(t, string(data), "api.base_url")
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://localhost:8080"))
	require.NoError(t, store.Set("api.timeout_seconds", 20))
	require.NoError(t, store.Set("api.rate_per_second", 4.5))
	require.NoError(t, store.Set("ui.compact", true))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", reloaded.GetString("api.base_url"))
	assert.Equal(t, 20, reloaded.GetInt("api.timeout_seconds"))
	assert.InDelta(t, 4.5, reloaded.GetFloat("api.rate_per_second"), 1e-9)
	assert.True(t, reloaded.GetBool("ui.compact"))
}

func TestConfigStore_TypedGettersOnWrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("name", "storefront"))
	require.NoError(t, store.Set("count", 3))

	assert.Equal(t, "", store.GetString("count"))
	assert.Equal(t, 0, store.GetInt("name"))
	assert.Zero(t, store.GetFloat("name"))
	assert.False(t, store.GetBool("name"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetFloatWidensIntegers(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.rate_per_second", 5))
	assert.InDelta(t, 5.0, store.GetFloat("api.rate_per_second"), 1e-9)

	require.NoError(t, store.Load())
	assert.InDelta(t, 5.0, store.GetFloat("api.rate_per_second"), 1e-9)
}

func TestConfigStore_SetRejectsBadKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("", "x"))
	assert.Error(t, store.Set(".api", "x"))
	assert.Error(t, store.Set("api.", "x"))

	require.NoError(t, store.Set("api.base_url", "http://localhost"))
	assert.Error(t, store.Set("api", "x"), "a table cannot become a value")
	assert.Error(t, store.Set("api.base_url.host", "x"), "a value cannot become a table")
}

func TestConfigStore_OverwriteValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("routes.home", "/"))
	require.NoError(t, store.Set("routes.home", "/catalog"))

	assert.Equal(t, "/catalog", store.GetString("routes.home"))
	assert.Len(t, store.Keys(), 1)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("api.base_url", "http://localhost"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SaveLeavesNoTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	for i := range 3 {
		require.NoError(t, store.Set("k"+strconv.Itoa(i), i))
	}

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ConfigFileName, entries[0].Name())
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.mu.Lock()
	store.data["routes.admin_home"] = "/backoffice"
	store.mu.Unlock()
	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/backoffice", reloaded.GetString("routes.admin_home"))
}

func TestConfigStore_Save_WriteError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory so the final rename fails.
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Load_PicksUpExternalEdits(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("api.base_url", "http://old"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("[api]\nbase_url = \"http://new\"\n"), 0600))
	require.NoError(t, store.Load())

	assert.Equal(t, "http://new", store.GetString("api.base_url"))
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "worker.k" + strconv.Itoa(id)
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.Keys()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys(), 10)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"api":    map[string]any{"base_url": "http://x", "timeout_seconds": int64(3)},
		"routes": map[string]any{"home": "/"},
		"top":    true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"api.base_url":        "http://x",
		"api.timeout_seconds": int64(3),
		"routes.home":         "/",
		"top":                 true,
	}, flat)
	assert.Equal(t, nested, nestMap(flat))
}
