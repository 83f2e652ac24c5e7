package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs Load from an empty directory with every known key cleared.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "CONFIG_FILE", "MODEL_NAME", "MODEL_TEMPERATURE",
		"MODEL_TOP_P", "MODEL_TOP_K", "MODEL_MAX_OUTPUT_TOKENS", "PORT", "LOG_LEVEL",
		"LOG_FORMAT", "SESSION_MAX_IDLE", "MAX_UPLOAD_BYTES",
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadMissingCredential(t *testing.T) {
	isolate(t)

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("GOOGLE_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model.Name)
	assert.Equal(t, float32(0.7), cfg.Model.Temperature)
	assert.Equal(t, int32(4096), cfg.Model.MaxOutputTokens)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.SessionMaxIdle)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadGeminiKeyFallback(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOOGLE_API_KEY=from-dotenv\n"), 0o600))
	// godotenv never overrides a variable that is already present, even if empty.
	require.NoError(t, os.Unsetenv("GOOGLE_API_KEY"))
	t.Cleanup(func() { os.Unsetenv("GOOGLE_API_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIKey)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	yml := "model:\n  name: gemini-1.5-flash\n  temperature: 0.2\nport: \"9090\"\nsession_max_idle: 30m\n"
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("MODEL_TEMPERATURE", "0.9")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-flash", cfg.Model.Name)
	assert.Equal(t, float32(0.9), cfg.Model.Temperature)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxIdle)
	assert.Equal(t, int32(1), cfg.Model.TopK)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	isolate(t)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("CONFIG_FILE", "does-not-exist.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadOverrides(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MODEL_TEMPERATURE", "hot"},
		{"MODEL_TEMPERATURE", "3"},
		{"MODEL_TOP_P", "1.5"},
		{"MODEL_TOP_K", "0"},
		{"MODEL_MAX_OUTPUT_TOKENS", "-1"},
		{"SESSION_MAX_IDLE", "forever"},
		{"MAX_UPLOAD_BYTES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			isolate(t)
			t.Setenv("GOOGLE_API_KEY", "key")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGeneratorSettings(t *testing.T) {
	isolate(t)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("MODEL_TOP_K", "40")

	cfg, err := Load()
	require.NoError(t, err)

	s := cfg.GeneratorSettings()
	assert.Equal(t, "gemini-2.0-flash", s.Model)
	assert.Equal(t, int32(40), s.TopK)
	assert.Equal(t, float32(1), s.TopP)
}
