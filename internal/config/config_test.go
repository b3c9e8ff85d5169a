package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
apiKey: secret-key
baseURL: https://library.example.com/api
requestTimeout: 20s
ctRequestTimeout: 1m
`)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", f.APIKey)
	assert.Equal(t, "https://library.example.com/api", f.BaseURL)
	assert.Equal(t, 20*time.Second, f.RequestTimeoutOr(15*time.Second))
	assert.Equal(t, time.Minute, f.CTRequestTimeoutOr(30*time.Second))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidTimeout(t *testing.T) {
	path := writeConfig(t, "requestTimeout: soon\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid requestTimeout")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "apiKey: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestTimeoutFallbacks(t *testing.T) {
	var f *File
	assert.Equal(t, 15*time.Second, f.RequestTimeoutOr(15*time.Second), "nil file falls back")

	f = &File{}
	assert.Equal(t, 30*time.Second, f.CTRequestTimeoutOr(30*time.Second), "empty field falls back")
}
