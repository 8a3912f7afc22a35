package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"test-binary"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.Equal(t, ":8080", cfg.EndpointAddr)
	require.Equal(t, "secretKey", cfg.SecretKey)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	require.False(t, cfg.ReleaseMode)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("BOOKMARKD_ADDR", ":9999")
	t.Setenv("BOOKMARKD_SECRET_KEY", "env-secret")
	t.Setenv("BOOKMARKD_TOKEN_VALIDITY", "30m")
	t.Setenv("BOOKMARKD_RELEASE_MODE", "true")

	cfg := LoadConfig()

	require.Equal(t, ":9999", cfg.EndpointAddr)
	require.Equal(t, "env-secret", cfg.SecretKey)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	require.True(t, cfg.ReleaseMode)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
		"endpoint_addr": ":7070",
		"secret_key": "json-secret",
		"access_token_validity_duration": "45m"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	require.Equal(t, ":7070", cfg.EndpointAddr)
	require.Equal(t, "json-secret", cfg.SecretKey)
	require.Equal(t, 45*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr": ":7070"}`), 0o600))

	resetArgs(t, "-c", path, "-a", ":6060", "-t", "5")

	cfg := LoadConfig()

	require.Equal(t, ":6060", cfg.EndpointAddr)
	require.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
}
