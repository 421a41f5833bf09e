package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: wlsd
  debug: true
  log:
    pretty: true
    level: debug

http:
  port: 8080

app:
  baseUrl: http://localhost:8080

mail:
  host: smtp.example.com
  port: 587
  from: no-reply@example.com

auth:
  loginTokenTtl: 15m
  secureCookies: true
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestNew_LoadsYAMLAndFillsDefaults(t *testing.T) {
	writeTestConfig(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "wlsd", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginTokenTTL)
	assert.True(t, cfg.Auth.SecureCookies)

	// Values the file omits come from defaults.
	assert.Equal(t, DefaultSessionTokenTTL, cfg.Auth.SessionTokenTTL)
	assert.Equal(t, "templates/*.html", cfg.App.TemplatesGlob)
	assert.Equal(t, "assets", cfg.App.AssetsDir)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("MAIL_HOST", "smtp.override.example.com")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "smtp.override.example.com", cfg.Mail.Host)
}

func TestNew_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := New()
	assert.Error(t, err)
}
