package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("HOME", dataDir)

	cfg, err := Load("dev", filepath.Join(dataDir, "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, filepath.Join(dataDir, DefaultDataDirName), cfg.DataDir)
	assert.Equal(t, 20, cfg.StravaActivitiesLimit)
	assert.Equal(t, "http://localhost:8888/authorization", cfg.StravaRedirectURL)
	assert.True(t, cfg.ImportsPrivate())
}

func TestLoad_UnknownEnv(t *testing.T) {
	cfg, err := Load("staging", "")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_FromToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[development]
data_dir = "/tmp/utb-dev"
log_level = "debug"
settings_port = 9100

[production]
data_dir = "/tmp/utb-prod"
private_imports = false
hevy_api_url = "http://hevy.local"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	devCfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/utb-dev", devCfg.DataDir)
	assert.Equal(t, "debug", devCfg.LogLevel)
	assert.Equal(t, 9100, devCfg.SettingsPort)
	// untouched keys keep their defaults
	assert.Equal(t, "https://api.hevyapp.com", devCfg.HevyAPIURL)
	assert.True(t, devCfg.ImportsPrivate())

	prodCfg, err := Load("prod", path)
	require.NoError(t, err)
	assert.True(t, prodCfg.IsProduction())
	assert.Equal(t, "http://hevy.local", prodCfg.HevyAPIURL)
	assert.False(t, prodCfg.ImportsPrivate())
	assert.Equal(t, "/tmp/utb-prod/session.json", prodCfg.SessionFilePath())
	assert.Equal(t, "/tmp/utb-prod/user_u1", prodCfg.UserFolder("u1"))
}

func TestSaveStravaCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER_KEY=keep\n"), 0600))

	t.Setenv(EnvStravaClientID, "")
	t.Setenv(EnvStravaClientSecret, "")

	require.NoError(t, SaveStravaCredentials(path, StravaCredentials{
		ClientID:     "12345",
		ClientSecret: "s3cr3t",
	}))

	creds := StravaCredentialsFromEnv()
	assert.Equal(t, "12345", creds.ClientID)
	assert.Equal(t, "s3cr3t", creds.ClientSecret)
	assert.False(t, creds.Missing())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `OTHER_KEY="keep"`)
	assert.Contains(t, string(content), `STRAVA_CLIENT_ID=12345`)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	assert.True(t, StravaCredentials{ClientID: "x"}.Missing())
}
