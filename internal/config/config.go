package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultDataDirName = ".underthebar"
)

type Config struct {
	Environment string `toml:"-"`

	// DataDir holds session.json, .env, logs and the per-user workout cache.
	// Empty means ~/.underthebar
	DataDir string `toml:"data_dir"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	LogJSON     bool   `toml:"log_json"`

	// telemetry
	SentryEnabled    bool `toml:"sentry_enabled"`
	HoneycombEnabled bool `toml:"honeycomb_enabled"`

	// strava
	StravaAPIURL          string `toml:"strava_api_url"`
	StravaAuthURL         string `toml:"strava_auth_url"`
	StravaTokenURL        string `toml:"strava_token_url"`
	StravaCallbackAddr    string `toml:"strava_callback_addr"`
	StravaRedirectURL     string `toml:"strava_redirect_url"`
	StravaActivitiesLimit int    `toml:"strava_activities_limit"`

	// hevy
	HevyAPIURL     string `toml:"hevy_api_url"`
	PrivateImports bool   `toml:"private_imports"`

	// settings server
	SettingsHost         string `toml:"settings_host"`
	SettingsPort         int    `toml:"settings_port"`
	SettingsPasswordHash string `toml:"settings_password_hash"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// NormalizeEnv maps the accepted env aliases to their canonical name.
func NormalizeEnv(env string) (string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return EnvDevelopment, nil
	case "prod", "production":
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("unknown env: %s", env)
	}
}

func Default(env string) *Config {
	return &Config{
		Environment:           env,
		LogLevel:              "info",
		StravaAPIURL:          "https://www.strava.com/api/v3",
		StravaAuthURL:         "https://www.strava.com/oauth/authorize",
		StravaTokenURL:        "https://www.strava.com/oauth/token",
		StravaCallbackAddr:    ":8888",
		StravaRedirectURL:     "http://localhost:8888/authorization",
		StravaActivitiesLimit: 20,
		HevyAPIURL:            "https://api.hevyapp.com",
		PrivateImports:        true,
		SettingsHost:          "127.0.0.1",
		SettingsPort:          8899,
	}
}

// Load reads the config section for the given env from the TOML file at path.
// A missing file is not an error: defaults are used.
func Load(env, path string) (*Config, error) {
	env, err := NormalizeEnv(env)
	if err != nil {
		return nil, err
	}

	cfg := Default(env)
	if path == "" {
		return cfg.withDataDir()
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg.withDataDir()
	}

	// decode on top of the defaults, so that only the set keys are overridden
	tomlCfg := &Toml{
		Development: Default(EnvDevelopment),
		Production:  Default(EnvProduction),
	}
	if _, err := toml.DecodeFile(path, tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err = tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	cfg.Environment = env

	return cfg.withDataDir()
}

func (c *Config) withDataDir() (*Config, error) {
	if c.DataDir != "" {
		return c, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	c.DataDir = filepath.Join(homeDir, DefaultDataDirName)
	return c, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// ImportsPrivate tells whether imported workouts are marked private.
// Everything imported outside production is private.
func (c *Config) ImportsPrivate() bool {
	if !c.IsProduction() {
		return true
	}
	return c.PrivateImports
}

func (c *Config) SessionFilePath() string {
	return filepath.Join(c.DataDir, "session.json")
}

func (c *Config) EnvFilePath() string {
	return filepath.Join(c.DataDir, ".env")
}

// UserFolder is the local cache folder of the given Hevy user.
func (c *Config) UserFolder(userID string) string {
	return filepath.Join(c.DataDir, "user_"+userID)
}
