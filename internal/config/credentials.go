package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/underthebar/pkg"

	"github.com/joho/godotenv"
)

const (
	EnvStravaClientID     = "STRAVA_CLIENT_ID"
	EnvStravaClientSecret = "STRAVA_CLIENT_SECRET"
)

type StravaCredentials struct {
	ClientID     string
	ClientSecret string
}

func (c StravaCredentials) Missing() bool {
	return c.ClientID == "" || c.ClientSecret == ""
}

// LoadEnvFile loads the .env file into the process env.
// Values already present in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// StravaCredentialsFromEnv reads the strava client id and secret from the process env.
func StravaCredentialsFromEnv() StravaCredentials {
	return StravaCredentials{
		ClientID:     os.Getenv(EnvStravaClientID),
		ClientSecret: os.Getenv(EnvStravaClientSecret),
	}
}

// SaveStravaCredentials writes the credentials into the .env file, keeping the
// other keys found there, and exports them to the process env.
func SaveStravaCredentials(path string, creds StravaCredentials) error {
	envMap, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		envMap = map[string]string{}
	}

	envMap[EnvStravaClientID] = creds.ClientID
	envMap[EnvStravaClientSecret] = creds.ClientSecret

	if err := pkg.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create env file dir: %w", err)
	}
	if err := godotenv.Write(envMap, path); err != nil {
		return fmt.Errorf("write env file %s: %w", path, err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("chmod env file: %w", err)
	}

	if err := os.Setenv(EnvStravaClientID, creds.ClientID); err != nil {
		return err
	}
	return os.Setenv(EnvStravaClientSecret, creds.ClientSecret)
}
