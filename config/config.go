// Package config holds the Google Cloud configuration for the Vertex AI
// provider. Configuration is an explicit struct handed to constructors; only
// FromEnv touches the process environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvProject     = "GOOGLE_VERTEX_PROJECT"
	EnvLocation    = "GOOGLE_VERTEX_LOCATION"
	EnvCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Defaults applied when the environment leaves a value unset.
const (
	DefaultProject  = "lionspace"
	DefaultLocation = "us-east1"
)

// Config identifies the Google Cloud project and region to generate against,
// and optionally the service-account credentials to use. An empty
// CredentialsFile means Application Default Credentials.
type Config struct {
	Project         string
	Location        string
	CredentialsFile string
}

// FromEnv builds a Config from the environment, falling back to the fixed
// defaults for project and location.
func FromEnv() Config {
	return Config{
		Project:         envOr(EnvProject, DefaultProject),
		Location:        envOr(EnvLocation, DefaultLocation),
		CredentialsFile: os.Getenv(EnvCredentials),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate checks that the configuration can initialize a provider.
func (c Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("project_id is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// ResolveServiceAccountKey normalizes the service_account_key credential
// field: a file path is returned as-is, while inline JSON (anything starting
// with '{') is written to a temporary file whose path is returned. The second
// return value tells the caller whether a temp file was created and should be
// cleaned up after use.
func ResolveServiceAccountKey(key string) (path string, temporary bool, err error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}
	if !strings.HasPrefix(key, "{") {
		return key, false, nil
	}

	f, err := os.CreateTemp("", "vertexflow-sa-*.json")
	if err != nil {
		return "", false, fmt.Errorf("failed to create credentials file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(key); err != nil {
		os.Remove(f.Name())
		return "", false, fmt.Errorf("failed to write credentials file: %w", err)
	}
	return f.Name(), true, nil
}

// WithCredentials returns a copy of the config using the resolved
// service-account key. Inline JSON keys are materialized to a temp file.
func (c Config) WithCredentials(key string) (Config, error) {
	path, _, err := ResolveServiceAccountKey(key)
	if err != nil {
		return c, err
	}
	c.CredentialsFile = path
	return c, nil
}

// Apply exports the credentials file path so Application Default Credentials
// picks it up. A config without a credentials file applies cleanly and leaves
// the ambient ADC untouched.
func (c Config) Apply() error {
	if c.CredentialsFile == "" {
		return nil
	}
	if _, err := os.Stat(c.CredentialsFile); err != nil {
		return fmt.Errorf("credentials file %s: %w", c.CredentialsFile, err)
	}
	return os.Setenv(EnvCredentials, c.CredentialsFile)
}
