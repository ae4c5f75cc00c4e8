// Package config loads database credentials from a YAML file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Credentials holds the five fields needed to open a database connection.
// Values stay strings so a loaded value always matches the source file
// exactly.
type Credentials struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// ConfigError reports a missing, unreadable or malformed credentials file.
type ConfigError struct {
	Path  string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %v", e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// requiredKeys are the keys a credentials file must define.
var requiredKeys = []string{"host", "port", "database", "user", "password"}

// Load reads credentials from the YAML file at path. Every required key
// must be present and non-empty; there is no defaulting. The path is taken
// explicitly rather than discovered from the environment so callers control
// exactly which file is read.
func Load(path string) (*Credentials, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: path, Cause: err}
	}

	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			return nil, &ConfigError{Path: path, Cause: fmt.Errorf("missing required key %q", key)}
		}
	}

	return &Credentials{
		Host:     v.GetString("host"),
		Port:     v.GetString("port"),
		User:     v.GetString("user"),
		Password: v.GetString("password"),
		Database: v.GetString("database"),
	}, nil
}
