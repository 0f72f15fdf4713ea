package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings, loadable from config.yaml with
// environment-variable overrides.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	Environment  string        `yaml:"environment"`
	StagingDir   string        `yaml:"staging_dir"`
}

// DefaultServerConfig returns the defaults used when no config file exists.
// The write timeout is generous: one submission makes two remote Whisper
// calls back to back.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         "8000",
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  2 * time.Minute,
		Environment:  "development",
	}
}

// UnmarshalYAML decodes the config, accepting Go duration strings ("30s",
// "5m") for the timeout fields. Absent fields keep their current values, so
// a partial config.yaml only overrides what it names.
func (c *ServerConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Host         string `yaml:"host"`
		Port         string `yaml:"port"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
		IdleTimeout  string `yaml:"idle_timeout"`
		Environment  string `yaml:"environment"`
		StagingDir   string `yaml:"staging_dir"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Host != "" {
		c.Host = raw.Host
	}
	if raw.Port != "" {
		c.Port = raw.Port
	}
	if raw.Environment != "" {
		c.Environment = raw.Environment
	}
	if raw.StagingDir != "" {
		c.StagingDir = raw.StagingDir
	}

	for _, f := range []struct {
		raw  string
		dest *time.Duration
	}{
		{raw.ReadTimeout, &c.ReadTimeout},
		{raw.WriteTimeout, &c.WriteTimeout},
		{raw.IdleTimeout, &c.IdleTimeout},
	} {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", f.raw, err)
		}
		*f.dest = d
	}

	return nil
}

// LoadServerConfig reads path (yaml) over the defaults, then applies env
// overrides. A missing file is fine.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Environment = env
	}

	return cfg, nil
}
