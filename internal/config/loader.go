package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable that points at the YAML config file.
const PathEnv = "DICTATION_CONFIG"

// DefaultPath is read when neither a path nor PathEnv is given. It is
// optional; without it the config comes from the environment alone.
const DefaultPath = "./dictation.yaml"

// Load reads the configuration from the file named by PathEnv, or from
// DefaultPath when that variable is unset. See LoadFile.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from the YAML file at path and the
// environment, ENV taking precedence over YAML and YAML over defaults.
// An empty path falls back to PathEnv, then DefaultPath. A path given
// explicitly (argument or PathEnv) must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize canonicalizes the enum-like values operators tend to type in
// mixed case.
func (c *Config) normalize() {
	c.Cache.Driver = strings.ToLower(strings.TrimSpace(c.Cache.Driver))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}
