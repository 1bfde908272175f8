package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string `yaml:"port"`
	DBPath         string `yaml:"db_path"`
	Env            string `yaml:"env"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

func Default() *Config {
	return &Config{
		Port:           "8080",
		DBPath:         "puzshelf.db",
		MaxUploadBytes: 1024 * 1024,
	}
}

// Load reads the YAML file at path (if any) over the defaults, then applies
// PORT, DB_PATH, ENV and MAX_UPLOAD_BYTES from getenv.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0")
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// DSN opens the database in WAL mode with foreign keys enforced.
func (c *Config) DSN() string {
	return c.DBPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
}
