package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPath = "config.yaml"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type EngineConfig struct {
	Buffer int `yaml:"buffer"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  3 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Engine: EngineConfig{Buffer: 1024},
	}
}

// Load reads .env (if any), then the YAML file named by ORDERS_CONFIG
// (default config.yaml, optional), then applies ORDERS_* overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: failed to load .env: %v", err)
	}

	path := os.Getenv("ORDERS_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes path over the defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ORDERS_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if err := envDuration("ORDERS_REQUEST_TIMEOUT", &c.Server.RequestTimeout); err != nil {
		return err
	}
	if err := envDuration("ORDERS_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout); err != nil {
		return err
	}
	if v := os.Getenv("ORDERS_ENGINE_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &Error{Field: "ORDERS_ENGINE_BUFFER", Message: err.Error()}
		}
		c.Engine.Buffer = n
	}
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return &Error{Field: key, Message: err.Error()}
	}
	*dst = d
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &Error{Field: "server.addr", Message: "must not be empty"}
	}
	if c.Server.RequestTimeout <= 0 {
		return &Error{Field: "server.request_timeout", Message: "must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &Error{Field: "server.shutdown_timeout", Message: "must be positive"}
	}
	if c.Engine.Buffer < 0 {
		return &Error{Field: "engine.buffer", Message: "must not be negative"}
	}
	return nil
}

// Error is an invalid configuration value.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}
