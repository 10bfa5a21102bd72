package config

import (
  "fmt"
  "os"
  "time"

  "github.com/spf13/cast"
  "github.com/ushakovn/chimera/internal/deps/chimera"
  "github.com/ushakovn/chimera/internal/models"
  "github.com/ushakovn/chimera/pkg/env"
  "github.com/ushakovn/chimera/pkg/validator"
  "gopkg.in/yaml.v3"
)

const (
  EnvBaseURL     = "CHIMERA_BASE_URL"
  EnvUsername    = "CHIMERA_USERNAME"
  EnvPassword    = "CHIMERA_PASSWORD"
  EnvInsecure    = "CHIMERA_INSECURE"
  EnvTimeout     = "CHIMERA_TIMEOUT"
  EnvOutputDir   = "CHIMERA_OUTPUT_DIR"
  EnvStripMarkup = "CHIMERA_STRIP_MARKUP"
  EnvNarrowUser  = "CHIMERA_NARROW_USERNAME"
)

// Config is resolved as defaults, then the yaml file, then environment, then flags.
type Config struct {
  BaseURL        string        `yaml:"base_url" validate:"required"`
  Username       string        `yaml:"username"`
  Password       string        `yaml:"password"`
  Insecure       bool          `yaml:"insecure"`
  Timeout        time.Duration `yaml:"timeout" validate:"gt=0"`
  OutputDir      string        `yaml:"output_dir"`
  StripMarkup    bool          `yaml:"strip_markup"`
  NarrowUsername bool          `yaml:"narrow_username"`
}

func Default() Config {
  return Config{
    BaseURL:   chimera.DefaultBaseURL,
    Timeout:   chimera.DefaultTimeout,
    OutputDir: ".",
  }
}

// Load reads path when it is set and applies environment overrides.
func Load(path string) (Config, error) {
  config := Default()

  if path != "" {
    content, err := os.ReadFile(path)
    if err != nil {
      return Config{}, fmt.Errorf("os.ReadFile: %w", err)
    }
    if err = yaml.Unmarshal(content, &config); err != nil {
      return Config{}, fmt.Errorf("yaml.Unmarshal %s: %w", path, err)
    }
  }

  if err := config.applyEnv(); err != nil {
    return Config{}, fmt.Errorf("config.applyEnv: %w", err)
  }
  return config, nil
}

func (c *Config) applyEnv() error {
  if value, ok := env.Lookup(EnvBaseURL); ok {
    c.BaseURL = value
  }
  if value, ok := env.Lookup(EnvUsername); ok {
    c.Username = value
  }
  if value, ok := env.Lookup(EnvPassword); ok {
    c.Password = value
  }
  if value, ok := env.Lookup(EnvOutputDir); ok {
    c.OutputDir = value
  }

  if value, ok := env.Lookup(EnvInsecure); ok {
    insecure, err := cast.ToBoolE(value)
    if err != nil {
      return fmt.Errorf("%s: %w", EnvInsecure, err)
    }
    c.Insecure = insecure
  }
  if value, ok := env.Lookup(EnvStripMarkup); ok {
    strip, err := cast.ToBoolE(value)
    if err != nil {
      return fmt.Errorf("%s: %w", EnvStripMarkup, err)
    }
    c.StripMarkup = strip
  }
  if value, ok := env.Lookup(EnvNarrowUser); ok {
    narrow, err := cast.ToBoolE(value)
    if err != nil {
      return fmt.Errorf("%s: %w", EnvNarrowUser, err)
    }
    c.NarrowUsername = narrow
  }
  if value, ok := env.Lookup(EnvTimeout); ok {
    timeout, err := cast.ToDurationE(value)
    if err != nil {
      return fmt.Errorf("%s: %w", EnvTimeout, err)
    }
    c.Timeout = timeout
  }

  return nil
}

func (c *Config) Validate() error {
  if err := validator.Struct(c); err != nil {
    return err
  }
  if err := validator.URL(c.BaseURL); err != nil {
    return fmt.Errorf("base url %s invalid: %w", c.BaseURL, err)
  }
  return nil
}

func (c *Config) Credentials() models.Credentials {
  return models.Credentials{
    Username: c.Username,
    Password: c.Password,
  }
}

func (c *Config) Chimera() chimera.Config {
  return chimera.Config{
    BaseURL:            c.BaseURL,
    Timeout:            c.Timeout,
    InsecureSkipVerify: c.Insecure,
  }
}
