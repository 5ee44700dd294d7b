package navstep

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navstep/pkg/navstep/constants"
	"github.com/BrandonKowalski/navstep/pkg/navstep/internal"
	"github.com/BrandonKowalski/navstep/pkg/navstep/router"
)

// Config holds the tunables of a router.
//
// Example file:
//
//	step_delay    = "650ms"
//	push_multiple = false
//	log_level     = "debug"
type Config struct {
	StepDelay    time.Duration `toml:"step_delay"`    // Wait between visible steps
	PushMultiple *bool         `toml:"push_multiple"` // nil defers to CanPushMultiple
	LogLevel     string        `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		StepDelay: constants.DefaultStepDelay,
		LogLevel:  "info",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and then applies
// environment overrides. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, NewConfigError(path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, NewConfigError(path, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String()))
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, NewConfigError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, NewConfigError(path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from NAVSTEP_* environment variables.
func (c *Config) ApplyEnv() error {
	if raw := os.Getenv(constants.StepDelayEnvVar); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, constants.StepDelayEnvVar, err)
		}
		c.StepDelay = d
	}
	if raw := os.Getenv(constants.PushMultipleEnvVar); raw != "" {
		v, ok := constants.ParseBool(raw)
		if !ok {
			return fmt.Errorf("%w: %s: not a boolean: %q", ErrInvalidConfig, constants.PushMultipleEnvVar, raw)
		}
		c.PushMultiple = &v
	}
	if raw := os.Getenv(constants.LogLevelEnvVar); raw != "" {
		c.LogLevel = raw
	}
	return nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: step_delay must not be negative, got %s", ErrInvalidConfig, c.StepDelay)
	}
	return nil
}

// CanPushMultiple resolves the capability flag: the configured value if
// set, the platform probe otherwise.
func (c Config) CanPushMultiple() bool {
	if c.PushMultiple != nil {
		return *c.PushMultiple
	}
	return CanPushMultiple()
}

// RouterOptions converts the configuration into router options.
func (c Config) RouterOptions() router.Options {
	return router.Options{
		CanPushMultiple: c.CanPushMultiple(),
		StepDelay:       c.StepDelay,
		Logger:          internal.GetInternalLogger(),
	}
}
