package solver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvInput       = "CRUCIBLE_INPUT"
	EnvVariants    = "CRUCIBLE_VARIANTS" // comma-separated preset names
	EnvMinRun      = "CRUCIBLE_MIN_RUN"
	EnvMaxRun      = "CRUCIBLE_MAX_RUN"
	EnvTimeout     = "CRUCIBLE_TIMEOUT"
	EnvParallelism = "CRUCIBLE_PARALLELISM"
	EnvLogLevel    = "CRUCIBLE_LOG_LEVEL"
)

// Bounds is a custom run-bound pair.
type Bounds struct {
	MinRun int `yaml:"min_run"`
	MaxRun int `yaml:"max_run"`
}

// Config drives a Solver.
type Config struct {
	// Input is the grid file read by SolveFile.
	Input string `yaml:"input"`

	// Variants lists preset names to solve. Empty means Crucible only,
	// unless Custom is set.
	Variants []string `yaml:"variants"`

	// Custom adds a variant named "custom" with these bounds.
	Custom *Bounds `yaml:"custom,omitempty"`

	// ReturnPath asks the engine for the route as well as the cost.
	ReturnPath bool `yaml:"return_path"`

	// Timeout bounds each search; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`

	// Parallelism caps concurrent searches in SolveAll; 0 means one
	// goroutine per variant.
	Parallelism int `yaml:"parallelism"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Input:    "./input",
		LogLevel: "info",
	}
}

// LoadConfig builds a Config from defaults, the YAML file at path (skipped
// when path is empty), a .env file in the working directory if present, and
// CRUCIBLE_* environment variables, in increasing precedence.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("solver: load .env: %w", err)
	}
	if err := loadConfigFromEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("solver: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func loadConfigFromEnv(cfg *Config) error {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvVariants); v != "" {
		cfg.Variants = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Variants = append(cfg.Variants, name)
			}
		}
	}
	minRun, maxRun := os.Getenv(EnvMinRun), os.Getenv(EnvMaxRun)
	if minRun != "" || maxRun != "" {
		b := Bounds{}
		if cfg.Custom != nil {
			b = *cfg.Custom
		}
		if err := envInt(EnvMinRun, minRun, &b.MinRun); err != nil {
			return err
		}
		if err := envInt(EnvMaxRun, maxRun, &b.MaxRun); err != nil {
			return err
		}
		cfg.Custom = &b
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if err := envInt(EnvParallelism, os.Getenv(EnvParallelism), &cfg.Parallelism); err != nil {
		return err
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func envInt(key, v string, dst *int) error {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	*dst = n
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := c.ResolveVariants(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be non-negative, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism must be non-negative, got %d", ErrInvalidConfig, c.Parallelism)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ResolveVariants turns Variants and Custom into concrete parameter sets.
func (c Config) ResolveVariants() ([]Variant, error) {
	var out []Variant
	for _, name := range c.Variants {
		v, err := LookupVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if c.Custom != nil {
		if c.Custom.MinRun < 1 || c.Custom.MaxRun < c.Custom.MinRun {
			return nil, fmt.Errorf("%w: custom bounds need 1 <= min <= max, got %d..%d",
				ErrInvalidConfig, c.Custom.MinRun, c.Custom.MaxRun)
		}
		out = append(out, Variant{Name: "custom", MinRun: c.Custom.MinRun, MaxRun: c.Custom.MaxRun})
	}
	if len(out) == 0 {
		out = append(out, Crucible)
	}
	return out, nil
}

// Level parses LogLevel; empty means info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}
