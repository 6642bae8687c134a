// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"hetscan-core/engine"
	"hetscan-core/het"
	"hetscan-core/sexmap"
)

// Config is the optional YAML run configuration. Precedence is
// file < HETSCAN_* environment variables < command-line flags.
type Config struct {
	HeterogameticSex string  `yaml:"heterogametic_sex"`
	LinkageThreshold float64 `yaml:"linkage_threshold"`
	Alpha            float64 `yaml:"alpha"`
	MinLoci          int     `yaml:"min_loci"`
	Threads          int     `yaml:"threads"`
	DBPath           string  `yaml:"db_path"`
}

// Default is the ZW-system configuration the pipeline ships with.
func Default() Config {
	return Config{
		HeterogameticSex: sexmap.Female.String(),
		LinkageThreshold: engine.DefaultLinkageThreshold,
		Alpha:            engine.DefaultAlpha,
		MinLoci:          het.DefaultMinLoci,
	}
}

// Load reads path (if non-empty) over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	envOverride(&cfg.HeterogameticSex, "HETSCAN_HETEROGAMETIC_SEX")
	envOverrideFloat(&cfg.LinkageThreshold, "HETSCAN_LINKAGE_THRESHOLD")
	envOverrideFloat(&cfg.Alpha, "HETSCAN_ALPHA")
	envOverrideInt(&cfg.MinLoci, "HETSCAN_MIN_LOCI")
	envOverrideInt(&cfg.Threads, "HETSCAN_THREADS")
	envOverride(&cfg.DBPath, "HETSCAN_DB_PATH")
	return cfg, nil
}

// Heterogametic resolves the configured sex label.
func (c Config) Heterogametic() (sexmap.Sex, error) {
	return sexmap.Parse(c.HeterogameticSex)
}

// Validate rejects parameter values the pipeline cannot run with.
func (c Config) Validate() error {
	if _, err := c.Heterogametic(); err != nil {
		return fmt.Errorf("heterogametic_sex: %w", err)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0,1), got %g", c.Alpha)
	}
	if c.LinkageThreshold <= 0 {
		return fmt.Errorf("linkage_threshold must be > 0, got %g", c.LinkageThreshold)
	}
	if c.MinLoci < 0 {
		return fmt.Errorf("min_loci must be ≥ 0, got %d", c.MinLoci)
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads must be ≥ 0, got %d", c.Threads)
	}
	return nil
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
