package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Options for loading config. ConfigPath is relative to the working
// directory unless absolute.
type Options struct {
	ConfigPath   string
	SkipValidate bool // e.g. for config print
	// Overrides apply last (flags > env > file > defaults). Nil means no
	// CLI overrides.
	Overrides *Overrides
}

// Overrides holds CLI flag values that take precedence over env/file/defaults.
// Only non-nil fields are applied.
type Overrides struct {
	ListenAddr      *string
	MCPPath         *string
	DefaultLanguage *string
	ForvoAPIKey     *string
}

// Load builds config with precedence: defaults → .oto2mcp.toml → env vars →
// Overrides. Returns an error suitable for exit code 2 when invalid.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	// Local dotenv files for developer ergonomics. Real env wins:
	// explicit env > .env.local > .env.
	if err := loadDotEnvFiles(".env.local", ".env"); err != nil {
		return nil, fmt.Errorf("CONFIG_INVALID: failed loading dotenv files: %w", err)
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = ".oto2mcp.toml"
	}
	if !filepath.IsAbs(configPath) {
		if wd, err := os.Getwd(); err == nil {
			configPath = filepath.Join(wd, configPath)
		}
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("CONFIG_INVALID: cannot read config file %s: %w", configPath, err)
		}
	} else {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("CONFIG_INVALID: malformed TOML in %s: %w", configPath, err)
		}
	}

	// Env overlay
	if v := os.Getenv("FORVO_API_KEY"); v != "" {
		cfg.ForvoAPIKey = v
	}
	if v := os.Getenv("OTO2MCP_LANG"); v != "" {
		cfg.DefaultLanguage = v
	}
	if v := os.Getenv("OTO2MCP_LISTEN"); v != "" {
		cfg.ListenAddr = v
	}

	// CLI overrides (highest precedence)
	if opts.Overrides != nil {
		applyOverrides(&cfg, opts.Overrides)
	}

	if !opts.SkipValidate {
		if err := Validate(&cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func applyOverrides(cfg *Config, o *Overrides) {
	if o.ListenAddr != nil {
		cfg.ListenAddr = *o.ListenAddr
	}
	if o.MCPPath != nil {
		cfg.MCPPath = *o.MCPPath
	}
	if o.DefaultLanguage != nil {
		cfg.DefaultLanguage = *o.DefaultLanguage
	}
	if o.ForvoAPIKey != nil {
		cfg.ForvoAPIKey = *o.ForvoAPIKey
	}
}

// loadDotEnvFiles loads each existing dotenv file without clobbering
// variables already present in the environment.
func loadDotEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := godotenv.Load(path); err != nil {
			return err
		}
	}
	return nil
}
