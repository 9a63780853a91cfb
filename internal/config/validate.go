package config

import (
	"fmt"
	"strings"
)

// Validate checks required fields and ranges. The Forvo key is deliberately
// NOT required here: the jpod tools work without it, and the forvo tools
// fail per-call with an actionable CONFIG_INVALID error instead.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("CONFIG_INVALID: nil config")
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("CONFIG_INVALID: listen_addr must not be empty")
	}
	if !strings.HasPrefix(cfg.MCPPath, "/") {
		return fmt.Errorf("CONFIG_INVALID: mcp_path %q must start with /", cfg.MCPPath)
	}
	if lang := strings.TrimSpace(cfg.DefaultLanguage); len(lang) < 2 || len(lang) > 5 {
		return fmt.Errorf("CONFIG_INVALID: default_language %q must be 2-5 characters", cfg.DefaultLanguage)
	}
	if cfg.RequestTimeoutSeconds < 1 || cfg.RequestTimeoutSeconds > 120 {
		return fmt.Errorf("CONFIG_INVALID: request_timeout_seconds=%d; allowed: 1-120", cfg.RequestTimeoutSeconds)
	}
	if cfg.MaxRedirects < 1 || cfg.MaxRedirects > 20 {
		return fmt.Errorf("CONFIG_INVALID: max_redirects=%d; allowed: 1-20", cfg.MaxRedirects)
	}
	return nil
}
