package config

import (
	"strings"
	"testing"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_MissingForvoKeyIsAllowed(t *testing.T) {
	// jpod tools work without a key; forvo tools fail per-call instead
	cfg := Default()
	cfg.ForvoAPIKey = ""
	if err := Validate(&cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }},
		{"relative mcp path", func(c *Config) { c.MCPPath = "mcp" }},
		{"language too short", func(c *Config) { c.DefaultLanguage = "j" }},
		{"language too long", func(c *Config) { c.DefaultLanguage = "japanese" }},
		{"timeout zero", func(c *Config) { c.RequestTimeoutSeconds = 0 }},
		{"timeout huge", func(c *Config) { c.RequestTimeoutSeconds = 600 }},
		{"redirects zero", func(c *Config) { c.MaxRedirects = 0 }},
		{"redirects huge", func(c *Config) { c.MaxRedirects = 100 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := Validate(&cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.HasPrefix(err.Error(), "CONFIG_INVALID") {
				t.Fatalf("error %q should carry the CONFIG_INVALID prefix", err.Error())
			}
		})
	}
}
