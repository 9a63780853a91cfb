package config

import (
	"oto2mcp/internal/fetch"
	"oto2mcp/internal/forvo"
	"oto2mcp/internal/jpod"
)

const DefaultProtocolVersion = "2025-11-25"

// Config is the fully resolved process configuration. Precedence:
// defaults → .oto2mcp.toml → dotenv/env → CLI overrides.
type Config struct {
	ListenAddr      string `toml:"listen_addr"`
	MCPPath         string `toml:"mcp_path"`
	ProtocolVersion string `toml:"protocol_version"`

	// ForvoAPIKey is never read from the config file; it comes from the
	// environment (FORVO_API_KEY) so the file stays safe to commit.
	ForvoAPIKey  string `toml:"-"`
	ForvoBaseURL string `toml:"forvo_base_url"`
	JpodBaseURL  string `toml:"jpod_base_url"`

	// DefaultLanguage is the provider language code substituted when a tool
	// call omits one.
	DefaultLanguage string `toml:"default_language"`

	// RequestTimeoutSeconds bounds each individual HTTP request, not a
	// whole tool call.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
	// MaxRedirects bounds redirect chains per request.
	MaxRedirects int `toml:"max_redirects"`
}

func Default() Config {
	return Config{
		ListenAddr:            "127.0.0.1:0",
		MCPPath:               "/mcp",
		ProtocolVersion:       DefaultProtocolVersion,
		ForvoBaseURL:          forvo.DefaultBaseURL,
		JpodBaseURL:           jpod.DefaultBaseURL,
		DefaultLanguage:       "ja",
		RequestTimeoutSeconds: 15,
		MaxRedirects:          fetch.DefaultMaxRedirects,
	}
}
