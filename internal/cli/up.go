package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"oto2mcp/internal/config"
	"oto2mcp/internal/mcp"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the MCP server",
	RunE:  runUp,
}

var (
	upListen  string
	upMcpPath string
	upLang    string
)

func init() {
	upCmd.Flags().StringVar(&upListen, "listen", "", "host:port to listen on (default from config)")
	upCmd.Flags().StringVar(&upMcpPath, "mcp-path", "", "HTTP path for MCP endpoint (default from config)")
	upCmd.Flags().StringVar(&upLang, "lang", "", "default provider language code (default from config)")
}

func runUp(_ *cobra.Command, _ []string) error {
	// Precedence: flags > env > file > defaults
	overrides := &config.Overrides{}
	if upListen != "" {
		overrides.ListenAddr = &upListen
	}
	if upMcpPath != "" {
		overrides.MCPPath = &upMcpPath
	}
	if upLang != "" {
		overrides.DefaultLanguage = &upLang
	}

	cfg, err := config.Load(config.Options{
		ConfigPath: globalFlags.ConfigPath,
		Overrides:  overrides,
	})
	if err != nil {
		exitWith(ExitConfigInvalid, "ERROR: "+err.Error())
	}

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		exitWith(ExitBindFailure, "ERROR: server bind failure: "+err.Error())
	}
	mcpURL := fmt.Sprintf("http://%s%s", listener.Addr().String(), cfg.MCPPath)

	server := mcp.NewServer(cfg)
	if globalFlags.JSON {
		server.SetEventEmitter(emitNDJSON)
	}

	st := newStyles(os.Stdout, globalFlags.JSON)
	if !globalFlags.Quiet && !globalFlags.JSON {
		fmt.Println(st.banner(), st.dim("v"+mcp.Version))
		fmt.Println()
		fmt.Println(st.sectionHeader("MCP endpoint"))
		fmt.Printf("  %-10s %s\n", "URL:", st.url(mcpURL))
		fmt.Println(st.kv("Protocol", cfg.ProtocolVersion))
		fmt.Println(st.kv("Language", cfg.DefaultLanguage))
		if cfg.ForvoAPIKey == "" {
			fmt.Println(st.warnPrefix(), "FORVO_API_KEY not set; forvo tools will fail until it is")
		}
		fmt.Println()
	}

	if globalFlags.JSON {
		emitNDJSON("info", "server_started", map[string]interface{}{
			"url":              mcpURL,
			"protocol_version": cfg.ProtocolVersion,
			"forvo_configured": cfg.ForvoAPIKey != "",
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx, listener)
}

// emitNDJSON writes one JSON object per line to stdout.
func emitNDJSON(level, event string, data map[string]interface{}) {
	out := map[string]interface{}{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"event": event,
		"data":  data,
	}
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(out)
}
