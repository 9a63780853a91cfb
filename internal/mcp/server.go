package mcp

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"oto2mcp/internal/config"
	"oto2mcp/internal/fetch"
	"oto2mcp/internal/jpod"
)

const serverName = "oto2mcp"

// Version is the single source of truth for the build version, reported by
// initialize and the CLI version command.
const Version = "0.2.0"

// EventEmitter receives structured server events (NDJSON logging in --json
// mode). level is "info" or "error".
type EventEmitter func(level, event string, data map[string]interface{})

// Server is the MCP endpoint: a JSON-RPC 2.0 surface exposing the
// pronunciation tools. Calls are independent; the only shared state is the
// session registry.
type Server struct {
	cfg     *config.Config
	tools   map[string]toolDefinition
	fetcher *fetch.Fetcher
	jpod    *jpod.Client

	eventEmitter EventEmitter

	mu       sync.Mutex
	sessions map[string]struct{}
}

// NewServer wires providers from config. The Forvo client is constructed
// per call (newForvoClient) so a missing key fails the affected tool, not
// server startup.
func NewServer(cfg *config.Config) *Server {
	fetcher := fetch.New(time.Duration(cfg.RequestTimeoutSeconds)*time.Second, cfg.MaxRedirects)
	jp := jpod.NewClient(fetcher)
	if cfg.JpodBaseURL != "" {
		jp.BaseURL = cfg.JpodBaseURL
	}
	s := &Server{
		cfg:      cfg,
		fetcher:  fetcher,
		jpod:     jp,
		sessions: map[string]struct{}{},
	}
	s.tools = s.buildToolRegistry()
	return s
}

// SetEventEmitter installs the NDJSON event sink.
func (s *Server) SetEventEmitter(emit EventEmitter) {
	s.eventEmitter = emit
}

func (s *Server) emit(level, event string, data map[string]interface{}) {
	if s.eventEmitter != nil {
		s.eventEmitter(level, event, data)
	}
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    *rpcErrorData `json:"data,omitempty"`
}

type rpcErrorData struct {
	Code      string `json:"code"`
	Retryable bool   `json:"retryable"`
}

// Handler returns the HTTP handler for the MCP path.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handleRPC)
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, rpcResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: -32700, Message: "parse error"},
		})
		return
	}

	switch req.Method {
	case "initialize":
		s.handleInitialize(w, req.ID)
	case "notifications/initialized":
		w.WriteHeader(http.StatusAccepted)
	case "ping":
		writeResult(w, http.StatusOK, req.ID, map[string]interface{}{})
	case "tools/list":
		s.handleToolsList(w, req.ID)
	case "tools/call":
		s.handleToolsCall(r.Context(), w, req.Params, req.ID)
	default:
		writeResponse(w, http.StatusOK, rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: -32601, Message: "method not found: " + req.Method},
		})
	}
}

func (s *Server) handleInitialize(w http.ResponseWriter, id interface{}) {
	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = struct{}{}
	s.mu.Unlock()

	w.Header().Set("Mcp-Session-Id", sessionID)
	writeResult(w, http.StatusOK, id, map[string]interface{}{
		"protocolVersion": s.cfg.ProtocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{"listChanged": false},
		},
		"serverInfo": map[string]interface{}{
			"name":    serverName,
			"version": Version,
		},
	})
}

// Serve blocks while handling HTTP. Cancel ctx to initiate graceful
// shutdown; in-flight requests are allowed to drain.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(s.cfg.MCPPath, s.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// batch downloads can span several per-request timeout windows
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(listener) }()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func writeResult(w http.ResponseWriter, statusCode int, id, result interface{}) {
	writeResponse(w, statusCode, rpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func writeResponse(w http.ResponseWriter, statusCode int, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
