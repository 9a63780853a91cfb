package mcp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oto2mcp/internal/config"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	server := httptest.NewServer(NewServer(&cfg).Handler())
	t.Cleanup(server.Close)
	return server
}

func postRPC(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeRPC(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestInitialize_AssignsSessionAndReportsServerInfo(t *testing.T) {
	server := newTestServer(t, nil)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if resp.Header.Get("Mcp-Session-Id") == "" {
		t.Fatal("missing Mcp-Session-Id header")
	}

	var envelope struct {
		Result struct {
			ProtocolVersion string `json:"protocolVersion"`
			ServerInfo      struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	decodeRPC(t, resp, &envelope)
	if envelope.Result.ProtocolVersion != config.DefaultProtocolVersion {
		t.Fatalf("protocolVersion=%s want=%s", envelope.Result.ProtocolVersion, config.DefaultProtocolVersion)
	}
	if envelope.Result.ServerInfo.Name != "oto2mcp" {
		t.Fatalf("serverInfo.name=%s want=oto2mcp", envelope.Result.ServerInfo.Name)
	}
	if envelope.Result.ServerInfo.Version != Version {
		t.Fatalf("serverInfo.version=%s want=%s", envelope.Result.ServerInfo.Version, Version)
	}
}

func TestPing_ReturnsEmptyResult(t *testing.T) {
	server := newTestServer(t, nil)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","id":2,"method":"ping"}`)
	var envelope struct {
		Result map[string]interface{} `json:"result"`
		Error  *json.RawMessage       `json:"error"`
	}
	decodeRPC(t, resp, &envelope)
	if envelope.Error != nil {
		t.Fatalf("unexpected error: %s", string(*envelope.Error))
	}
	if envelope.Result == nil {
		t.Fatal("ping should return an empty result object, not null")
	}
}

func TestHandleRPC_RejectsNonPOST(t *testing.T) {
	server := newTestServer(t, nil)

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestHandleRPC_MalformedJSONIsParseError(t *testing.T) {
	server := newTestServer(t, nil)

	resp := postRPC(t, server.URL, `{not json`)
	var envelope struct {
		Error struct {
			Code int `json:"code"`
		} `json:"error"`
	}
	decodeRPC(t, resp, &envelope)
	if envelope.Error.Code != -32700 {
		t.Fatalf("error.code=%d want=-32700", envelope.Error.Code)
	}
}

func TestHandleRPC_UnknownMethodIsMethodNotFound(t *testing.T) {
	server := newTestServer(t, nil)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`)
	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeRPC(t, resp, &envelope)
	if envelope.Error.Code != -32601 {
		t.Fatalf("error.code=%d want=-32601", envelope.Error.Code)
	}
	if !strings.Contains(envelope.Error.Message, "resources/list") {
		t.Fatalf("error message %q should name the method", envelope.Error.Message)
	}
}

func TestToolsList_AdvertisesAllToolsWithSchemas(t *testing.T) {
	server := newTestServer(t, nil)

	resp := postRPC(t, server.URL, `{"jsonrpc":"2.0","id":4,"method":"tools/list","params":{}}`)
	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(payload))
	}

	var envelope struct {
		Result struct {
			Tools []struct {
				Name         string                 `json:"name"`
				Description  string                 `json:"description"`
				InputSchema  map[string]interface{} `json:"inputSchema"`
				OutputSchema map[string]interface{} `json:"outputSchema"`
			} `json:"tools"`
		} `json:"result"`
	}
	decodeRPC(t, resp, &envelope)

	if len(envelope.Result.Tools) != len(toolOrder) {
		t.Fatalf("tools=%d want=%d", len(envelope.Result.Tools), len(toolOrder))
	}
	for i, tool := range envelope.Result.Tools {
		if tool.Name != toolOrder[i] {
			t.Fatalf("tools[%d]=%s want=%s", i, tool.Name, toolOrder[i])
		}
		if tool.Description == "" {
			t.Fatalf("tool %s missing description", tool.Name)
		}
		if len(tool.InputSchema) == 0 {
			t.Fatalf("tool %s missing inputSchema", tool.Name)
		}
		if len(tool.OutputSchema) == 0 {
			t.Fatalf("tool %s missing outputSchema", tool.Name)
		}
	}
}
