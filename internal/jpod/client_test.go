package jpod

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oto2mcp/internal/fetch"
	"oto2mcp/internal/model"
)

func TestDownloadAudio_SendsKanjiAndKanaQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("kanji"); got != "猫" {
			t.Errorf("kanji=%q want=%q", got, "猫")
		}
		if got := r.URL.Query().Get("kana"); got != "ねこ" {
			t.Errorf("kana=%q want=%q", got, "ねこ")
		}
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, 50000))
	}))
	defer server.Close()

	client := NewClient(fetch.New(0, 0))
	client.BaseURL = server.URL
	audio, err := client.DownloadAudio(context.Background(), "猫", "ねこ")
	if err != nil {
		t.Fatalf("DownloadAudio: %v", err)
	}
	if audio.Format != "mp3" {
		t.Fatalf("format=%s want=mp3", audio.Format)
	}
	if len(audio.Bytes) != 50000 {
		t.Fatalf("size=%d want=50000", len(audio.Bytes))
	}
}

func TestDownloadAudio_SmallPayloadIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// the provider answers unknown words with a tiny placeholder clip
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, 500))
	}))
	defer server.Close()

	client := NewClient(fetch.New(0, 0))
	client.BaseURL = server.URL
	_, err := client.DownloadAudio(context.Background(), "存在しない", "そんざいしない")
	var providerErr *model.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("error type=%T want *model.ProviderError", err)
	}
	if providerErr.Code != "NOT_FOUND" {
		t.Fatalf("code=%s want=NOT_FOUND", providerErr.Code)
	}
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatal("error should wrap model.ErrNotFound")
	}
}

func TestDownloadAudio_ExactThresholdIsRealAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, notFoundThresholdBytes))
	}))
	defer server.Close()

	client := NewClient(fetch.New(0, 0))
	client.BaseURL = server.URL
	audio, err := client.DownloadAudio(context.Background(), "猫", "ねこ")
	if err != nil {
		t.Fatalf("DownloadAudio: %v", err)
	}
	if len(audio.Bytes) != notFoundThresholdBytes {
		t.Fatalf("size=%d want=%d", len(audio.Bytes), notFoundThresholdBytes)
	}
}

func TestDownloadAudio_ServerErrorMapsToUpstreamHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(fetch.New(0, 0))
	client.BaseURL = server.URL
	_, err := client.DownloadAudio(context.Background(), "猫", "ねこ")
	var providerErr *model.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("error type=%T want *model.ProviderError", err)
	}
	if providerErr.Code != "UPSTREAM_HTTP" {
		t.Fatalf("code=%s want=UPSTREAM_HTTP", providerErr.Code)
	}
}
