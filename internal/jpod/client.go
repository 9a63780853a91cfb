// Package jpod adapts the no-credential audio provider: a fixed endpoint
// taking the word in native script plus its phonetic reading as query
// parameters and answering with raw MP3 bytes.
package jpod

import (
	"context"
	"net/url"
	"strings"

	"oto2mcp/internal/fetch"
	"oto2mcp/internal/model"
)

const (
	// DefaultBaseURL answers unknown words with a tiny placeholder clip
	// instead of a 404, hence the size heuristic below.
	DefaultBaseURL = "https://assets.languagepod101.com/dictionary/japanese/audiomp3.php"

	// notFoundThresholdBytes: 2xx bodies smaller than this are the
	// provider's "no such word" placeholder, not real audio.
	notFoundThresholdBytes = 1000
)

// Client fetches dictionary audio. No API key is required.
type Client struct {
	BaseURL string
	Fetcher *fetch.Fetcher
}

func NewClient(fetcher *fetch.Fetcher) *Client {
	if fetcher == nil {
		fetcher = fetch.New(0, 0)
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		Fetcher: fetcher,
	}
}

// DownloadAudio fetches audio for the kanji/kana pair. A too-small payload
// reports NOT_FOUND so the host never stores a silent placeholder clip.
func (c *Client) DownloadAudio(ctx context.Context, kanji, kana string) (model.AudioResult, error) {
	reqURL := c.buildURL(kanji, kana)

	res, err := c.Fetcher.Get(ctx, reqURL)
	if err != nil {
		return model.AudioResult{}, err
	}
	if !res.OK() {
		return model.AudioResult{}, fetch.StatusError("jpod", res)
	}
	if len(res.Body) < notFoundThresholdBytes {
		return model.AudioResult{}, &model.ProviderError{
			Code:      "NOT_FOUND",
			Message:   "no audio found for this kanji/kana pair",
			Retryable: false,
			Cause:     model.ErrNotFound,
		}
	}

	return model.AudioResult{
		Bytes:  res.Body,
		Format: "mp3",
		URL:    reqURL,
	}, nil
}

func (c *Client) buildURL(kanji, kana string) string {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	params := url.Values{}
	params.Set("kanji", kanji)
	params.Set("kana", kana)
	return base + "?" + params.Encode()
}
