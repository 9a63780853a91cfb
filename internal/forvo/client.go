// Package forvo adapts the keyed REST-action pronunciation provider. URLs
// are path-segment encoded: /{key}/format/json/action/{action}/name/value...
package forvo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"oto2mcp/internal/fetch"
	"oto2mcp/internal/model"
)

const (
	// DefaultBaseURL is the free-tier API host.
	DefaultBaseURL = "https://apifree.forvo.com"

	actionWordPronunciations = "word-pronunciations"
)

// Query holds the optional provider-side filters for a word lookup.
// Zero values mean "omit the path segment".
type Query struct {
	Language  string
	Country   string
	Sex       string
	MinRating int
	Order     string
	Limit     int
}

// Client talks to the keyed provider. APIKey is required for every call and
// comes from process configuration, never from tool arguments.
type Client struct {
	APIKey  string
	BaseURL string
	Fetcher *fetch.Fetcher
}

// NewClient builds a Client against the default host.
func NewClient(apiKey string, fetcher *fetch.Fetcher) *Client {
	if fetcher == nil {
		fetcher = fetch.New(0, 0)
	}
	return &Client{
		APIKey:  strings.TrimSpace(apiKey),
		BaseURL: DefaultBaseURL,
		Fetcher: fetcher,
	}
}

// wordPronunciationsResponse mirrors the provider JSON. A missing items
// field decodes as an empty slice rather than a fault.
type wordPronunciationsResponse struct {
	Attributes struct {
		Total int `json:"total"`
	} `json:"attributes"`
	Items []model.Pronunciation `json:"items"`
}

// WordPronunciations looks up recordings of word. An empty result list is a
// valid outcome and returns (nil, nil) items with no error.
func (c *Client) WordPronunciations(ctx context.Context, word string, q Query) ([]model.Pronunciation, error) {
	reqURL, err := c.buildURL(actionWordPronunciations, word, q)
	if err != nil {
		return nil, err
	}

	res, err := c.Fetcher.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, fetch.StatusError("forvo", res)
	}

	var parsed wordPronunciationsResponse
	if err := json.Unmarshal(res.Body, &parsed); err != nil {
		return nil, &model.ProviderError{
			Code:      "UPSTREAM_HTTP",
			Message:   "failed to decode provider response",
			Retryable: false,
			Cause:     err,
		}
	}
	return parsed.Items, nil
}

// DownloadAudio fetches the bytes behind an item's preferred audio URL.
func (c *Client) DownloadAudio(ctx context.Context, item model.Pronunciation) (model.AudioResult, error) {
	audioURL := item.AudioURL()
	if audioURL == "" {
		return model.AudioResult{}, &model.ProviderError{
			Code:      "NOT_FOUND",
			Message:   "pronunciation item has no audio URL",
			Retryable: false,
			Cause:     model.ErrNotFound,
		}
	}

	res, err := c.Fetcher.Get(ctx, audioURL)
	if err != nil {
		return model.AudioResult{}, err
	}
	if !res.OK() {
		return model.AudioResult{}, fetch.StatusError("forvo audio", res)
	}

	return model.AudioResult{
		Bytes:  res.Body,
		Format: model.InferAudioFormat(audioURL),
		URL:    audioURL,
	}, nil
}

// buildURL assembles the path-segment encoded request. The key check runs
// before any network activity.
func (c *Client) buildURL(action, word string, q Query) (string, error) {
	if c.APIKey == "" {
		return "", &model.ProviderError{
			Code:      "CONFIG_INVALID",
			Message:   "FORVO_API_KEY is required",
			Retryable: false,
		}
	}

	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	segments := []string{
		base,
		url.PathEscape(c.APIKey),
		"format", "json",
		"action", url.PathEscape(action),
		"word", url.PathEscape(word),
	}
	appendParam := func(name, value string) {
		if value != "" {
			segments = append(segments, name, url.PathEscape(value))
		}
	}
	appendParam("language", q.Language)
	appendParam("country", q.Country)
	appendParam("sex", q.Sex)
	if q.MinRating > 0 {
		appendParam("rate", strconv.Itoa(q.MinRating))
	}
	appendParam("order", q.Order)
	if q.Limit > 0 {
		appendParam("limit", strconv.Itoa(q.Limit))
	}

	return strings.Join(segments, "/"), nil
}
