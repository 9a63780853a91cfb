package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"oto2mcp/internal/forvo"
	"oto2mcp/internal/model"
)

const (
	toolNameForvoSearch        = "oto2mcp.forvo_search"
	toolNameForvoBest          = "oto2mcp.forvo_best"
	toolNameForvoDownload      = "oto2mcp.forvo_download"
	toolNameForvoDownloadBatch = "oto2mcp.forvo_download_batch"
	toolNameJpodDownload       = "oto2mcp.jpod_download"
	toolNameStats              = "oto2mcp.stats"

	// maxWordLen bounds every word/kanji/kana argument before it reaches
	// the network layer.
	maxWordLen = 100
	// maxBatchItems caps a single batch call; violating it fails the whole
	// call before any network activity.
	maxBatchItems = 50

	defaultSearchLimit = 10
	orderRateDesc      = "rate-desc"
	orderDateDesc      = "date-desc"
)

var toolOrder = []string{
	toolNameForvoSearch,
	toolNameForvoBest,
	toolNameForvoDownload,
	toolNameForvoDownloadBatch,
	toolNameJpodDownload,
	toolNameStats,
}

var (
	sexValues   = []string{"m", "f"}
	orderValues = []string{orderRateDesc, orderDateDesc}
)

type toolHandler func(context.Context, map[string]interface{}) (toolCallResult, *toolExecutionError)

type toolDefinition struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema,omitempty"`
	handler      toolHandler            `json:"-"`
}

type toolsCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

type toolCallResult struct {
	Content           []toolContentItem `json:"content"`
	StructuredContent interface{}       `json:"structuredContent,omitempty"`
	IsError           bool              `json:"isError,omitempty"`
}

type toolContentItem struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
}

type toolExecutionError struct {
	Code      string
	Message   string
	Retryable bool
}

func (s *Server) buildToolRegistry() map[string]toolDefinition {
	return map[string]toolDefinition{
		toolNameForvoSearch: {
			Name:         toolNameForvoSearch,
			Description:  "List pronunciations of a word with contributor metadata and ratings.",
			InputSchema:  forvoSearchInputSchema(),
			OutputSchema: forvoSearchOutputSchema(),
			handler:      s.handleForvoSearchTool,
		},
		toolNameForvoBest: {
			Name:         toolNameForvoBest,
			Description:  "Pick the top-rated pronunciation of a word, best-effort filtered by voice sex.",
			InputSchema:  forvoBestInputSchema(),
			OutputSchema: forvoBestOutputSchema(),
			handler:      s.handleForvoBestTool,
		},
		toolNameForvoDownload: {
			Name:         toolNameForvoDownload,
			Description:  "Download the best pronunciation of a word as base64 MP3/Ogg audio.",
			InputSchema:  forvoBestInputSchema(),
			OutputSchema: audioOutputSchema(),
			handler:      s.handleForvoDownloadTool,
		},
		toolNameForvoDownloadBatch: {
			Name:         toolNameForvoDownloadBatch,
			Description:  "Download best pronunciations for up to 50 words concurrently; items succeed or fail independently.",
			InputSchema:  forvoDownloadBatchInputSchema(),
			OutputSchema: forvoDownloadBatchOutputSchema(),
			handler:      s.handleForvoDownloadBatchTool,
		},
		toolNameJpodDownload: {
			Name:         toolNameJpodDownload,
			Description:  "Download Japanese dictionary audio for a kanji/kana pair as base64 MP3.",
			InputSchema:  jpodDownloadInputSchema(),
			OutputSchema: audioOutputSchema(),
			handler:      s.handleJpodDownloadTool,
		},
		toolNameStats: {
			Name:         toolNameStats,
			Description:  "Provider configuration and defaults snapshot.",
			InputSchema:  statsInputSchema(),
			OutputSchema: statsOutputSchema(),
			handler:      s.handleStatsTool,
		},
	}
}

func (s *Server) handleToolsList(w http.ResponseWriter, id interface{}) {
	tools := make([]toolDefinition, 0, len(s.tools))
	for _, name := range toolOrder {
		if tool, ok := s.tools[name]; ok {
			tools = append(tools, tool)
		}
	}

	writeResult(w, http.StatusOK, id, map[string]interface{}{
		"tools": tools,
	})
}

func (s *Server) handleToolsCall(ctx context.Context, w http.ResponseWriter, rawParams json.RawMessage, id interface{}) {
	result, statusCode, rpcErr := s.processToolsCall(ctx, rawParams)
	if rpcErr != nil {
		writeResponse(w, statusCode, rpcResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error:   rpcErr,
		})
		return
	}
	writeResult(w, statusCode, id, result)
}

// processToolsCall is the dispatch boundary: every handler failure is
// converted into an error-flagged result in the uniform envelope; only
// malformed params surface as JSON-RPC errors.
func (s *Server) processToolsCall(ctx context.Context, rawParams json.RawMessage) (toolCallResult, int, *rpcError) {
	params, err := parseToolsCallParams(rawParams)
	if err != nil {
		return toolCallResult{}, http.StatusBadRequest, &rpcError{
			Code:    -32600,
			Message: err.Error(),
			Data: &rpcErrorData{
				Code:      "INVALID_FIELD",
				Retryable: false,
			},
		}
	}

	tool, ok := s.tools[params.Name]
	if !ok {
		return newToolErrorResult(toolExecutionError{
			Code:      "METHOD_NOT_FOUND",
			Message:   fmt.Sprintf("unknown tool: %s", params.Name),
			Retryable: false,
		}), http.StatusOK, nil
	}

	result, toolErr := tool.handler(ctx, params.Arguments)
	if toolErr != nil {
		s.emit("error", "tool_failed", map[string]interface{}{
			"tool":    params.Name,
			"code":    toolErr.Code,
			"message": toolErr.Message,
		})
		return newToolErrorResult(*toolErr), http.StatusOK, nil
	}

	return result, http.StatusOK, nil
}

func parseToolsCallParams(raw json.RawMessage) (toolsCallParams, error) {
	if len(raw) == 0 {
		return toolsCallParams{}, errors.New("params is required")
	}

	var params toolsCallParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return toolsCallParams{}, errors.New("invalid tools/call params")
	}

	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return toolsCallParams{}, errors.New("tools/call params.name is required")
	}
	if params.Arguments == nil {
		params.Arguments = map[string]interface{}{}
	}

	return params, nil
}

func newToolErrorResult(toolErr toolExecutionError) toolCallResult {
	text := fmt.Sprintf("ERROR: %s: %s", toolErr.Code, toolErr.Message)
	return toolCallResult{
		IsError: true,
		Content: []toolContentItem{
			{Type: "text", Text: text},
		},
		StructuredContent: map[string]interface{}{
			"error": map[string]interface{}{
				"code":      toolErr.Code,
				"message":   toolErr.Message,
				"retryable": toolErr.Retryable,
			},
		},
	}
}

func (s *Server) handleStatsTool(_ context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	if err := assertNoUnknownArguments(args, map[string]struct{}{}); err != nil {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}

	forvoConfigured := strings.TrimSpace(s.cfg.ForvoAPIKey) != ""
	structured := map[string]interface{}{
		"protocol_version": s.cfg.ProtocolVersion,
		"providers": map[string]interface{}{
			"forvo": map[string]interface{}{
				"configured": forvoConfigured,
				"base_url":   s.cfg.ForvoBaseURL,
			},
			"jpod": map[string]interface{}{
				"base_url": s.cfg.JpodBaseURL,
			},
		},
		"defaults": map[string]interface{}{
			"language":        s.cfg.DefaultLanguage,
			"timeout_seconds": s.cfg.RequestTimeoutSeconds,
			"max_redirects":   s.cfg.MaxRedirects,
		},
	}

	text := fmt.Sprintf("forvo configured=%t default language=%s", forvoConfigured, s.cfg.DefaultLanguage)

	return toolCallResult{
		Content: []toolContentItem{
			{Type: "text", Text: text},
		},
		StructuredContent: structured,
	}, nil
}

func (s *Server) handleForvoSearchTool(ctx context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	if err := assertNoUnknownArguments(args, map[string]struct{}{
		"word":       {},
		"language":   {},
		"country":    {},
		"sex":        {},
		"min_rating": {},
		"order":      {},
		"limit":      {},
	}); err != nil {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}

	word, toolErr := parseWordArgument(args, "word")
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	language, toolErr := s.parseLanguageArgument(args)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	country, err := parseOptionalString(args, "country")
	if err != nil {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	if country != "" && (len(country) < 2 || len(country) > 10) {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: "country must be 2-10 characters", Retryable: false}
	}
	sex, toolErr := parseEnumArgument(args, "sex", sexValues, "")
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	minRating, toolErr := parseBoundedInt(args, "min_rating", 0, 5, 0)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	order, toolErr := parseEnumArgument(args, "order", orderValues, orderRateDesc)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	limit, toolErr := parseBoundedInt(args, "limit", 1, 50, defaultSearchLimit)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	client, toolErr := s.newForvoClient()
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	// country/sex/rating are provider-side parameters here; no client-side
	// re-filtering is needed for plain search.
	items, searchErr := client.WordPronunciations(ctx, word, forvo.Query{
		Language:  language,
		Country:   country,
		Sex:       sex,
		MinRating: minRating,
		Order:     order,
		Limit:     limit,
	})
	if searchErr != nil {
		return toolCallResult{}, s.mapToolErrorFromProvider(searchErr)
	}

	serialized := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		serialized = append(serialized, serializePronunciation(item))
	}

	structured := map[string]interface{}{
		"word":     word,
		"language": language,
		"total":    len(items),
		"items":    serialized,
	}

	text := fmt.Sprintf("found %d pronunciation(s) for %q", len(items), word)
	if len(items) == 0 {
		// no results is a valid outcome, not an error
		text = fmt.Sprintf("no pronunciations found for %q in language %q", word, language)
	}

	return toolCallResult{
		Content:           []toolContentItem{{Type: "text", Text: text}},
		StructuredContent: structured,
	}, nil
}

func (s *Server) handleForvoBestTool(ctx context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	word, language, sex, toolErr := s.parseBestArguments(args)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	item, found, toolErr := s.lookupBestPronunciation(ctx, word, language, sex)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	if !found {
		return emptyResultEnvelope(word, language), nil
	}

	structured := map[string]interface{}{
		"word":          word,
		"language":      language,
		"found":         true,
		"sex_requested": sex,
		"sex_matched":   sex == "" || item.Sex == sex,
		"item":          serializePronunciation(item),
	}

	text := fmt.Sprintf("best pronunciation of %q: by %s (rating %d)", word, item.Username, item.Rate)
	return toolCallResult{
		Content:           []toolContentItem{{Type: "text", Text: text}},
		StructuredContent: structured,
	}, nil
}

func (s *Server) handleForvoDownloadTool(ctx context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	word, language, sex, toolErr := s.parseBestArguments(args)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	client, toolErr := s.newForvoClient()
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	audio, item, found, downloadErr := s.downloadBest(ctx, client, word, language, sex)
	if downloadErr != nil {
		return toolCallResult{}, s.mapToolErrorFromProvider(downloadErr)
	}
	if !found {
		return emptyResultEnvelope(word, language), nil
	}

	structured := audioStructuredContent(word, audio)
	structured["language"] = language
	structured["username"] = item.Username
	structured["sex"] = item.Sex
	structured["rating"] = item.Rate

	text := fmt.Sprintf("downloaded %d bytes of %s audio for %q (by %s)",
		len(audio.Bytes), audio.Format, word, item.Username)

	return toolCallResult{
		Content:           []toolContentItem{{Type: "text", Text: text}},
		StructuredContent: structured,
	}, nil
}

func (s *Server) handleJpodDownloadTool(ctx context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	if err := assertNoUnknownArguments(args, map[string]struct{}{
		"kanji": {},
		"kana":  {},
	}); err != nil {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}

	kanji, toolErr := parseWordArgument(args, "kanji")
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}
	kana, toolErr := parseWordArgument(args, "kana")
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	audio, downloadErr := s.jpod.DownloadAudio(ctx, kanji, kana)
	if downloadErr != nil {
		return toolCallResult{}, s.mapToolErrorFromProvider(downloadErr)
	}

	structured := audioStructuredContent(kanji, audio)
	structured["kanji"] = kanji
	structured["kana"] = kana

	text := fmt.Sprintf("downloaded %d bytes of %s audio for %s (%s)",
		len(audio.Bytes), audio.Format, kanji, kana)

	return toolCallResult{
		Content:           []toolContentItem{{Type: "text", Text: text}},
		StructuredContent: structured,
	}, nil
}

// parseBestArguments covers the shared argument surface of forvo_best and
// forvo_download.
func (s *Server) parseBestArguments(args map[string]interface{}) (word, language, sex string, toolErr *toolExecutionError) {
	if err := assertNoUnknownArguments(args, map[string]struct{}{
		"word":     {},
		"language": {},
		"sex":      {},
	}); err != nil {
		return "", "", "", &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	word, toolErr = parseWordArgument(args, "word")
	if toolErr != nil {
		return "", "", "", toolErr
	}
	language, toolErr = s.parseLanguageArgument(args)
	if toolErr != nil {
		return "", "", "", toolErr
	}
	sex, toolErr = parseEnumArgument(args, "sex", sexValues, "")
	if toolErr != nil {
		return "", "", "", toolErr
	}
	return word, language, sex, nil
}

// lookupBestPronunciation fetches the provider-sorted list and applies the
// best-effort sex filter. The sex filter is deliberately client-side here:
// a provider-side filter would return zero items, losing the fallback.
func (s *Server) lookupBestPronunciation(ctx context.Context, word, language, sex string) (model.Pronunciation, bool, *toolExecutionError) {
	client, toolErr := s.newForvoClient()
	if toolErr != nil {
		return model.Pronunciation{}, false, toolErr
	}
	items, err := client.WordPronunciations(ctx, word, forvo.Query{
		Language: language,
		Order:    orderRateDesc,
	})
	if err != nil {
		return model.Pronunciation{}, false, s.mapToolErrorFromProvider(err)
	}
	item, found := forvo.SelectBest(items, sex)
	return item, found, nil
}

// downloadBest is the two-request flow shared by the single and batch
// download paths. found=false means the word has no pronunciations at all.
func (s *Server) downloadBest(ctx context.Context, client *forvo.Client, word, language, sex string) (model.AudioResult, model.Pronunciation, bool, error) {
	items, err := client.WordPronunciations(ctx, word, forvo.Query{
		Language: language,
		Order:    orderRateDesc,
	})
	if err != nil {
		return model.AudioResult{}, model.Pronunciation{}, false, err
	}
	item, found := forvo.SelectBest(items, sex)
	if !found {
		return model.AudioResult{}, model.Pronunciation{}, false, nil
	}
	audio, err := client.DownloadAudio(ctx, item)
	if err != nil {
		return model.AudioResult{}, model.Pronunciation{}, false, err
	}
	return audio, item, true, nil
}

// emptyResultEnvelope reports "no pronunciations" as an informational
// success, never as an error payload.
func emptyResultEnvelope(word, language string) toolCallResult {
	return toolCallResult{
		Content: []toolContentItem{
			{Type: "text", Text: fmt.Sprintf("no pronunciations found for %q in language %q", word, language)},
		},
		StructuredContent: map[string]interface{}{
			"word":     word,
			"language": language,
			"found":    false,
		},
	}
}

func audioStructuredContent(word string, audio model.AudioResult) map[string]interface{} {
	return map[string]interface{}{
		"word":         word,
		"found":        true,
		"format":       audio.Format,
		"size_bytes":   len(audio.Bytes),
		"audio_base64": base64.StdEncoding.EncodeToString(audio.Bytes),
		"filename":     audioFileName(word, audio.Format),
		"source_url":   audio.URL,
	}
}

// audioFileName builds a media-store friendly name from the word text and
// the inferred format.
func audioFileName(word, format string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "_",
	)
	name := replacer.Replace(strings.TrimSpace(word))
	if len(name) > 50 {
		name = name[:50]
	}
	if name == "" {
		name = "audio"
	}
	return name + "." + format
}

func (s *Server) newForvoClient() (*forvo.Client, *toolExecutionError) {
	apiKey := strings.TrimSpace(s.cfg.ForvoAPIKey)
	if apiKey == "" {
		return nil, &toolExecutionError{Code: "CONFIG_INVALID", Message: "FORVO_API_KEY is required", Retryable: false}
	}
	client := forvo.NewClient(apiKey, s.fetcher)
	if baseURL := strings.TrimSpace(s.cfg.ForvoBaseURL); baseURL != "" {
		client.BaseURL = baseURL
	}
	return client, nil
}

// mapToolErrorFromProvider converts provider failures into sanitized tool
// errors; unexpected error types are logged via the event emitter and
// reported generically.
func (s *Server) mapToolErrorFromProvider(err error) *toolExecutionError {
	if err == nil {
		return nil
	}
	var providerErr *model.ProviderError
	if errors.As(err, &providerErr) {
		msg := strings.TrimSpace(providerErr.Message)
		if msg == "" {
			msg = providerErr.Error()
		}
		return &toolExecutionError{
			Code:      providerErr.Code,
			Message:   msg,
			Retryable: providerErr.Retryable,
		}
	}
	s.emit("error", "tool_error", map[string]interface{}{
		"error": err.Error(),
	})
	return &toolExecutionError{
		Code:      "INTERNAL_ERROR",
		Message:   "internal server error",
		Retryable: false,
	}
}

func serializePronunciation(item model.Pronunciation) map[string]interface{} {
	return map[string]interface{}{
		"id":        item.ID,
		"word":      item.Word,
		"username":  item.Username,
		"sex":       item.Sex,
		"country":   item.Country,
		"pathmp3":   item.PathMP3,
		"pathogg":   item.PathOgg,
		"rate":      item.Rate,
		"num_votes": item.NumVotes,
	}
}

func assertNoUnknownArguments(args map[string]interface{}, allowed map[string]struct{}) error {
	for key := range args {
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("unknown argument: %s", key)
		}
	}
	return nil
}

// parseWordArgument enforces the shared required-string contract: present,
// string-typed, non-empty after trimming, at most maxWordLen characters.
func parseWordArgument(args map[string]interface{}, key string) (string, *toolExecutionError) {
	value, ok, err := parseRequiredString(args, key)
	if err != nil {
		return "", &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	if !ok {
		return "", &toolExecutionError{Code: "MISSING_FIELD", Message: key + " is required", Retryable: false}
	}
	if len([]rune(value)) > maxWordLen {
		return "", &toolExecutionError{
			Code:      "INVALID_RANGE",
			Message:   fmt.Sprintf("%s must be between 1 and %d characters", key, maxWordLen),
			Retryable: false,
		}
	}
	return value, nil
}

// parseLanguageArgument substitutes the configured default when absent.
func (s *Server) parseLanguageArgument(args map[string]interface{}) (string, *toolExecutionError) {
	language, err := parseOptionalString(args, "language")
	if err != nil {
		return "", &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	if language == "" {
		return s.cfg.DefaultLanguage, nil
	}
	if len(language) < 2 || len(language) > 5 {
		return "", &toolExecutionError{Code: "INVALID_FIELD", Message: "language must be 2-5 characters", Retryable: false}
	}
	return strings.ToLower(language), nil
}

// parseEnumArgument validates membership and substitutes the documented
// default when absent. The failure message names the full allowed set.
func parseEnumArgument(args map[string]interface{}, key string, allowed []string, defaultValue string) (string, *toolExecutionError) {
	value, err := parseOptionalString(args, key)
	if err != nil {
		return "", &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	if value == "" {
		return defaultValue, nil
	}
	value = strings.ToLower(value)
	for _, candidate := range allowed {
		if value == candidate {
			return value, nil
		}
	}
	return "", &toolExecutionError{
		Code:      "INVALID_FIELD",
		Message:   fmt.Sprintf("%s must be one of %s", key, strings.Join(allowed, ",")),
		Retryable: false,
	}
}

// parseBoundedInt validates an optional integer within [min,max]; the
// failure message names the bounds.
func parseBoundedInt(args map[string]interface{}, key string, min, max, defaultValue int) (int, *toolExecutionError) {
	raw, ok := args[key]
	if !ok {
		return defaultValue, nil
	}
	value, err := parseInteger(raw, key)
	if err != nil {
		return 0, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}
	if value < min || value > max {
		return 0, &toolExecutionError{
			Code:      "INVALID_RANGE",
			Message:   fmt.Sprintf("%s must be between %d and %d", key, min, max),
			Retryable: false,
		}
	}
	return value, nil
}

func parseRequiredString(args map[string]interface{}, key string) (string, bool, error) {
	raw, ok := args[key]
	if !ok {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("%s must be a string", key)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", true, fmt.Errorf("%s must be a non-empty string", key)
	}
	return value, true, nil
}

func parseOptionalString(args map[string]interface{}, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return strings.TrimSpace(value), nil
}

// parseInteger accepts the JSON number form of an integer. Decoded JSON
// numbers arrive as float64; a fractional part is rejected.
func parseInteger(raw interface{}, key string) (int, error) {
	f, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if math.Trunc(f) != f {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int(f), nil
}
