package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/sync/errgroup"

	"oto2mcp/internal/forvo"
)

// batchConcurrency caps concurrent upstream downloads per batch call.
const batchConcurrency = 8

type batchItem struct {
	Word     string
	Language string
	Sex      string
}

func (s *Server) handleForvoDownloadBatchTool(ctx context.Context, args map[string]interface{}) (toolCallResult, *toolExecutionError) {
	if err := assertNoUnknownArguments(args, map[string]struct{}{
		"items": {},
	}); err != nil {
		return toolCallResult{}, &toolExecutionError{Code: "INVALID_FIELD", Message: err.Error(), Retryable: false}
	}

	items, toolErr := parseBatchItems(args, s.cfg.DefaultLanguage)
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	client, toolErr := s.newForvoClient()
	if toolErr != nil {
		return toolCallResult{}, toolErr
	}

	results := s.runBatch(ctx, client, items)

	succeeded := 0
	for _, r := range results {
		if ok, _ := r["ok"].(bool); ok {
			succeeded++
		}
	}

	structured := map[string]interface{}{
		"total":     len(items),
		"succeeded": succeeded,
		"failed":    len(items) - succeeded,
		"results":   results,
	}

	text := fmt.Sprintf("batch complete: %d/%d succeeded", succeeded, len(items))
	return toolCallResult{
		Content:           []toolContentItem{{Type: "text", Text: text}},
		StructuredContent: structured,
	}, nil
}

// runBatch fans the items out over a bounded worker group. Each item
// succeeds or fails on its own; the group never returns an error and the
// output preserves input order.
func (s *Server) runBatch(ctx context.Context, client *forvo.Client, items []batchItem) []map[string]interface{} {
	results := make([]map[string]interface{}, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = s.downloadBatchItem(gctx, client, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Server) downloadBatchItem(ctx context.Context, client *forvo.Client, item batchItem) map[string]interface{} {
	audio, pron, found, err := s.downloadBest(ctx, client, item.Word, item.Language, item.Sex)
	if err != nil {
		toolErr := s.mapToolErrorFromProvider(err)
		return map[string]interface{}{
			"word": item.Word,
			"ok":   false,
			"error": map[string]interface{}{
				"code":      toolErr.Code,
				"message":   toolErr.Message,
				"retryable": toolErr.Retryable,
			},
		}
	}
	if !found {
		return map[string]interface{}{
			"word":  item.Word,
			"ok":    true,
			"found": false,
		}
	}
	return map[string]interface{}{
		"word":         item.Word,
		"ok":           true,
		"found":        true,
		"format":       audio.Format,
		"size_bytes":   len(audio.Bytes),
		"audio_base64": base64.StdEncoding.EncodeToString(audio.Bytes),
		"filename":     audioFileName(item.Word, audio.Format),
		"username":     pron.Username,
		"rating":       pron.Rate,
	}
}

// parseBatchItems validates the whole items array up front so a malformed
// entry fails the call before any network activity.
func parseBatchItems(args map[string]interface{}, defaultLanguage string) ([]batchItem, *toolExecutionError) {
	raw, ok := args["items"]
	if !ok {
		return nil, &toolExecutionError{Code: "MISSING_FIELD", Message: "items is required", Retryable: false}
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, &toolExecutionError{Code: "INVALID_FIELD", Message: "items must be an array", Retryable: false}
	}
	if len(list) == 0 {
		return nil, &toolExecutionError{Code: "INVALID_FIELD", Message: "items must not be empty", Retryable: false}
	}
	if len(list) > maxBatchItems {
		return nil, &toolExecutionError{
			Code:      "INVALID_RANGE",
			Message:   fmt.Sprintf("items must contain at most %d entries", maxBatchItems),
			Retryable: false,
		}
	}

	items := make([]batchItem, 0, len(list))
	for i, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			return nil, &toolExecutionError{
				Code:      "INVALID_FIELD",
				Message:   fmt.Sprintf("items[%d] must be an object", i),
				Retryable: false,
			}
		}
		if err := assertNoUnknownArguments(obj, map[string]struct{}{
			"word":     {},
			"language": {},
			"sex":      {},
		}); err != nil {
			return nil, &toolExecutionError{
				Code:      "INVALID_FIELD",
				Message:   fmt.Sprintf("items[%d]: %s", i, err.Error()),
				Retryable: false,
			}
		}
		word, toolErr := parseWordArgument(obj, "word")
		if toolErr != nil {
			return nil, &toolExecutionError{
				Code:      toolErr.Code,
				Message:   fmt.Sprintf("items[%d]: %s", i, toolErr.Message),
				Retryable: false,
			}
		}
		language, err := parseOptionalString(obj, "language")
		if err != nil {
			return nil, &toolExecutionError{
				Code:      "INVALID_FIELD",
				Message:   fmt.Sprintf("items[%d]: %s", i, err.Error()),
				Retryable: false,
			}
		}
		if language == "" {
			language = defaultLanguage
		} else if len(language) < 2 || len(language) > 5 {
			return nil, &toolExecutionError{
				Code:      "INVALID_FIELD",
				Message:   fmt.Sprintf("items[%d]: language must be 2-5 characters", i),
				Retryable: false,
			}
		}
		sex, toolErr := parseEnumArgument(obj, "sex", sexValues, "")
		if toolErr != nil {
			return nil, &toolExecutionError{
				Code:      toolErr.Code,
				Message:   fmt.Sprintf("items[%d]: %s", i, toolErr.Message),
				Retryable: false,
			}
		}
		items = append(items, batchItem{Word: word, Language: language, Sex: sex})
	}
	return items, nil
}
