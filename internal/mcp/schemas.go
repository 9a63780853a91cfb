package mcp

// JSON schemas for the tool surface. Kept as literal maps so tools/list
// serializes them without a schema-generation dependency.

func forvoSearchInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"word": map[string]interface{}{
				"type":        "string",
				"description": "Word or phrase to look up (1-100 characters).",
				"minLength":   1,
				"maxLength":   maxWordLen,
			},
			"language": map[string]interface{}{
				"type":        "string",
				"description": "Provider language code, e.g. ja, en, de. Defaults to the configured language.",
				"minLength":   2,
				"maxLength":   5,
			},
			"country": map[string]interface{}{
				"type":        "string",
				"description": "Restrict to contributors from this country (provider country code or name).",
				"minLength":   2,
				"maxLength":   10,
			},
			"sex": map[string]interface{}{
				"type":        "string",
				"description": "Restrict to contributor voice sex.",
				"enum":        []string{"m", "f"},
			},
			"min_rating": map[string]interface{}{
				"type":        "integer",
				"description": "Minimum community rating, 0-5.",
				"minimum":     0,
				"maximum":     5,
			},
			"order": map[string]interface{}{
				"type":        "string",
				"description": "Result ordering. Defaults to rate-desc.",
				"enum":        []string{orderRateDesc, orderDateDesc},
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results, 1-50. Defaults to 10.",
				"minimum":     1,
				"maximum":     50,
			},
		},
		"required": []string{"word"},
	}
}

func forvoSearchOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"word":     map[string]interface{}{"type": "string"},
			"language": map[string]interface{}{"type": "string"},
			"total":    map[string]interface{}{"type": "integer"},
			"items": map[string]interface{}{
				"type":  "array",
				"items": pronunciationSchema(),
			},
		},
		"required": []string{"word", "language", "total", "items"},
	}
}

func forvoBestInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"word": map[string]interface{}{
				"type":        "string",
				"description": "Word or phrase to look up (1-100 characters).",
				"minLength":   1,
				"maxLength":   maxWordLen,
			},
			"language": map[string]interface{}{
				"type":        "string",
				"description": "Provider language code. Defaults to the configured language.",
				"minLength":   2,
				"maxLength":   5,
			},
			"sex": map[string]interface{}{
				"type":        "string",
				"description": "Preferred voice sex. Best effort: falls back to the top-rated item when no match exists.",
				"enum":        []string{"m", "f"},
			},
		},
		"required": []string{"word"},
	}
}

func forvoBestOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"word":          map[string]interface{}{"type": "string"},
			"language":      map[string]interface{}{"type": "string"},
			"found":         map[string]interface{}{"type": "boolean"},
			"sex_requested": map[string]interface{}{"type": "string"},
			"sex_matched":   map[string]interface{}{"type": "boolean"},
			"item":          pronunciationSchema(),
		},
		"required": []string{"word", "language", "found"},
	}
}

func forvoDownloadBatchInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"items": map[string]interface{}{
				"type":        "array",
				"description": "Words to download, at most 50 per call.",
				"minItems":    1,
				"maxItems":    maxBatchItems,
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"word": map[string]interface{}{
							"type":      "string",
							"minLength": 1,
							"maxLength": maxWordLen,
						},
						"language": map[string]interface{}{
							"type":      "string",
							"minLength": 2,
							"maxLength": 5,
						},
						"sex": map[string]interface{}{
							"type": "string",
							"enum": []string{"m", "f"},
						},
					},
					"required": []string{"word"},
				},
			},
		},
		"required": []string{"items"},
	}
}

func forvoDownloadBatchOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"total":     map[string]interface{}{"type": "integer"},
			"succeeded": map[string]interface{}{"type": "integer"},
			"failed":    map[string]interface{}{"type": "integer"},
			"results": map[string]interface{}{
				"type":        "array",
				"description": "One entry per input item, in input order.",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"word":         map[string]interface{}{"type": "string"},
						"ok":           map[string]interface{}{"type": "boolean"},
						"found":        map[string]interface{}{"type": "boolean"},
						"format":       map[string]interface{}{"type": "string"},
						"size_bytes":   map[string]interface{}{"type": "integer"},
						"audio_base64": map[string]interface{}{"type": "string"},
						"filename":     map[string]interface{}{"type": "string"},
						"error":        errorSchema(),
					},
					"required": []string{"word", "ok"},
				},
			},
		},
		"required": []string{"total", "succeeded", "failed", "results"},
	}
}

func jpodDownloadInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"kanji": map[string]interface{}{
				"type":        "string",
				"description": "Dictionary headword (1-100 characters).",
				"minLength":   1,
				"maxLength":   maxWordLen,
			},
			"kana": map[string]interface{}{
				"type":        "string",
				"description": "Reading in kana (1-100 characters).",
				"minLength":   1,
				"maxLength":   maxWordLen,
			},
		},
		"required": []string{"kanji", "kana"},
	}
}

func audioOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"word":         map[string]interface{}{"type": "string"},
			"found":        map[string]interface{}{"type": "boolean"},
			"format":       map[string]interface{}{"type": "string", "enum": []string{"mp3", "ogg"}},
			"size_bytes":   map[string]interface{}{"type": "integer"},
			"audio_base64": map[string]interface{}{"type": "string"},
			"filename":     map[string]interface{}{"type": "string"},
			"source_url":   map[string]interface{}{"type": "string"},
		},
		"required": []string{"word", "found"},
	}
}

func statsInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func statsOutputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"protocol_version": map[string]interface{}{"type": "string"},
			"providers":        map[string]interface{}{"type": "object"},
			"defaults":         map[string]interface{}{"type": "object"},
		},
		"required": []string{"protocol_version", "providers", "defaults"},
	}
}

func pronunciationSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id":        map[string]interface{}{"type": "integer"},
			"word":      map[string]interface{}{"type": "string"},
			"username":  map[string]interface{}{"type": "string"},
			"sex":       map[string]interface{}{"type": "string"},
			"country":   map[string]interface{}{"type": "string"},
			"pathmp3":   map[string]interface{}{"type": "string"},
			"pathogg":   map[string]interface{}{"type": "string"},
			"rate":      map[string]interface{}{"type": "integer"},
			"num_votes": map[string]interface{}{"type": "integer"},
		},
	}
}

func errorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"code":      map[string]interface{}{"type": "string"},
			"message":   map[string]interface{}{"type": "string"},
			"retryable": map[string]interface{}{"type": "boolean"},
		},
	}
}
