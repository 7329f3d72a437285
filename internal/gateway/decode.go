package gateway

import (
	"bytes"
	"encoding/json"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

// decodeList tolerates the two list shapes the upstream API has shipped over
// time: a bare JSON array and a paginated envelope with a "results" field.
func decodeList[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "malformed upstream list")
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "malformed upstream list envelope")
	}
	if envelope.Results == nil {
		envelope.Results = []T{}
	}
	return envelope.Results, nil
}

// upstreamError converts an upstream error body into a typed error, keeping
// the most specific message available: field-level validation messages win
// over generic detail strings.
func upstreamError(status int, raw []byte) error {
	message := extractMessage(raw)

	base := appErrors.ErrUpstream
	switch status {
	case 400:
		base = appErrors.ErrValidation
	case 401:
		base = appErrors.ErrInvalidCredentials
	case 403:
		base = appErrors.ErrForbidden
	case 404:
		base = appErrors.ErrNotFound
	case 409:
		base = appErrors.ErrConflict
	}

	return appErrors.Clone(base, message)
}

func extractMessage(raw []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "message", "error"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}

	// Field validation errors arrive as {"field": ["msg", ...]}.
	for field, v := range body {
		if items, ok := v.([]interface{}); ok && len(items) > 0 {
			if msg, ok := items[0].(string); ok && msg != "" {
				return field + ": " + msg
			}
		}
	}

	return ""
}
