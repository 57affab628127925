package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"items-api/internal/models"
)

var jsonNull = []byte("null")

// ParseItemPayload decodes a request body into an ItemPayload.
//
// The body is either a JSON string holding the JSON document (API Gateway
// proxy events) or the document itself (direct invocations). An absent, null
// or empty-string body is reported as missing. A document that is not an
// object yields an empty payload.
func ParseItemPayload(body json.RawMessage) (*models.ItemPayload, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, NewValidationError(MsgMissingBody, nil)
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, NewValidationError("Invalid JSON in request body", err)
		}
		if text == "" {
			return nil, NewValidationError(MsgMissingBody, nil)
		}
		raw = []byte(text)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, NewValidationError("Invalid JSON in request body", err)
	}

	payload := &models.ItemPayload{}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return payload, nil
	}

	var err error
	if payload.ID, err = stringField(fields, "id"); err != nil {
		return nil, err
	}
	if payload.Name, err = stringField(fields, "name"); err != nil {
		return nil, err
	}

	return payload, nil
}

func stringField(fields map[string]any, key string) (*string, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, NewValidationError("Invalid request body", fmt.Errorf("'%s' must be a string", key))
	}
	return &s, nil
}
