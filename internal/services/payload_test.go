package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemPayload(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantID      *string
		wantName    *string
		wantErr     bool
		wantMessage string
	}{
		{name: "absent", body: "", wantErr: true, wantMessage: MsgMissingBody},
		{name: "null", body: "null", wantErr: true, wantMessage: MsgMissingBody},
		{name: "empty string", body: `""`, wantErr: true, wantMessage: MsgMissingBody},
		{name: "object", body: `{"id":"1","name":"a"}`, wantID: strPtr("1"), wantName: strPtr("a")},
		{name: "textual object", body: `"{\"id\":\"1\",\"name\":\"a\"}"`, wantID: strPtr("1"), wantName: strPtr("a")},
		{name: "textual malformed", body: `"{not json"`, wantErr: true, wantMessage: "Invalid JSON in request body"},
		{name: "raw malformed", body: `{not json`, wantErr: true, wantMessage: "Invalid JSON in request body"},
		{name: "name only", body: `{"name":"a"}`, wantName: strPtr("a")},
		{name: "null fields", body: `{"id":null,"name":null}`},
		{name: "array", body: `[1,2]`},
		{name: "textual number", body: `"42"`},
		{name: "numeric id", body: `{"id":1,"name":"a"}`, wantErr: true, wantMessage: "Invalid request body"},
		{name: "extra fields ignored", body: `{"id":"1","name":"a","color":"red"}`, wantID: strPtr("1"), wantName: strPtr("a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body json.RawMessage
			if tt.body != "" {
				body = json.RawMessage(tt.body)
			}

			payload, err := ParseItemPayload(body)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantMessage, validationErr.Message)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, payload)
			assert.Equal(t, tt.wantID, payload.ID)
			assert.Equal(t, tt.wantName, payload.Name)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
