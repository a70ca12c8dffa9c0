package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFetchRequest(t *testing.T) {
	c, err := NewFetchRequestContract()
	require.NoError(t, err)

	tests := []struct {
		name    string
		body    string
		wantURL string
		wantErr bool
	}{
		{name: "valid", body: `{"url":"https://example.com"}`, wantURL: "https://example.com"},
		{name: "empty object", body: `{}`},
		{name: "empty body", body: ``},
		{name: "whitespace body", body: "  \n"},
		{name: "extra fields", body: `{"url":"https://example.com","x":1}`, wantURL: "https://example.com"},
		{name: "url not string", body: `{"url":42}`, wantErr: true},
		{name: "array", body: `["https://example.com"]`, wantErr: true},
		{name: "malformed", body: `{"url":`, wantErr: true},
		{name: "trailing value", body: `{"url":"a"} {"url":"b"}`, wantErr: true},
		{name: "numeric field", body: `{"url":"https://example.com","depth":1.5}`, wantURL: "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := c.DecodeFetchRequest([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, req.URL)
		})
	}
}
