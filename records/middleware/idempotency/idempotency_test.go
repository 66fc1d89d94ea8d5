package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"
)

// createMiddlewareRequest creates a middleware.Request for testing
func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"switch-event-123"}},
			expectedKey: "switch-event-123",
		},
		{
			name:        "surrounding_whitespace_is_trimmed",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"  switch-event-123  "}},
			expectedKey: "switch-event-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{IDEMPOTENCY_HEADER: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{IDEMPOTENCY_HEADER: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IDEMPOTENCY_HEADER: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/v1/call-records/started", tc.headers, nil)

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestGenerateBodyHash(t *testing.T) {
	type payload struct {
		CallID string `json:"call_id"`
	}

	t.Run("nil_payload_hashes_empty", func(t *testing.T) {
		req := createMiddlewareRequest(context.Background(), "/v1/call-records/started", http.Header{}, nil)

		assert.Empty(t, generateBodyHash(req))
	})

	t.Run("same_payload_same_hash", func(t *testing.T) {
		a := createMiddlewareRequest(context.Background(), "/v1/call-records/started", http.Header{}, &payload{CallID: "abc"})
		b := createMiddlewareRequest(context.Background(), "/v1/call-records/started", http.Header{}, &payload{CallID: "abc"})

		assert.NotEmpty(t, generateBodyHash(a))
		assert.Equal(t, generateBodyHash(a), generateBodyHash(b))
	})

	t.Run("different_payload_different_hash", func(t *testing.T) {
		a := createMiddlewareRequest(context.Background(), "/v1/call-records/started", http.Header{}, &payload{CallID: "abc"})
		b := createMiddlewareRequest(context.Background(), "/v1/call-records/started", http.Header{}, &payload{CallID: "def"})

		assert.NotEqual(t, generateBodyHash(a), generateBodyHash(b))
	})
}
