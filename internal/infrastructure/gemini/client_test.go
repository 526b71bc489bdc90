package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsphere/pkg/errors"
)

func TestGenerateReturnsFirstCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "headphones")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Buy it now."}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	text, err := client.Generate(context.Background(), "Should I buy headphones?")
	require.NoError(t, err)
	assert.Equal(t, "Buy it now.", text)
}

func TestGenerateRejectsUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))
}

func TestGeneratePropagatesUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("", "url").Configured())
	assert.True(t, NewClient("key", "url").Configured())
}
