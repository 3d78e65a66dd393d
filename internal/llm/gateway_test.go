package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mailtriage/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(apiKey, baseURL string) *config.Config {
	return &config.Config{
		GroqAPIKey:  apiKey,
		GroqModel:   "llama-3.1-8b-instant",
		GroqBaseURL: baseURL,
	}
}

func TestInvoke_DisabledModeIsDeterministic(t *testing.T) {
	client := NewClient(testConfig("", "https://api.groq.com/openai/v1"), zerolog.Nop())

	messages := []Message{{Role: RoleUser, Content: "Categorize this"}}

	first := client.Invoke(context.Background(), messages, 60)
	second := client.Invoke(context.Background(), messages, 60)

	assert.Equal(t, DisabledMessage, first)
	assert.Equal(t, first, second)
}

func TestInvoke_ReturnsProviderTextVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Important  "}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig("test-key", srv.URL), zerolog.Nop())

	reply := client.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "Categorize"}}, 60)

	// No trimming at this layer
	assert.Equal(t, "  Important  ", reply)
}

func TestInvoke_ProviderFailureBecomesDiagnosticText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(testConfig("test-key", srv.URL), zerolog.Nop())

	reply := client.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 60)

	assert.True(t, strings.HasPrefix(reply, ErrorPrefix), "got: %s", reply)
	assert.NotEqual(t, DisabledMessage, reply)
}

func TestInvoke_UnreachableProviderBecomesDiagnosticText(t *testing.T) {
	// Closed server: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(testConfig("test-key", srv.URL), zerolog.Nop())

	reply := client.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 60)

	assert.True(t, strings.HasPrefix(reply, ErrorPrefix), "got: %s", reply)
}

func TestInvoke_EmptyChoicesBecomesDiagnosticText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig("test-key", srv.URL), zerolog.Nop())

	reply := client.Invoke(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 60)

	assert.True(t, strings.HasPrefix(reply, ErrorPrefix), "got: %s", reply)
}

func TestDisabledAndErrorDiagnosticsAreDistinguishable(t *testing.T) {
	assert.False(t, strings.HasPrefix(DisabledMessage, ErrorPrefix))
}
