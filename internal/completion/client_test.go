package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complete", r.URL.Path)
		var req CompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "openai", req.ProviderType)

		json.NewEncoder(w).Encode(CompletionResponse{
			Text:         "the tavern.",
			FinishReason: FinishStop,
			Usage:        &Usage{InputTokens: 10, OutputTokens: 3},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp := client.Complete(context.Background(), CompletionRequest{
		Prompt:       "continue",
		ProviderType: "openai",
		Model:        "gpt-4o",
	})

	assert.Equal(t, "the tavern.", resp.Text)
	assert.Equal(t, FinishStop, resp.FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 3, resp.Usage.OutputTokens)
}

func TestCompleteNormalizesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CompletionResponse{
			FinishReason: FinishError,
			ErrorMessage: "provider rejected the key",
		})
	}))
	defer srv.Close()

	resp := NewClient(srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Equal(t, "", resp.Text)
	assert.Equal(t, FinishError, resp.FinishReason)
	assert.Equal(t, "provider rejected the key", resp.ErrorMessage)
}

func TestCompleteNormalizesOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp := NewClient(srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Equal(t, FinishError, resp.FinishReason)
	assert.Equal(t, "Request failed", resp.ErrorMessage)
}

func TestCompleteNormalizesTransportFault(t *testing.T) {
	// Point the client at a closed server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resp := NewClient(srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Equal(t, FinishError, resp.FinishReason)
	assert.NotEmpty(t, resp.ErrorMessage)
}

func TestTestConnectionNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test", r.URL.Path)
		json.NewEncoder(w).Encode(TestConnectionResponse{Success: true, Message: "Connection successful"})
	}))
	defer srv.Close()

	resp := NewClient(srv.URL).TestConnection(context.Background(), TestConnectionRequest{ProviderType: "openai"})
	assert.True(t, resp.Success)

	srv.Close()
	resp = NewClient(srv.URL).TestConnection(context.Background(), TestConnectionRequest{ProviderType: "openai"})
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestListProvidersRaisesOnFailure(t *testing.T) {
	// Configuration-time operations fail fast, unlike the editing hot path.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListProviders(context.Background())
	require.Error(t, err)
	var listErr *ProviderListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, http.StatusInternalServerError, listErr.Status)
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/claude", r.URL.Path)
		json.NewEncoder(w).Encode([]ModelInfo{{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku"}})
	}))
	defer srv.Close()

	models, err := NewClient(srv.URL).ListModels(context.Background(), "claude")
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "claude-3-5-haiku-20241022", models[0].ID)
}
