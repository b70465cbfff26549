package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chronicler-app/chronicler/internal/completion"
	"github.com/chronicler-app/chronicler/internal/config"
	"github.com/chronicler-app/chronicler/internal/llm"
)

// Server is the provider-agnostic completion gateway. Every request carries
// its own provider connection parameters, so no provider state is held here;
// clients are built per call and credentials are never cached.
type Server struct {
	timeout time.Duration

	// newClient is swapped out in tests.
	newClient func(ctx context.Context, s llm.Settings) (llm.Client, error)
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		timeout:   cfg.RequestTimeout(),
		newClient: llm.NewClient,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/complete", s.Complete)
	r.POST("/test", s.TestConnection)
	r.GET("/providers", s.Providers)
	r.GET("/models/:providerType", s.Models)

	return r
}

// Complete handles one completion exchange. Failures are answered as
// error-shaped CompletionResponse bodies rather than bare error objects, so
// callers can treat every outcome uniformly as data.
func (s *Server) Complete(c *gin.Context) {
	var req completion.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request"))
		return
	}
	if req.Prompt == "" || req.ProviderType == "" || req.Model == "" {
		c.JSON(http.StatusBadRequest, errorResponse("prompt, provider_type and model are required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	client, err := s.newClient(ctx, llm.Settings{
		Provider: req.ProviderType,
		Model:    req.Model,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	defer closeClient(client)

	result, err := client.Generate(ctx, llm.Request{
		Prompt:       assemblePrompt(req),
		SystemPrompt: req.SystemPrompt,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
	})
	if err != nil {
		log.Printf("completion failed for provider %s: %v", req.ProviderType, err)
		c.JSON(http.StatusBadGateway, errorResponse(err.Error()))
		return
	}

	resp := completion.CompletionResponse{
		Text:         result.Text,
		FinishReason: result.FinishReason,
	}
	if result.InputTokens > 0 || result.OutputTokens > 0 {
		resp.Usage = &completion.Usage{
			InputTokens:  result.InputTokens,
			OutputTokens: result.OutputTokens,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// TestConnection probes the provider with a one-token request. The outcome is
// always a 200 with {success, message}; a failing provider is a report, not a
// fault.
func (s *Server) TestConnection(c *gin.Context) {
	var req completion.TestConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, completion.TestConnectionResponse{
			Success: false,
			Message: "Invalid request",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	client, err := s.newClient(ctx, llm.Settings{
		Provider: req.ProviderType,
		Model:    req.Model,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
	})
	if err != nil {
		c.JSON(http.StatusOK, completion.TestConnectionResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	defer closeClient(client)

	if _, err := client.Generate(ctx, llm.Request{Prompt: "Hi", MaxTokens: 1}); err != nil {
		c.JSON(http.StatusOK, completion.TestConnectionResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, completion.TestConnectionResponse{
		Success: true,
		Message: "Connection successful",
	})
}

func (s *Server) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, providerCatalog)
}

func (s *Server) Models(c *gin.Context) {
	providerType := c.Param("providerType")
	models, ok := modelCatalog[providerType]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider type: " + providerType})
		return
	}
	c.JSON(http.StatusOK, models)
}

func errorResponse(message string) completion.CompletionResponse {
	return completion.CompletionResponse{
		Text:         "",
		FinishReason: completion.FinishError,
		ErrorMessage: message,
	}
}

func closeClient(client llm.Client) {
	if closer, ok := client.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("failed to close llm client: %v", err)
		}
	}
}
