package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"pet-behavior-diary/internal/platform/httpclient"

	gopenai "github.com/sashabaranov/go-openai"
)

// Config del gateway de generación.
// APIKey vacía => gateway no configurado; el router deja la feature
// degradada a unavailable en vez de tumbar el proceso.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string

	// Timeout del cliente HTTP subyacente.
	Timeout time.Duration
}

// ConfigFromEnv lee la config desde env:
// - OPENAI_API_KEY (requerido para habilitar la feature)
// - OPENAI_BASE_URL (opcional, para proxies/compatibles)
// - OPENAI_CHAT_MODEL (default gpt-4o-mini)
func ConfigFromEnv() Config {
	return Config{
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   os.Getenv("OPENAI_CHAT_MODEL"),
	}
}

// Gateway implementa generation.Gateway sobre chat completions.
type Gateway struct {
	client *gopenai.Client
	model  string
}

// NewGateway crea el gateway. Devuelve nil si no hay API key: los callers
// tratan gateway nil como "modelo no disponible".
func NewGateway(cfg Config) *Gateway {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	clientConfig := gopenai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientConfig.BaseURL = strings.TrimRight(base, "/")
	}
	clientConfig.HTTPClient = httpclient.New(timeout).HTTP

	return &Gateway{
		client: gopenai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Generate hace una chat completion de un solo turno con el prompt armado.
// Sin retry acá: el fallo es terminal para el request que lo originó.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("openai gateway not configured")
	}

	resp, err := g.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []gopenai.ChatCompletionMessage{
			{
				Role:    gopenai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty chat response")
	}

	return resp.Choices[0].Message.Content, nil
}
