package openai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/PrakharGEN/AI-FAQ-CHATBOT/internal/domain"
)

const translateInstruction = "You are a translator. Translate the user's text into the " +
	"target language. Reply with the translation only, no commentary."

// Translator translates answers via an OpenAI-compatible chat completion API.
type Translator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// TranslatorConfig holds the translation provider settings.
type TranslatorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewTranslator creates an OpenAI-compatible translation provider.
func NewTranslator(cfg *TranslatorConfig) *Translator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Translator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Translate implements domain.Translator.
func (t *Translator) Translate(ctx context.Context, text, language string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateInstruction},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Target language: %s\n\n%s", language, text),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w: %w", language, domain.ErrTranslationProviderError, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty translation response: %w", domain.ErrTranslationProviderError)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("blank translation: %w", domain.ErrTranslationProviderError)
	}
	return out, nil
}

var _ domain.Translator = (*Translator)(nil)
