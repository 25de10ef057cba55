package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shivashettydarshan/Document-summerize/internal/config"
)

type openaiBackend struct {
	client *openai.Client
	model  string
	speed  float64
}

// NewOpenAIBackend creates a Backend that renders speech through the OpenAI
// audio endpoint.
func NewOpenAIBackend(apiKey string, cfg config.TTSConfig) (Backend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	return &openaiBackend{
		client: openai.NewClient(apiKey),
		model:  cfg.Model,
		speed:  cfg.Speed,
	}, nil
}

func (b *openaiBackend) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := b.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(b.model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          b.speed,
	})
	if err != nil {
		return nil, fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}

	return data, nil
}
