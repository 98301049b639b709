package aiquiz

import (
	"context"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(s config.Settings) *AIQuizContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx, s.GeminiModel)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Gemini unavailable, practice generation disabled")
		provider = nil
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
