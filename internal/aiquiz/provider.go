package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty model response")

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) ([]GeneratedQuestion, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider reads GEMINI_API_KEY (or the Vertex settings) from the
// environment through the genai client defaults.
func NewGeminiProvider(ctx context.Context, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) ([]GeneratedQuestion, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)

	questions, err := parseQuestions(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Failed to decode model output")
		return nil, err
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions))
	return questions, nil
}

// parseQuestions accepts the model output with or without markdown fences.
func parseQuestions(raw string) ([]GeneratedQuestion, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return nil, ErrEmptyResponse
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	clean = strings.TrimSpace(clean)

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}
