// Package llm adapts an OpenAI-compatible API to ports.GenerationGateway.
package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultImageModel  = openai.CreateImageModelDallE3
	defaultTimeout     = 60 * time.Second
	defaultTemperature = 0.7
)

// Config for the generation gateway.
type Config struct {
	APIKey     string
	Model      string        // default: gpt-4o-mini
	ImageModel string        // default: dall-e-3
	BaseURL    string        // optional, for OpenAI-compatible providers
	Timeout    time.Duration // default: 60s
}

// Gateway generates meals, plans and meal images.
type Gateway struct {
	client     *openai.Client
	model      string
	imageModel string
	log        zerolog.Logger
}

// NewGateway builds a Gateway. The HTTP client timeout bounds every call in
// addition to the request context.
func NewGateway(cfg Config, log zerolog.Logger) *Gateway {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = defaultImageModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Gateway{
		client:     openai.NewClientWithConfig(oc),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		log:        log,
	}
}

func (g *Gateway) GenerateMeal(ctx context.Context, prefs domain.MealPreferences) (*domain.Meal, error) {
	content, err := g.completeJSON(ctx, "meal", mealPrompt(prefs))
	if err != nil {
		return nil, err
	}
	return parseMeal(content)
}

func (g *Gateway) GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.WeeklyPlan, error) {
	content, err := g.completeJSON(ctx, "plan", planPrompt(req))
	if err != nil {
		return nil, err
	}
	return parsePlan(content)
}

// GenerateImage returns a hosted URL of a square food photograph.
func (g *Gateway) GenerateImage(ctx context.Context, title, description string) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         imagePrompt(title, description),
		Model:          g.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		g.log.Warn().Err(err).Dur("duration", time.Since(start)).Msg("image generation failed")
		return "", providerError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", &domain.GenerationError{Message: "the image service returned no image"}
	}
	g.log.Debug().Dur("duration", time.Since(start)).Msg("image generated")
	return resp.Data[0].URL, nil
}

func (g *Gateway) completeJSON(ctx context.Context, kind, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: defaultTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		g.log.Warn().Err(err).Str("kind", kind).Dur("duration", time.Since(start)).Msg("chat completion failed")
		return "", providerError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &domain.GenerationError{Message: "the meal service returned no answer"}
	}

	g.log.Debug().
		Str("kind", kind).
		Int("tokens", resp.Usage.TotalTokens).
		Dur("duration", time.Since(start)).
		Msg("chat completion done")
	return resp.Choices[0].Message.Content, nil
}

// providerError keeps the provider's own message, which is what the user sees.
// Cancellation is passed through untouched.
func providerError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &domain.GenerationError{Message: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.Err != nil {
		return &domain.GenerationError{Message: reqErr.Err.Error(), Err: err}
	}
	return &domain.GenerationError{Message: err.Error(), Err: err}
}
