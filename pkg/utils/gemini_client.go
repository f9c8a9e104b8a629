package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"planora/internal/models/response_models"
)

const geminiAttemptTimeout = 30 * time.Second

// GeminiItineraryClient generates itineraries through Google's generative
// models, trying a fixed preference list of model names until one returns
// schema-valid output.
type GeminiItineraryClient struct {
	client *genai.Client
	models []string
}

// NewGeminiItineraryClient builds the client. preferred (usually the
// GEMINI_MODEL env value) is tried before the pinned defaults.
func NewGeminiItineraryClient(apiKey, preferred string) (*GeminiItineraryClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	candidates := []string{preferred, "gemini-2.5-pro", "gemini-2.5-flash"}
	var models []string
	seen := make(map[string]bool)
	for _, m := range candidates {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		models = append(models, m)
	}

	return &GeminiItineraryClient{client: client, models: models}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, req PlanRequest) (*response_models.Itinerary, error) {
	prompt := BuildItineraryPrompt(req)

	var lastErr error
	for _, name := range c.models {
		itinerary, err := c.generateWithModel(ctx, name, prompt, len(req.Days))
		if err != nil {
			log.Printf("Gemini model %s failed: %v", name, err)
			lastErr = err
			continue
		}
		return itinerary, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no candidate models configured", ErrProviderTransport)
	}
	return nil, fmt.Errorf("all candidate models failed: %w", lastErr)
}

func (c *GeminiItineraryClient) generateWithModel(ctx context.Context, name, prompt string, minDays int) (*response_models.Itinerary, error) {
	model := c.client.GenerativeModel(name)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(itinerarySystemInstructions)},
	}
	model.SetTemperature(0.3)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8000)

	attemptCtx, cancel := context.WithTimeout(ctx, geminiAttemptTimeout)
	defer cancel()

	resp, err := model.GenerateContent(attemptCtx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderTransport, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content generated", ErrProviderContract)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected part type", ErrProviderContract)
	}

	itinerary, err := DecodeItinerary(string(text))
	if err != nil {
		return nil, err
	}
	if err := ValidateItinerary(itinerary, minDays); err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}
