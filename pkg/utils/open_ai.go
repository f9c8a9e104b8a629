package utils

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"planora/internal/models/response_models"
)

const openAIAttemptTimeout = 30 * time.Second

// OpenAIItineraryClient is the chat-completion variant of the itinerary
// provider, using JSON-object response mode.
type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(apiKey, model string) *OpenAIItineraryClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIItineraryClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIItineraryClient) GenerateItinerary(ctx context.Context, req PlanRequest) (*response_models.Itinerary, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, openAIAttemptTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: BuildItineraryPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderTransport, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no completion choices returned", ErrProviderContract)
	}

	itinerary, err := DecodeItinerary(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if err := ValidateItinerary(itinerary, len(req.Days)); err != nil {
		return nil, err
	}
	return itinerary, nil
}
