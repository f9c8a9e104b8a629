package itinerary_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"planora/internal/api/controllers"
	"planora/internal/services"
	"planora/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryClient,
	ProvideFallbackPlanner,
	ProvidePlannerService,
	ProvideItineraryController)

// AIConfig holds configuration for the itinerary AI client
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideItineraryClient creates an AI itinerary client based on environment
// variables. A nil client is a valid configuration: the planner serves the
// deterministic fallback itinerary on its own.
func ProvideItineraryClient() (utils.ItineraryClientInterface, error) {
	config := getAIConfig()

	if config.APIKey == "" {
		log.Println("No AI provider credentials found, itineraries will use the built-in planner only")
		return nil, nil
	}

	log.Printf("Initializing %s itinerary client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIItineraryClient(config.APIKey, config.Model), nil
	default:
		client, err := utils.NewGeminiItineraryClient(config.APIKey, config.Model)
		if err != nil {
			log.Printf("Failed to create Gemini client, continuing without AI: %v", err)
			return nil, nil
		}
		return client, nil
	}
}

func ProvideFallbackPlanner() *services.FallbackPlanner {
	return services.NewFallbackPlanner(services.NewInterestRegistry())
}

func ProvidePlannerService(fallback *services.FallbackPlanner, aiClient utils.ItineraryClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(fallback, aiClient)
}

func ProvideItineraryController(plannerService services.PlannerServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(plannerService)
}

func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	switch strings.ToLower(provider) {
	case "openai":
		return AIConfig{
			Provider: "openai",
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			Model:    getEnvWithDefault("OPENAI_MODEL", ""),
		}
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		return AIConfig{
			Provider: "gemini",
			APIKey:   apiKey,
			Model:    getEnvWithDefault("GEMINI_MODEL", ""),
		}
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
