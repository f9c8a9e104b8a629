package services

import (
	"context"
	"log"

	"planora/internal/models/request_models"
	"planora/internal/models/response_models"
	"planora/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (response_models.Itinerary, error)
}

// PlannerService orchestrates itinerary generation: validate, build the
// deterministic fallback, attempt the AI provider, and merge. The only error
// it ever returns is a validation failure; every other path resolves to a
// complete itinerary.
type PlannerService struct {
	fallback *FallbackPlanner
	aiClient utils.ItineraryClientInterface
}

// NewPlannerService wires the orchestrator. aiClient may be nil, which means
// the AI provider is unconfigured and only the deterministic path runs.
func NewPlannerService(fallback *FallbackPlanner, aiClient utils.ItineraryClientInterface) PlannerServiceInterface {
	return &PlannerService{
		fallback: fallback,
		aiClient: aiClient,
	}
}

func (s *PlannerService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (response_models.Itinerary, error) {
	prefs, fieldErrs := ValidatePreferences(req)
	if fieldErrs != nil {
		return response_models.Itinerary{}, fieldErrs
	}

	days := TravelDays(prefs)
	fallback := s.fallback.Build(prefs, days)

	if s.aiClient == nil {
		return fallback, nil
	}

	candidate, err := s.aiClient.GenerateItinerary(ctx, utils.PlanRequest{
		Destination:     prefs.Destination,
		StartDate:       prefs.StartDate.Format("2006-01-02"),
		EndDate:         prefs.EndDate.Format("2006-01-02"),
		Budget:          prefs.Budget,
		Interests:       prefs.Interests,
		GroupType:       prefs.GroupType,
		Accommodation:   prefs.Accommodation,
		SpecialRequests: prefs.SpecialRequests,
		Days:            days,
	})
	if err != nil {
		log.Printf("AI itinerary generation failed, using deterministic plan: %v", err)
		return fallback, nil
	}

	return mergeItineraries(*candidate, fallback), nil
}

// mergeItineraries overlays the AI candidate on the deterministic fallback,
// field by field: any field the provider left missing or empty takes the
// fallback's value, fields it did provide are kept whole. Days are never
// mixed between the two sources.
func mergeItineraries(candidate, fallback response_models.Itinerary) response_models.Itinerary {
	merged := candidate

	if merged.Destination == "" {
		merged.Destination = fallback.Destination
	}
	if merged.Duration == "" {
		merged.Duration = fallback.Duration
	}
	if merged.Budget == "" {
		merged.Budget = fallback.Budget
	}
	if len(merged.Interests) == 0 {
		merged.Interests = fallback.Interests
	}
	if merged.Overview == "" {
		merged.Overview = fallback.Overview
	}
	if len(merged.Tips) == 0 {
		merged.Tips = fallback.Tips
	}
	if len(merged.Days) == 0 {
		merged.Days = fallback.Days
	}

	return merged
}
