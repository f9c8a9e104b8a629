package services

import (
	"context"
	"encoding/json"
	"log"

	"planora/internal/models/db_models"
	"planora/internal/models/request_models"
	"planora/internal/models/response_models"
	"planora/internal/repositories"
	"planora/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, id string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]response_models.TripSummary, error)
}

type TripService struct {
	tripRepo repositories.TripRepositoryInterface
}

func NewTripService(tripRepo repositories.TripRepositoryInterface) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (*response_models.TripResponse, error) {
	it := req.Itinerary
	if it.Destination == "" || len(it.Days) == 0 {
		return nil, utils.ErrInvalidInput
	}

	payload, err := json.Marshal(it)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		Destination: it.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      it.Budget,
		Duration:    it.Duration,
		Itinerary:   payload,
	}

	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		log.Printf("Failed to persist trip: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return tripToResponse(trip)
}

func (s *TripService) GetTrip(ctx context.Context, id string) (*response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		log.Printf("Failed to load trip %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return tripToResponse(trip)
}

func (s *TripService) ListTrips(ctx context.Context, page int, pageSize int) ([]response_models.TripSummary, error) {
	trips, err := s.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		log.Printf("Failed to list trips: %v", err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, response_models.TripSummary{
			ID:          trip.ID.String(),
			Destination: trip.Destination,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			Budget:      trip.Budget,
			Duration:    trip.Duration,
			CreatedAt:   trip.CreatedAt,
		})
	}
	return summaries, nil
}

func tripToResponse(trip *db_models.Trip) (*response_models.TripResponse, error) {
	var it response_models.Itinerary
	if err := json.Unmarshal(trip.Itinerary, &it); err != nil {
		log.Printf("Stored itinerary for trip %s is unreadable: %v", trip.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Budget:      trip.Budget,
		Duration:    trip.Duration,
		CreatedAt:   trip.CreatedAt,
		Itinerary:   it,
	}, nil
}
