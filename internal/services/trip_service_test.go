package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"planora/internal/models/db_models"
	"planora/internal/models/request_models"
	"planora/internal/models/response_models"
	"planora/pkg/utils"
)

type stubTripRepo struct {
	created *db_models.Trip
	byID    map[string]*db_models.Trip
	trips   []db_models.Trip
	err     error
}

func (r *stubTripRepo) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	if r.err != nil {
		return r.err
	}
	trip.ID = uuid.New()
	r.created = trip
	return nil
}

func (r *stubTripRepo) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byID[id], nil
}

func (r *stubTripRepo) ListTrips(ctx context.Context, page, pageSize int) ([]db_models.Trip, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.trips, nil
}

func sampleSaveRequest() request_models.SaveTripRequest {
	return request_models.SaveTripRequest{
		StartDate: "2024-05-01",
		EndDate:   "2024-05-03",
		Itinerary: response_models.Itinerary{
			Destination: "Kyoto, Japan",
			Duration:    "3 days",
			Budget:      "medium",
			Days: []response_models.DayPlan{
				{Title: "Day 1", Activities: []response_models.Activity{{Title: "Temple walk"}}},
			},
		},
	}
}

func TestSaveTripPersistsItinerary(t *testing.T) {
	repo := &stubTripRepo{}
	svc := NewTripService(repo)

	resp, err := svc.SaveTrip(context.Background(), sampleSaveRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created == nil {
		t.Fatal("trip was not persisted")
	}
	if repo.created.Destination != "Kyoto, Japan" {
		t.Errorf("destination = %q", repo.created.Destination)
	}

	var stored response_models.Itinerary
	if err := json.Unmarshal(repo.created.Itinerary, &stored); err != nil {
		t.Fatalf("stored itinerary unreadable: %v", err)
	}
	if len(stored.Days) != 1 {
		t.Errorf("stored days = %d, want 1", len(stored.Days))
	}

	if resp.ID == "" {
		t.Error("response missing trip id")
	}
	if resp.Itinerary.Destination != "Kyoto, Japan" {
		t.Errorf("response destination = %q", resp.Itinerary.Destination)
	}
}

func TestSaveTripRejectsIncompleteItinerary(t *testing.T) {
	svc := NewTripService(&stubTripRepo{})

	req := sampleSaveRequest()
	req.Itinerary.Destination = ""
	if _, err := svc.SaveTrip(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("empty destination: err = %v, want ErrInvalidInput", err)
	}

	req = sampleSaveRequest()
	req.Itinerary.Days = nil
	if _, err := svc.SaveTrip(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("no days: err = %v, want ErrInvalidInput", err)
	}
}

func TestSaveTripRepositoryFailure(t *testing.T) {
	svc := NewTripService(&stubTripRepo{err: errors.New("connection refused")})

	if _, err := svc.SaveTrip(context.Background(), sampleSaveRequest()); !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}

func TestGetTripNotFound(t *testing.T) {
	svc := NewTripService(&stubTripRepo{byID: map[string]*db_models.Trip{}})

	if _, err := svc.GetTrip(context.Background(), uuid.NewString()); !errors.Is(err, utils.ErrTripNotFound) {
		t.Errorf("err = %v, want ErrTripNotFound", err)
	}
}

func TestGetTripRoundTrip(t *testing.T) {
	payload, _ := json.Marshal(sampleSaveRequest().Itinerary)
	id := uuid.New()
	trip := &db_models.Trip{
		Destination: "Kyoto, Japan",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-03",
		Budget:      "medium",
		Duration:    "3 days",
		Itinerary:   payload,
	}
	trip.ID = id

	svc := NewTripService(&stubTripRepo{byID: map[string]*db_models.Trip{id.String(): trip}})

	resp, err := svc.GetTrip(context.Background(), id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != id.String() {
		t.Errorf("id = %q", resp.ID)
	}
	if resp.Itinerary.Duration != "3 days" {
		t.Errorf("itinerary duration = %q", resp.Itinerary.Duration)
	}
}

func TestListTripsSummaries(t *testing.T) {
	first := db_models.Trip{Destination: "Kyoto, Japan", Budget: "medium", Duration: "3 days"}
	first.ID = uuid.New()
	second := db_models.Trip{Destination: "Lisbon, Portugal", Budget: "low", Duration: "2 days"}
	second.ID = uuid.New()

	svc := NewTripService(&stubTripRepo{trips: []db_models.Trip{first, second}})

	summaries, err := svc.ListTrips(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len = %d, want 2", len(summaries))
	}
	if summaries[0].Destination != "Kyoto, Japan" || summaries[1].Destination != "Lisbon, Portugal" {
		t.Errorf("summaries = %+v", summaries)
	}
}
