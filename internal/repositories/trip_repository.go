package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"planora/internal/models/db_models"
)

type TripRepositoryInterface interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip) error
	GetTripByID(ctx context.Context, id string) (*db_models.Trip, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]db_models.Trip, error)
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepositoryInterface {
	return &TripRepository{db: db}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) GetTripByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListTrips(ctx context.Context, page int, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
