package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "skyward/aerodesk/internal/models/gorm"

	"gorm.io/gorm"
)

// FlightRepository handles flight table operations using GORM
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new GORM-based flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// GetBySlug retrieves a flight by its slug with price, options and
// seating chart preloaded. Returns (nil, nil) when no flight matches.
func (r *FlightRepository) GetBySlug(ctx context.Context, slug string) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("Price").
		Preload("Options.Price").
		Preload("Seats.SeatType").
		Where("slug = ?", slug).
		First(&flight).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// Search retrieves flights on the exact route and date. Cancellation
// and availability filtering happen in the service layer.
func (r *FlightRepository) Search(ctx context.Context, startLocation, endLocation string, startDate time.Time) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("Price").
		Preload("Options.Price").
		Where("start_location = ? AND end_location = ? AND start_date = ?", startLocation, endLocation, startDate).
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}

	return flights, nil
}

// GetAll retrieves every flight with price preloaded.
func (r *FlightRepository) GetAll(ctx context.Context) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("Price").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights: %w", err)
	}

	return flights, nil
}

// SetCancelled updates the cancellation flag by slug. No cascades:
// existing tickets are untouched.
func (r *FlightRepository) SetCancelled(ctx context.Context, slug string, cancelled bool) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("slug = ?", slug).
		Update("is_cancelled", cancelled)

	if result.Error != nil {
		return fmt.Errorf("failed to update cancellation flag: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("flight not found with slug: %s", slug)
	}

	return nil
}

// CountSeats counts the seats assigned to the flight's seating chart.
func (r *FlightRepository) CountSeats(ctx context.Context, flightID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Table("flight_seats").
		Where("flight_id = ?", flightID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count flight seats: %w", err)
	}

	return count, nil
}

// SeatByNumber resolves a seat number against the flight's seating
// chart. Returns (nil, nil) when the flight carries no such seat.
func (r *FlightRepository) SeatByNumber(ctx context.Context, flightID uint, seatNumber int) (*gormModels.Seat, error) {
	var seat gormModels.Seat

	err := r.db.WithContext(ctx).
		Joins("JOIN flight_seats ON flight_seats.seat_id = seats.id").
		Where("flight_seats.flight_id = ? AND seats.seat_number = ?", flightID, seatNumber).
		First(&seat).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve seat: %w", err)
	}

	return &seat, nil
}
