package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gormModels "skyward/aerodesk/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrSeatTaken is surfaced when the (flight, seat) unique index rejects
// an insert. The index is the authoritative double-booking guard.
var ErrSeatTaken = errors.New("seat already booked on this flight")

// TicketRepository handles ticket table operations using GORM
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new GORM-based ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CountForFlight counts tickets issued on a flight.
func (r *TicketRepository) CountForFlight(ctx context.Context, flightID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Where("flight_id = ?", flightID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

// TakenSeatNumbers lists the seat numbers already ticketed on a flight.
func (r *TicketRepository) TakenSeatNumbers(ctx context.Context, flightID uint) ([]int, error) {
	var numbers []int

	err := r.db.WithContext(ctx).
		Model(&gormModels.Ticket{}).
		Joins("JOIN seats ON seats.id = tickets.seat_id").
		Where("tickets.flight_id = ?", flightID).
		Pluck("seats.seat_number", &numbers).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch taken seats: %w", err)
	}

	return numbers, nil
}

// Create inserts a ticket. A unique-constraint violation on
// (flight_id, seat_id) comes back as ErrSeatTaken.
func (r *TicketRepository) Create(ctx context.Context, ticket *gormModels.Ticket) error {
	err := r.db.WithContext(ctx).Create(ticket).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSeatTaken
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// GetByID retrieves a ticket with its flight preloaded.
// Returns (nil, nil) when the ticket does not exist.
func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*gormModels.Ticket, error) {
	var ticket gormModels.Ticket

	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Seat.SeatType").
		Preload("Passenger").
		Preload("Options.Price").
		Where("id = ?", id).
		First(&ticket).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}

	return &ticket, nil
}

// GetByPassenger lists a passenger's tickets with everything the
// cabinet page renders.
func (r *TicketRepository) GetByPassenger(ctx context.Context, passengerID uint) ([]gormModels.Ticket, error) {
	var tickets []gormModels.Ticket

	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Seat.SeatType").
		Preload("Options.Price").
		Where("passenger_id = ?", passengerID).
		Order("created_at").
		Find(&tickets).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch passenger tickets: %w", err)
	}

	return tickets, nil
}

// AttachOptions links selected add-ons to a ticket.
func (r *TicketRepository) AttachOptions(ctx context.Context, ticket *gormModels.Ticket, options []gormModels.Option) error {
	if len(options) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Model(ticket).Association("Options").Append(&options); err != nil {
		return fmt.Errorf("failed to attach options: %w", err)
	}
	return nil
}

// isUniqueViolation matches both the postgres (SQLSTATE 23505) and the
// sqlite ("UNIQUE constraint failed") wording used in tests.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
