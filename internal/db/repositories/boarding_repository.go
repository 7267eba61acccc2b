package repositories

import (
	"context"
	"fmt"

	gormModels "skyward/aerodesk/internal/models/gorm"

	"gorm.io/gorm"
)

// BoardingRepository handles boarding_registrations using GORM
type BoardingRepository struct {
	db *gorm.DB
}

// NewBoardingRepository creates a new GORM-based boarding repository
func NewBoardingRepository(db *gorm.DB) *BoardingRepository {
	return &BoardingRepository{db: db}
}

// ExistsForTicket reports whether the ticket has already boarded.
func (r *BoardingRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.BoardingRegistration{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check boarding registration: %w", err)
	}

	return count > 0, nil
}

// Create records the one-time gate check-in. The unique index on
// ticket_id makes a concurrent duplicate fail rather than double-board.
func (r *BoardingRepository) Create(ctx context.Context, ticketID uint) error {
	reg := gormModels.BoardingRegistration{TicketID: ticketID}
	if err := r.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return fmt.Errorf("failed to create boarding registration: %w", err)
	}
	return nil
}
