package repositories

import (
	"context"
	"fmt"

	"skyward/aerodesk/internal/constants"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"gorm.io/gorm"
)

// PassengerRepository handles passenger account operations using GORM
type PassengerRepository struct {
	db *gorm.DB
}

// NewPassengerRepository creates a new GORM-based passenger repository
func NewPassengerRepository(db *gorm.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// GetByEmail retrieves a passenger by email.
// Returns (nil, nil) when no account exists.
func (r *PassengerRepository) GetByEmail(ctx context.Context, email string) (*gormModels.Passenger, error) {
	var passenger gormModels.Passenger

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&passenger).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch passenger: %w", err)
	}

	return &passenger, nil
}

// GetByEmailWithGroups retrieves a passenger with group memberships
// preloaded, for login and the staff guard.
func (r *PassengerRepository) GetByEmailWithGroups(ctx context.Context, email string) (*gormModels.Passenger, error) {
	var passenger gormModels.Passenger

	err := r.db.WithContext(ctx).
		Preload("Groups").
		Where("email = ?", email).
		First(&passenger).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch passenger with groups: %w", err)
	}

	return &passenger, nil
}

// Create inserts a new passenger account.
func (r *PassengerRepository) Create(ctx context.Context, passenger *gormModels.Passenger) error {
	if err := r.db.WithContext(ctx).Create(passenger).Error; err != nil {
		return fmt.Errorf("failed to create passenger: %w", err)
	}
	return nil
}

// MarkStaff flips the staff flag on an existing account.
func (r *PassengerRepository) MarkStaff(ctx context.Context, passengerID uint) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Passenger{}).
		Where("id = ?", passengerID).
		Update("is_staff", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark passenger as staff: %w", result.Error)
	}
	return nil
}

// GetGroupByName resolves a staff group row.
// Returns (nil, nil) when the group is unknown.
func (r *PassengerRepository) GetGroupByName(ctx context.Context, name constants.StaffGroup) (*gormModels.StaffGroup, error) {
	var group gormModels.StaffGroup

	err := r.db.WithContext(ctx).
		Where("name = ?", name.String()).
		First(&group).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff group: %w", err)
	}

	return &group, nil
}

// AddToGroup attaches a passenger to a staff group.
func (r *PassengerRepository) AddToGroup(ctx context.Context, passenger *gormModels.Passenger, group *gormModels.StaffGroup) error {
	if err := r.db.WithContext(ctx).Model(passenger).Association("Groups").Append(group); err != nil {
		return fmt.Errorf("failed to add passenger to group: %w", err)
	}
	return nil
}
