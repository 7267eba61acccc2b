package gorm

import "time"

type Airplane struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Seats []Seat `gorm:"foreignKey:AirplaneID"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}

type SeatType struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex"`
}

// TableName specifies the table name for GORM
func (SeatType) TableName() string {
	return "seat_types"
}

// Seat belongs to one airplane and one seat type. Seat numbers are
// unique per airplane, not globally.
type Seat struct {
	ID         uint `gorm:"column:id;primaryKey"`
	AirplaneID uint `gorm:"column:airplane_id;uniqueIndex:idx_airplane_seat_number"`
	SeatTypeID uint `gorm:"column:seat_type_id"`
	SeatNumber int  `gorm:"column:seat_number;uniqueIndex:idx_airplane_seat_number"`

	// Relationships
	SeatType SeatType `gorm:"foreignKey:SeatTypeID"`
}

// TableName specifies the table name for GORM
func (Seat) TableName() string {
	return "seats"
}
