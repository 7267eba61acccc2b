package gorm

import "time"

// Price is a shared value object referenced by flights, options and
// luggage. Amounts are immutable once created.
type Price struct {
	ID     uint    `gorm:"column:id;primaryKey"`
	Amount float64 `gorm:"column:amount;type:numeric(8,2);not null"`
}

// TableName specifies the table name for GORM
func (Price) TableName() string {
	return "prices"
}

// Flight is a scheduled route instance. Its seats are drawn from the
// owning airplane's seating chart; the m2m never references seats of
// another airplane.
type Flight struct {
	ID            uint      `gorm:"column:id;primaryKey"`
	AirplaneID    uint      `gorm:"column:airplane_id"`
	PriceID       uint      `gorm:"column:price_id"`
	StartLocation string    `gorm:"column:start_location;type:varchar(255);index"`
	EndLocation   string    `gorm:"column:end_location;type:varchar(255);index"`
	StartDate     time.Time `gorm:"column:start_date;type:date"`
	EndDate       time.Time `gorm:"column:end_date;type:date"`
	StartTime     string    `gorm:"column:start_time;type:varchar(8)"`
	EndTime       string    `gorm:"column:end_time;type:varchar(8)"`
	IsCancelled   bool      `gorm:"column:is_cancelled;default:false"`
	Slug          string    `gorm:"column:slug;uniqueIndex"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Airplane Airplane `gorm:"foreignKey:AirplaneID"`
	Price    Price    `gorm:"foreignKey:PriceID"`
	Seats    []Seat   `gorm:"many2many:flight_seats"`
	Tickets  []Ticket `gorm:"foreignKey:FlightID"`
	Options  []Option `gorm:"foreignKey:FlightID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// Option is a paid add-on (meal, extra legroom, ...) sold per flight.
type Option struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:text"`
	FlightID    uint   `gorm:"column:flight_id"`
	PriceID     uint   `gorm:"column:price_id"`

	// Relationships
	Price Price `gorm:"foreignKey:PriceID"`
}

// TableName specifies the table name for GORM
func (Option) TableName() string {
	return "options"
}
