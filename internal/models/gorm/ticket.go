package gorm

import "time"

// Ticket binds one passenger to one seat on one flight. The composite
// unique index on (flight_id, seat_id) is what actually prevents
// double-booking; the pre-insert availability check only exists to give
// a friendly error message.
type Ticket struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	FlightID    uint      `gorm:"column:flight_id;uniqueIndex:idx_flight_seat"`
	SeatID      uint      `gorm:"column:seat_id;uniqueIndex:idx_flight_seat"`
	PassengerID uint      `gorm:"column:passenger_id"`
	Slug        string    `gorm:"column:slug;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Flight    Flight    `gorm:"foreignKey:FlightID"`
	Seat      Seat      `gorm:"foreignKey:SeatID"`
	Passenger Passenger `gorm:"foreignKey:PassengerID"`
	Options   []Option  `gorm:"many2many:ticket_options"`
	Luggage   []Luggage `gorm:"foreignKey:TicketID"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

// Luggage is a checked bag attached to a ticket, priced separately.
type Luggage struct {
	ID       uint    `gorm:"column:id;primaryKey"`
	TicketID uint    `gorm:"column:ticket_id"`
	PriceID  uint    `gorm:"column:price_id"`
	Weight   float64 `gorm:"column:weight"`

	// Relationships
	Price Price `gorm:"foreignKey:PriceID"`
}

// TableName specifies the table name for GORM
func (Luggage) TableName() string {
	return "luggage"
}

// BoardingRegistration is the one-time gate check-in record. Existence
// means "already boarded"; there is no un-boarding operation.
type BoardingRegistration struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	TicketID  uint      `gorm:"column:ticket_id;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Ticket Ticket `gorm:"foreignKey:TicketID"`
}

// TableName specifies the table name for GORM
func (BoardingRegistration) TableName() string {
	return "boarding_registrations"
}
