package constants

// Seat type display names, as seeded into the seat_types table.
const (
	SeatTypeEconomy  = "Economy"
	SeatTypePremium  = "Premium"
	SeatTypeBusiness = "Business"
	SeatTypeFirst    = "First"
)

// SeatTypeNames in cabin order, used by the seed command and seat maps.
var SeatTypeNames = []string{
	SeatTypeEconomy,
	SeatTypePremium,
	SeatTypeBusiness,
	SeatTypeFirst,
}
