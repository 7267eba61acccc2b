package dtos

// APIResponse is the JSON envelope every endpoint returns.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// OptionInfo describes a purchasable flight add-on.
type OptionInfo struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// FlightInfo is the search-result / seat-map view of a flight.
type FlightInfo struct {
	StartLocation  string       `json:"start_location"`
	EndLocation    string       `json:"end_location"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	StartTime      string       `json:"start_time"`
	EndTime        string       `json:"end_time"`
	Slug           string       `json:"slug"`
	AvailableSeats int          `json:"available_seats"`
	Options        []OptionInfo `json:"options"`
	Price          float64      `json:"price"`
	IsCancelled    bool         `json:"is_cancelled"`
}

// SeatInfo is one seat in a seat map.
type SeatInfo struct {
	Number      int  `json:"number"`
	IsAvailable bool `json:"is_available"`
}

// SeatMap partitions a flight's seats by seat type display name.
type SeatMap map[string][]SeatInfo

// FlightSeatsResponse is the payload of GET /flight/{slug}/{date}.
type FlightSeatsResponse struct {
	Flight FlightInfo `json:"flight"`
	Seats  SeatMap    `json:"seats"`
}

// TicketInfo is the cabinet view of a purchased ticket.
type TicketInfo struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Seat      int          `json:"seat"`
	SeatType  string       `json:"seat_type"`
	Options   []OptionInfo `json:"options"`
}

// CabinetResponse is the passenger self-service payload.
type CabinetResponse struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Tickets   []TicketInfo `json:"tickets"`
}

// BookingResult is returned after a successful booking: everything the
// client needs to follow through to the hosted checkout.
type BookingResult struct {
	TicketIDs   []uint `json:"ticket_ids"`
	ProductName string `json:"product_name"`
	TotalCents  int64  `json:"total_cents"`
	Quantity    int    `json:"quantity"`
	PaymentPath string `json:"payment_path"`
}

// CheckoutResponse carries the hosted checkout redirect URL.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// StaffRedirectResponse names the landing page for a staff user.
type StaffRedirectResponse struct {
	Group    string `json:"group"`
	Redirect string `json:"redirect"`
}

// BoardResult is the gate's view of a boarding attempt.
type BoardResult struct {
	Registered bool   `json:"registered"`
	Message    string `json:"message"`
}
