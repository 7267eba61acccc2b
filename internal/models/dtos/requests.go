package dtos

// SearchFlightRequest mirrors the landing-page search form.
type SearchFlightRequest struct {
	StartLocation   string `json:"start_location" validate:"required,max=255"`
	EndLocation     string `json:"end_location" validate:"required,max=255"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	PassengerNumber int    `json:"passenger_number" validate:"required,min=1"`
}

// BookingPassenger is one passenger slot in a booking submission.
// Seat is the seat number picked for this passenger; Options carries
// the add-on IDs they selected.
type BookingPassenger struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Seat      *int   `json:"seat"`
	Options   []uint `json:"options"`
}

// BookingRequest is the POST body for the booking endpoint. The
// passenger count from the URL must match len(Passengers); per-slot
// checks are done by the booking service so the error messages match
// the form wording.
type BookingRequest struct {
	Passengers []BookingPassenger `json:"passengers" validate:"required,dive"`
}

// BoardRequest carries the ticket number typed in at the gate.
type BoardRequest struct {
	TicketNumber uint `json:"ticket_number" validate:"required"`
}

// LoginRequest is shared by passenger and staff login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegistrationRequest is passenger self-registration.
type RegistrationRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// StaffRegistrationRequest creates or promotes a staff account and
// attaches it to a group.
type StaffRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	Group     string `json:"group" validate:"required,oneof=gate_managers check_in_managers supervisors"`
}
