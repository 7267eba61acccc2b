package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newBookingService(db *gorm.DB, enqueuer *mockEnqueuer) *BookingService {
	flightRepo := repositories.NewFlightRepository(db)
	ticketRepo := repositories.NewTicketRepository(db)
	return NewBookingService(db, flightRepo, ticketRepo, newTestMailService(enqueuer), nil)
}

func seatPtr(n int) *int { return &n }

func TestBookSinglePassenger(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 10, time.Now().AddDate(0, 0, 7))
	option := f.addOption(t, "Hot meal", 15.50)

	enqueuer := &mockEnqueuer{}
	svc := newBookingService(db, enqueuer)
	ctx := context.Background()

	req := &dtos.BookingRequest{Passengers: []dtos.BookingPassenger{
		{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Seat:      seatPtr(3),
			Options:   []uint{option.ID},
		},
	}}

	result, err := svc.Book(ctx, f.flight.Slug, f.flight.StartDate, 1, req)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if len(result.TicketIDs) != 1 {
		t.Fatalf("Expected 1 ticket, got %d", len(result.TicketIDs))
	}
	if result.TotalCents != 11550 {
		t.Errorf("Expected total 11550 cents, got %d", result.TotalCents)
	}
	if result.Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", result.Quantity)
	}
	if result.ProductName != f.flight.Slug {
		t.Errorf("Expected product name %q, got %q", f.flight.Slug, result.ProductName)
	}
	wantPath := fmt.Sprintf("/api/v1/payment/%s/11550/1", f.flight.Slug)
	if result.PaymentPath != wantPath {
		t.Errorf("Expected payment path %q, got %q", wantPath, result.PaymentPath)
	}

	// Account was auto-created with a usable password hash.
	var passenger gormModels.Passenger
	if err := db.Where("email = ?", "ada@example.com").First(&passenger).Error; err != nil {
		t.Fatalf("Expected auto-created account: %v", err)
	}
	if passenger.PasswordHash == "" {
		t.Error("Expected a password hash on the auto-created account")
	}

	// Registration, ticket and bill mails, queued after commit.
	if len(enqueuer.items) != 3 {
		t.Fatalf("Expected 3 queued mails, got %d", len(enqueuer.items))
	}
	kinds := map[string]bool{}
	for _, item := range enqueuer.items {
		kinds[item.Kind] = true
		if item.Recipient != "ada@example.com" {
			t.Errorf("Unexpected mail recipient %q", item.Recipient)
		}
	}
	for _, kind := range []string{constants.MailSubjectRegistration, constants.MailSubjectTicket, constants.MailSubjectBill} {
		if !kinds[kind] {
			t.Errorf("Expected a %q mail", kind)
		}
	}
}

func TestBookExistingAccountSkipsRegistrationMail(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 10, time.Now().AddDate(0, 0, 7))

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := gormModels.Passenger{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("Failed to create passenger: %v", err)
	}

	enqueuer := &mockEnqueuer{}
	svc := newBookingService(db, enqueuer)

	req := &dtos.BookingRequest{Passengers: []dtos.BookingPassenger{
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Seat: seatPtr(1)},
	}}

	if _, err := svc.Book(context.Background(), f.flight.Slug, f.flight.StartDate, 1, req); err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if len(enqueuer.items) != 2 {
		t.Fatalf("Expected 2 queued mails for existing account, got %d", len(enqueuer.items))
	}
	for _, item := range enqueuer.items {
		if item.Kind == constants.MailSubjectRegistration {
			t.Error("Existing account must not receive a registration mail")
		}
	}

	// The existing password hash is untouched.
	var reloaded gormModels.Passenger
	if err := db.First(&reloaded, existing.ID).Error; err != nil {
		t.Fatalf("Failed to reload passenger: %v", err)
	}
	if reloaded.PasswordHash != string(hash) {
		t.Error("Existing password hash was overwritten")
	}
}

func TestBookMultiplePassengersAccumulatesTotal(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 10, time.Now().AddDate(0, 0, 7))

	enqueuer := &mockEnqueuer{}
	svc := newBookingService(db, enqueuer)

	req := &dtos.BookingRequest{Passengers: []dtos.BookingPassenger{
		{FirstName: "One", LastName: "Person", Email: "one@example.com", Seat: seatPtr(1)},
		{FirstName: "Two", LastName: "People", Email: "two@example.com", Seat: seatPtr(2)},
	}}

	result, err := svc.Book(context.Background(), f.flight.Slug, f.flight.StartDate, 2, req)
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if len(result.TicketIDs) != 2 {
		t.Errorf("Expected 2 tickets, got %d", len(result.TicketIDs))
	}
	if result.TotalCents != 20000 {
		t.Errorf("Expected total 20000 cents, got %d", result.TotalCents)
	}
}

func TestBookValidationMessages(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 10, time.Now().AddDate(0, 0, 7))
	f.issueTicket(t, 4, "holder@example.com")

	svc := newBookingService(db, &mockEnqueuer{})
	ctx := context.Background()

	cases := []struct {
		name       string
		passengers []dtos.BookingPassenger
		count      int
		wantMsg    string
	}{
		{
			name: "missing names",
			passengers: []dtos.BookingPassenger{
				{FirstName: "", LastName: "Person", Email: "x@example.com", Seat: seatPtr(1)},
			},
			count:   1,
			wantMsg: constants.MsgMissingNames,
		},
		{
			name: "no seat picked",
			passengers: []dtos.BookingPassenger{
				{FirstName: "A", LastName: "B", Email: "x@example.com"},
			},
			count:   1,
			wantMsg: constants.MsgPickSeat,
		},
		{
			name: "seat already taken",
			passengers: []dtos.BookingPassenger{
				{FirstName: "A", LastName: "B", Email: "x@example.com", Seat: seatPtr(4)},
			},
			count:   1,
			wantMsg: fmt.Sprintf(constants.MsgSeatTakenFmt, 4),
		},
		{
			name: "duplicate seats",
			passengers: []dtos.BookingPassenger{
				{FirstName: "A", LastName: "B", Email: "x@example.com", Seat: seatPtr(1)},
				{FirstName: "C", LastName: "D", Email: "y@example.com", Seat: seatPtr(1)},
			},
			count:   2,
			wantMsg: constants.MsgPickDistinctSeats,
		},
		{
			name: "arity mismatch",
			passengers: []dtos.BookingPassenger{
				{FirstName: "A", LastName: "B", Email: "x@example.com", Seat: seatPtr(1)},
			},
			count:   2,
			wantMsg: fmt.Sprintf(constants.MsgFieldForAllFmt, "passenger details"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Book(ctx, f.flight.Slug, f.flight.StartDate, tc.count, &dtos.BookingRequest{Passengers: tc.passengers})
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !IsValidationError(err) {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("Expected message %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}

	// No tickets or mails leaked from the failed submissions.
	var count int64
	db.Model(&gormModels.Ticket{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected only the pre-issued ticket, got %d", count)
	}
}

func TestBookUnknownFlight(t *testing.T) {
	db := newTestDB(t)
	seedFlight(t, db, 5, time.Now().AddDate(0, 0, 7))

	svc := newBookingService(db, &mockEnqueuer{})
	req := &dtos.BookingRequest{Passengers: []dtos.BookingPassenger{
		{FirstName: "A", LastName: "B", Email: "x@example.com", Seat: seatPtr(1)},
	}}

	if _, err := svc.Book(context.Background(), "no-such-flight", time.Now(), 1, req); err != ErrFlightNotFound {
		t.Errorf("Expected ErrFlightNotFound, got %v", err)
	}
}

func TestBookSeatRaceFallsBackToUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 5, time.Now().AddDate(0, 0, 7))

	// The unique index is what rejects the insert when two validated
	// submissions collide; simulate by inserting behind validation.
	ticketRepo := repositories.NewTicketRepository(db)
	flightRepo := repositories.NewFlightRepository(db)
	ctx := context.Background()

	f.issueTicket(t, 2, "first@example.com")

	seat, err := flightRepo.SeatByNumber(ctx, f.flight.ID, 2)
	if err != nil || seat == nil {
		t.Fatalf("Failed to resolve seat: %v", err)
	}

	err = ticketRepo.Create(ctx, &gormModels.Ticket{
		FlightID:    f.flight.ID,
		SeatID:      seat.ID,
		PassengerID: 1,
		Slug:        "race-duplicate",
	})
	if err != repositories.ErrSeatTaken {
		t.Errorf("Expected ErrSeatTaken from unique index, got %v", err)
	}
}
