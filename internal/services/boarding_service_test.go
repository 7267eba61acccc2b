package services

import (
	"context"
	"testing"
	"time"

	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
)

func newBoardingService(f *testFixture) *BoardingService {
	return NewBoardingService(
		repositories.NewTicketRepository(f.db),
		repositories.NewBoardingRepository(f.db),
		nil,
	)
}

func TestValidateTicketNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 5, time.Now().AddDate(0, 0, 1))
	svc := newBoardingService(f)

	result, err := svc.ValidateTicket(context.Background(), f.flight.Slug, 999)
	if err != nil {
		t.Fatalf("ValidateTicket failed: %v", err)
	}
	if result.Registered {
		t.Error("Unknown ticket must not register")
	}
	if result.Message != constants.MsgTicketNotFound {
		t.Errorf("Expected %q, got %q", constants.MsgTicketNotFound, result.Message)
	}
}

func TestValidateTicketWrongFlight(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 5, time.Now().AddDate(0, 0, 1))
	other := seedFlight(t, db, 5, time.Now().AddDate(0, 0, 2))
	ticket := other.issueTicket(t, 1, "traveler@example.com")

	svc := newBoardingService(f)

	result, err := svc.ValidateTicket(context.Background(), f.flight.Slug, ticket.ID)
	if err != nil {
		t.Fatalf("ValidateTicket failed: %v", err)
	}
	if result.Registered {
		t.Error("Ticket for another flight must not register")
	}
	if result.Message != constants.MsgTicketWrongFlight {
		t.Errorf("Expected %q, got %q", constants.MsgTicketWrongFlight, result.Message)
	}
}

func TestValidateTicketRegistersOnce(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 5, time.Now().AddDate(0, 0, 1))
	ticket := f.issueTicket(t, 1, "traveler@example.com")

	svc := newBoardingService(f)
	ctx := context.Background()

	result, err := svc.ValidateTicket(ctx, f.flight.Slug, ticket.ID)
	if err != nil {
		t.Fatalf("ValidateTicket failed: %v", err)
	}
	if !result.Registered {
		t.Fatal("Expected first validation to register")
	}
	if result.Message != constants.MsgTicketRegistered {
		t.Errorf("Expected %q, got %q", constants.MsgTicketRegistered, result.Message)
	}

	// Second attempt is a duplicate.
	result, err = svc.ValidateTicket(ctx, f.flight.Slug, ticket.ID)
	if err != nil {
		t.Fatalf("ValidateTicket failed: %v", err)
	}
	if result.Registered {
		t.Error("Second validation must not register again")
	}
	if result.Message != constants.MsgTicketAlreadyBoard {
		t.Errorf("Expected %q, got %q", constants.MsgTicketAlreadyBoard, result.Message)
	}
}
