package services

import (
	"context"
	"testing"
	"time"

	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
)

func newAvailabilityService(f *testFixture) *AvailabilityService {
	return NewAvailabilityService(
		repositories.NewFlightRepository(f.db),
		repositories.NewTicketRepository(f.db),
	)
}

func TestAvailableSeats(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 25, time.Now().AddDate(0, 0, 7))
	svc := newAvailabilityService(f)
	ctx := context.Background()

	available, err := svc.AvailableSeats(ctx, f.flight.ID)
	if err != nil {
		t.Fatalf("AvailableSeats failed: %v", err)
	}
	if available != 25 {
		t.Errorf("Expected 25 available seats, got %d", available)
	}

	f.issueTicket(t, 1, "a@example.com")
	f.issueTicket(t, 2, "b@example.com")

	available, err = svc.AvailableSeats(ctx, f.flight.ID)
	if err != nil {
		t.Fatalf("AvailableSeats failed: %v", err)
	}
	if available != 23 {
		t.Errorf("Expected 23 available seats, got %d", available)
	}
}

func TestSearchFlightsFiltersCancelled(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 10, time.Now().AddDate(0, 0, 7))
	svc := newAvailabilityService(f)
	ctx := context.Background()

	results, err := svc.SearchFlights(ctx, "New York", "Paris", f.flight.StartDate, 2)
	if err != nil {
		t.Fatalf("SearchFlights failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	if err := repositories.NewFlightRepository(db).SetCancelled(ctx, f.flight.Slug, true); err != nil {
		t.Fatalf("SetCancelled failed: %v", err)
	}

	results, err = svc.SearchFlights(ctx, "New York", "Paris", f.flight.StartDate, 2)
	if err != nil {
		t.Fatalf("SearchFlights failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected cancelled flight to be filtered, got %d results", len(results))
	}
}

func TestSearchFlightsFiltersInsufficientSeats(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 3, time.Now().AddDate(0, 0, 7))
	svc := newAvailabilityService(f)
	ctx := context.Background()

	f.issueTicket(t, 1, "a@example.com")
	f.issueTicket(t, 2, "b@example.com")

	// One seat left; a party of one still fits.
	results, err := svc.SearchFlights(ctx, "New York", "Paris", f.flight.StartDate, 1)
	if err != nil {
		t.Fatalf("SearchFlights failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Expected 1 result for single passenger, got %d", len(results))
	}

	// A party of two does not.
	results, err = svc.SearchFlights(ctx, "New York", "Paris", f.flight.StartDate, 2)
	if err != nil {
		t.Fatalf("SearchFlights failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results for two passengers, got %d", len(results))
	}
}

func TestSeatMapPartitionsAndMarksAvailability(t *testing.T) {
	db := newTestDB(t)
	f := seedFlight(t, db, 22, time.Now().AddDate(0, 0, 7))
	svc := newAvailabilityService(f)
	ctx := context.Background()

	f.issueTicket(t, 5, "a@example.com")
	f.issueTicket(t, 21, "b@example.com")

	seatMap, err := svc.SeatMap(ctx, f.flight)
	if err != nil {
		t.Fatalf("SeatMap failed: %v", err)
	}

	if len(seatMap[constants.SeatTypeEconomy]) != 20 {
		t.Errorf("Expected 20 economy seats, got %d", len(seatMap[constants.SeatTypeEconomy]))
	}
	if len(seatMap[constants.SeatTypeBusiness]) != 2 {
		t.Errorf("Expected 2 business seats, got %d", len(seatMap[constants.SeatTypeBusiness]))
	}

	for _, seat := range seatMap[constants.SeatTypeEconomy] {
		wantAvailable := seat.Number != 5
		if seat.IsAvailable != wantAvailable {
			t.Errorf("Seat %d availability = %v, want %v", seat.Number, seat.IsAvailable, wantAvailable)
		}
	}
	for _, seat := range seatMap[constants.SeatTypeBusiness] {
		wantAvailable := seat.Number != 21
		if seat.IsAvailable != wantAvailable {
			t.Errorf("Seat %d availability = %v, want %v", seat.Number, seat.IsAvailable, wantAvailable)
		}
	}
}

func TestIsFutureFlight(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tomorrow := seedFlight(t, db, 1, now.AddDate(0, 0, 1))
	if !IsFutureFlight(tomorrow.flight, now) {
		t.Error("Flight tomorrow should be future")
	}

	yesterday := seedFlight(t, db, 1, now.AddDate(0, 0, -1))
	if IsFutureFlight(yesterday.flight, now) {
		t.Error("Flight yesterday should not be future")
	}

	laterToday := seedFlight(t, db, 1, time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC))
	if !IsFutureFlight(laterToday.flight, now) {
		t.Error("Flight later today should be future")
	}

	earlierToday := seedFlight(t, db, 1, time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))
	if IsFutureFlight(earlierToday.flight, now) {
		t.Error("Flight earlier today should not be future")
	}
}
