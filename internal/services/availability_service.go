package services

import (
	"context"
	"fmt"
	"time"

	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"
)

// AvailabilityService computes seat availability, filters search
// results and builds seat maps. The core rule everywhere:
//
//	available = seats on flight − tickets issued on flight
type AvailabilityService struct {
	flightRepo *repositories.FlightRepository
	ticketRepo *repositories.TicketRepository
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(flightRepo *repositories.FlightRepository, ticketRepo *repositories.TicketRepository) *AvailabilityService {
	return &AvailabilityService{
		flightRepo: flightRepo,
		ticketRepo: ticketRepo,
	}
}

// AvailableSeats returns the open-seat count for a flight. Never
// negative: the ticket unique index caps tickets at the seat count.
func (s *AvailabilityService) AvailableSeats(ctx context.Context, flightID uint) (int, error) {
	seats, err := s.flightRepo.CountSeats(ctx, flightID)
	if err != nil {
		return 0, err
	}

	tickets, err := s.ticketRepo.CountForFlight(ctx, flightID)
	if err != nil {
		return 0, err
	}

	return int(seats - tickets), nil
}

// FlightInfo assembles the search/booking view of one flight.
func (s *AvailabilityService) FlightInfo(ctx context.Context, flight *gormModels.Flight) (*dtos.FlightInfo, error) {
	available, err := s.AvailableSeats(ctx, flight.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	options := make([]dtos.OptionInfo, 0, len(flight.Options))
	for _, option := range flight.Options {
		options = append(options, dtos.OptionInfo{
			ID:          option.ID,
			Name:        option.Name,
			Description: option.Description,
			Price:       option.Price.Amount,
		})
	}

	return &dtos.FlightInfo{
		StartLocation:  flight.StartLocation,
		EndLocation:    flight.EndLocation,
		StartDate:      flight.StartDate.Format("2006-01-02"),
		EndDate:        flight.EndDate.Format("2006-01-02"),
		StartTime:      flight.StartTime,
		EndTime:        flight.EndTime,
		Slug:           flight.Slug,
		AvailableSeats: available,
		Options:        options,
		Price:          flight.Price.Amount,
		IsCancelled:    flight.IsCancelled,
	}, nil
}

// SearchFlights returns flights on the exact route/date that are not
// cancelled and can still seat the requested party. Zero matches is an
// empty slice, not an error.
func (s *AvailabilityService) SearchFlights(ctx context.Context, startLocation, endLocation string, startDate time.Time, passengers int) ([]dtos.FlightInfo, error) {
	flights, err := s.flightRepo.Search(ctx, startLocation, endLocation, startDate)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.FlightInfo, 0, len(flights))
	for i := range flights {
		info, err := s.FlightInfo(ctx, &flights[i])
		if err != nil {
			return nil, err
		}
		if info.IsCancelled || info.AvailableSeats-passengers < 0 {
			continue
		}
		results = append(results, *info)
	}

	return results, nil
}

// SeatMap partitions the flight's seating chart by seat type and marks
// each seat's availability against issued tickets. Seats and seat
// types must be preloaded on the flight.
func (s *AvailabilityService) SeatMap(ctx context.Context, flight *gormModels.Flight) (dtos.SeatMap, error) {
	taken, err := s.ticketRepo.TakenSeatNumbers(ctx, flight.ID)
	if err != nil {
		return nil, err
	}

	takenSet := make(map[int]struct{}, len(taken))
	for _, n := range taken {
		takenSet[n] = struct{}{}
	}

	seatMap := make(dtos.SeatMap)
	for _, seat := range flight.Seats {
		_, isTaken := takenSet[seat.SeatNumber]
		seatMap[seat.SeatType.Name] = append(seatMap[seat.SeatType.Name], dtos.SeatInfo{
			Number:      seat.SeatNumber,
			IsAvailable: !isTaken,
		})
	}

	return seatMap, nil
}

// IsFutureFlight reports whether the flight departs after now,
// comparing the time of day when it departs today.
func IsFutureFlight(flight *gormModels.Flight, now time.Time) bool {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	flightDate := time.Date(flight.StartDate.Year(), flight.StartDate.Month(), flight.StartDate.Day(), 0, 0, 0, 0, time.UTC)

	if flightDate.After(nowDate) {
		return true
	}
	if flightDate.Equal(nowDate) {
		return flight.StartTime > now.Format("15:04")
	}
	return false
}
