package services

import (
	"context"

	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"
	"skyward/aerodesk/internal/models/dtos"
)

// BoardingService validates ticket numbers at the gate and records the
// one-time boarding registration.
type BoardingService struct {
	ticketRepo   *repositories.TicketRepository
	boardingRepo *repositories.BoardingRepository
	metricsReg   *metrics.MetricsRegistry
}

// NewBoardingService creates a new boarding service
func NewBoardingService(
	ticketRepo *repositories.TicketRepository,
	boardingRepo *repositories.BoardingRepository,
	metricsReg *metrics.MetricsRegistry,
) *BoardingService {
	return &BoardingService{
		ticketRepo:   ticketRepo,
		boardingRepo: boardingRepo,
		metricsReg:   metricsReg,
	}
}

func (s *BoardingService) outcome(name string) {
	if s.metricsReg != nil {
		s.metricsReg.BoardingsTotal.WithLabelValues(name).Inc()
	}
}

// ValidateTicket checks a ticket number against the flight at the gate.
// Every outcome is a BoardResult; an error return means the lookup
// itself failed, not that the ticket was bad.
func (s *BoardingService) ValidateTicket(ctx context.Context, flightSlug string, ticketNumber uint) (*dtos.BoardResult, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		s.outcome("not_found")
		return &dtos.BoardResult{Registered: false, Message: constants.MsgTicketNotFound}, nil
	}

	if ticket.Flight.Slug != flightSlug {
		s.outcome("wrong_flight")
		return &dtos.BoardResult{Registered: false, Message: constants.MsgTicketWrongFlight}, nil
	}

	boarded, err := s.boardingRepo.ExistsForTicket(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}
	if boarded {
		s.outcome("duplicate")
		return &dtos.BoardResult{Registered: false, Message: constants.MsgTicketAlreadyBoard}, nil
	}

	if err := s.boardingRepo.Create(ctx, ticket.ID); err != nil {
		// A concurrent gate won the unique index on ticket_id.
		s.outcome("duplicate")
		logging.Warn("Boarding insert lost a race", "ticket", ticket.ID, "error", err.Error())
		return &dtos.BoardResult{Registered: false, Message: constants.MsgTicketAlreadyBoard}, nil
	}

	s.outcome("registered")
	logging.Info("Ticket boarded", "ticket", ticket.ID, "flight", flightSlug)
	return &dtos.BoardResult{Registered: true, Message: constants.MsgTicketRegistered}, nil
}
