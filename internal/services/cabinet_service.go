package services

import (
	"context"
	"errors"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"
)

// ErrInvalidTicketLink covers every way a signed manage-booking link
// can be bad: malformed, expired, already used or pointing nowhere.
var ErrInvalidTicketLink = errors.New("invalid or expired ticket link")

// CabinetService builds the passenger self-service view and resolves
// the signed ticket links from confirmation mail.
type CabinetService struct {
	ticketRepo *repositories.TicketRepository
	signer     *common.URLSignerService
}

// NewCabinetService creates a new cabinet service
func NewCabinetService(ticketRepo *repositories.TicketRepository, signer *common.URLSignerService) *CabinetService {
	return &CabinetService{
		ticketRepo: ticketRepo,
		signer:     signer,
	}
}

func ticketInfo(ticket *gormModels.Ticket) dtos.TicketInfo {
	options := make([]dtos.OptionInfo, 0, len(ticket.Options))
	for _, option := range ticket.Options {
		options = append(options, dtos.OptionInfo{
			ID:          option.ID,
			Name:        option.Name,
			Description: option.Description,
			Price:       option.Price.Amount,
		})
	}

	return dtos.TicketInfo{
		From:      ticket.Flight.StartLocation,
		To:        ticket.Flight.EndLocation,
		StartDate: ticket.Flight.StartDate.Format("2006-01-02"),
		EndDate:   ticket.Flight.EndDate.Format("2006-01-02"),
		StartTime: ticket.Flight.StartTime,
		EndTime:   ticket.Flight.EndTime,
		Seat:      ticket.Seat.SeatNumber,
		SeatType:  ticket.Seat.SeatType.Name,
		Options:   options,
	}
}

// Cabinet assembles the logged-in passenger's profile and tickets.
// With futureOnly set, tickets on flights that already departed are
// filtered out.
func (s *CabinetService) Cabinet(ctx context.Context, session *common.SessionData, futureOnly bool) (*dtos.CabinetResponse, error) {
	tickets, err := s.ticketRepo.GetByPassenger(ctx, session.PassengerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	infos := make([]dtos.TicketInfo, 0, len(tickets))
	for i := range tickets {
		if futureOnly && !IsFutureFlight(&tickets[i].Flight, now) {
			continue
		}
		infos = append(infos, ticketInfo(&tickets[i]))
	}

	return &dtos.CabinetResponse{
		FirstName: session.FirstName,
		LastName:  session.LastName,
		Email:     session.Email,
		Tickets:   infos,
	}, nil
}

// ResolveTicketLink validates a signed manage-booking token, burns it
// and returns the ticket it points at. The email in the token must
// still match the ticket holder.
func (s *CabinetService) ResolveTicketLink(ctx context.Context, token string) (*dtos.TicketInfo, error) {
	signed, err := s.signer.ValidateToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidTicketLink
	}

	ticket, err := s.ticketRepo.GetByID(ctx, signed.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil || ticket.Passenger.Email != signed.Email {
		return nil, ErrInvalidTicketLink
	}

	if err := s.signer.MarkTokenAsUsed(ctx, signed.TokenID); err != nil {
		return nil, err
	}

	info := ticketInfo(ticket)
	return &info, nil
}
