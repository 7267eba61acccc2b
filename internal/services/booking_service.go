package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/metrics"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BookingService validates a multi-passenger booking and executes it in
// a single transaction. Mail is composed inside the loop but only
// enqueued after commit, so a rollback never leaks notifications.
type BookingService struct {
	db         *gorm.DB
	flightRepo *repositories.FlightRepository
	ticketRepo *repositories.TicketRepository
	mail       *MailService
	validate   *validator.Validate
	metricsReg *metrics.MetricsRegistry
}

// NewBookingService creates a new booking service
func NewBookingService(
	db *gorm.DB,
	flightRepo *repositories.FlightRepository,
	ticketRepo *repositories.TicketRepository,
	mail *MailService,
	metricsReg *metrics.MetricsRegistry,
) *BookingService {
	return &BookingService{
		db:         db,
		flightRepo: flightRepo,
		ticketRepo: ticketRepo,
		mail:       mail,
		validate:   validator.New(),
		metricsReg: metricsReg,
	}
}

// sameDate compares calendar dates ignoring time of day and zone.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// pendingMail buffers notifications composed during the booking loop
// until the transaction commits.
type pendingMail struct {
	registration *struct {
		email    string
		password string
	}
	ticketEmail string
	ticket      TicketMailData
	billEmail   string
	bill        BillMailData
}

// Validate checks a booking submission against the flight. Every
// violation comes back as a *ValidationError with the form wording;
// nothing is persisted on failure.
func (s *BookingService) Validate(ctx context.Context, flight *gormModels.Flight, passengerNumber int, req *dtos.BookingRequest) error {
	if len(req.Passengers) != passengerNumber {
		return &ValidationError{Message: fmt.Sprintf(constants.MsgFieldForAllFmt, "passenger details")}
	}

	taken, err := s.ticketRepo.TakenSeatNumbers(ctx, flight.ID)
	if err != nil {
		return err
	}
	takenSet := make(map[int]struct{}, len(taken))
	for _, n := range taken {
		takenSet[n] = struct{}{}
	}

	chart := make(map[int]struct{}, len(flight.Seats))
	for _, seat := range flight.Seats {
		chart[seat.SeatNumber] = struct{}{}
	}

	picked := make(map[int]struct{}, passengerNumber)
	for _, p := range req.Passengers {
		if p.FirstName == "" || p.LastName == "" {
			return &ValidationError{Message: constants.MsgMissingNames}
		}
		if err := s.validate.Var(p.Email, "required,email"); err != nil {
			return &ValidationError{Message: fmt.Sprintf("Enter a valid email address: %s", p.Email)}
		}
		if p.Seat == nil {
			return &ValidationError{Message: constants.MsgPickSeat}
		}
		if _, onChart := chart[*p.Seat]; !onChart {
			return &ValidationError{Message: constants.MsgPickSeat}
		}
		if _, isTaken := takenSet[*p.Seat]; isTaken {
			return &ValidationError{Message: fmt.Sprintf(constants.MsgSeatTakenFmt, *p.Seat)}
		}
		picked[*p.Seat] = struct{}{}
	}

	if len(picked) != passengerNumber {
		return &ValidationError{Message: constants.MsgPickDistinctSeats}
	}

	return nil
}

// Book executes a validated booking: per passenger it creates the
// account if the email is new, issues the ticket, attaches options and
// accumulates the bill. The whole loop is one transaction; the unique
// index on (flight_id, seat_id) backstops concurrent submissions that
// both passed validation.
func (s *BookingService) Book(ctx context.Context, flightSlug string, flightDate time.Time, passengerNumber int, req *dtos.BookingRequest) (*dtos.BookingResult, error) {
	flight, err := s.flightRepo.GetBySlug(ctx, flightSlug)
	if err != nil {
		return nil, err
	}
	if flight == nil || !sameDate(flight.StartDate, flightDate) {
		return nil, ErrFlightNotFound
	}

	if err := s.Validate(ctx, flight, passengerNumber, req); err != nil {
		if s.metricsReg != nil && IsValidationError(err) {
			s.metricsReg.BookingsRejectedTotal.WithLabelValues("validation").Inc()
		}
		return nil, err
	}

	optionsByID := make(map[uint]gormModels.Option, len(flight.Options))
	for _, option := range flight.Options {
		optionsByID[option.ID] = option
	}

	var (
		total     float64
		ticketIDs []uint
		mails     []pendingMail
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		passengerRepo := repositories.NewPassengerRepository(tx)
		ticketRepo := repositories.NewTicketRepository(tx)
		flightRepo := repositories.NewFlightRepository(tx)

		for _, p := range req.Passengers {
			var mail pendingMail

			account, err := passengerRepo.GetByEmail(ctx, p.Email)
			if err != nil {
				return err
			}
			if account == nil {
				password, err := common.RandomPassword(12)
				if err != nil {
					return err
				}
				hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}

				account = &gormModels.Passenger{
					FirstName:    p.FirstName,
					LastName:     p.LastName,
					Email:        p.Email,
					PasswordHash: string(hash),
				}
				if err := passengerRepo.Create(ctx, account); err != nil {
					return err
				}

				mail.registration = &struct {
					email    string
					password string
				}{email: p.Email, password: password}
			}

			seat, err := flightRepo.SeatByNumber(ctx, flight.ID, *p.Seat)
			if err != nil {
				return err
			}
			if seat == nil {
				return &ValidationError{Message: constants.MsgPickSeat}
			}

			ticket := &gormModels.Ticket{
				FlightID:    flight.ID,
				SeatID:      seat.ID,
				PassengerID: account.ID,
				Slug:        common.TicketSlug(flight.Slug, seat.SeatNumber, p.Email),
			}
			if err := ticketRepo.Create(ctx, ticket); err != nil {
				if errors.Is(err, repositories.ErrSeatTaken) {
					return &ValidationError{Message: fmt.Sprintf(constants.MsgSeatTakenFmt, seat.SeatNumber)}
				}
				return err
			}

			var optionsPrice float64
			var selected []gormModels.Option
			for _, optionID := range p.Options {
				option, ok := optionsByID[optionID]
				if !ok {
					return &ValidationError{Message: fmt.Sprintf("Option %d is not offered on this flight", optionID)}
				}
				selected = append(selected, option)
				optionsPrice += option.Price.Amount
			}
			if err := ticketRepo.AttachOptions(ctx, ticket, selected); err != nil {
				return err
			}

			flightPrice := flight.Price.Amount
			total += flightPrice + optionsPrice
			ticketIDs = append(ticketIDs, ticket.ID)

			mail.ticketEmail = p.Email
			mail.ticket = TicketMailData{
				FlightNumber:  flight.ID,
				StartLocation: flight.StartLocation,
				EndLocation:   flight.EndLocation,
				StartDate:     flight.StartDate.Format("2006-01-02"),
				StartTime:     flight.StartTime,
				FirstName:     p.FirstName,
				LastName:      p.LastName,
				SeatNumber:    seat.SeatNumber,
				TicketNumber:  ticket.ID,
			}
			mail.billEmail = p.Email
			mail.bill = BillMailData{
				FlightPrice:  flightPrice,
				OptionsPrice: optionsPrice,
				Total:        flightPrice + optionsPrice,
			}
			mails = append(mails, mail)
		}

		return nil
	})
	if err != nil {
		if s.metricsReg != nil && IsValidationError(err) {
			s.metricsReg.BookingsRejectedTotal.WithLabelValues("seat_conflict").Inc()
		}
		return nil, err
	}

	// Commit succeeded; notifications go out now, best-effort.
	for _, mail := range mails {
		if mail.registration != nil {
			s.mail.SendRegistrationMail(ctx, mail.registration.email, mail.registration.password)
		}
		s.mail.SendTicketMail(ctx, mail.ticketEmail, mail.ticket)
		s.mail.SendBillMail(ctx, mail.billEmail, mail.bill)
	}

	if s.metricsReg != nil {
		s.metricsReg.TicketsBookedTotal.Add(float64(len(ticketIDs)))
	}

	totalCents := int64(math.Round(total * 100))
	logging.Info("Booking completed",
		"flight", flight.Slug,
		"tickets", len(ticketIDs),
		"total_cents", totalCents,
	)

	return &dtos.BookingResult{
		TicketIDs:   ticketIDs,
		ProductName: flight.Slug,
		TotalCents:  totalCents,
		Quantity:    passengerNumber,
		PaymentPath: fmt.Sprintf("/api/v1/payment/%s/%d/%d", flight.Slug, totalCents, passengerNumber),
	}, nil
}
