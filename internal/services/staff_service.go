package services

import (
	"context"
	"time"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/constants"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// StaffService backs the staff console: landing-page resolution,
// flight rosters, cancellation and staff onboarding.
type StaffService struct {
	flightRepo    *repositories.FlightRepository
	passengerRepo *repositories.PassengerRepository
	availability  *AvailabilityService
}

// NewStaffService creates a new staff service
func NewStaffService(
	flightRepo *repositories.FlightRepository,
	passengerRepo *repositories.PassengerRepository,
	availability *AvailabilityService,
) *StaffService {
	return &StaffService{
		flightRepo:    flightRepo,
		passengerRepo: passengerRepo,
		availability:  availability,
	}
}

// ResolveRedirect picks the landing page for a logged-in staff member.
// The redirect table is priority ordered and the first group the user
// belongs to wins; superusers without a group land on the supervisor
// console. Returns nil when the user has no staff landing at all.
func (s *StaffService) ResolveRedirect(session *common.SessionData) *dtos.StaffRedirectResponse {
	member := make(map[string]struct{}, len(session.Groups))
	for _, g := range session.Groups {
		member[g] = struct{}{}
	}

	for _, landing := range constants.GroupsRedirect {
		if _, ok := member[landing.Group.String()]; ok {
			return &dtos.StaffRedirectResponse{
				Group:    landing.Group.String(),
				Redirect: landing.Landing,
			}
		}
	}

	if session.IsSuperuser {
		return &dtos.StaffRedirectResponse{
			Group:    constants.GroupSupervisors.String(),
			Redirect: "/staff/supervisor",
		}
	}

	return nil
}

// FutureFlights lists flights that have not departed yet, for the
// check-in manager console.
func (s *StaffService) FutureFlights(ctx context.Context, now time.Time) ([]dtos.FlightInfo, error) {
	flights, err := s.flightRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.FlightInfo, 0, len(flights))
	for i := range flights {
		if !IsFutureFlight(&flights[i], now) {
			continue
		}
		info, err := s.availability.FlightInfo(ctx, &flights[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *info)
	}

	return results, nil
}

// CancelFlight flips the cancellation flag on. Tickets already issued
// stay in place; the flight just stops appearing in search results.
func (s *StaffService) CancelFlight(ctx context.Context, slug string) error {
	if err := s.flightRepo.SetCancelled(ctx, slug, true); err != nil {
		return err
	}
	logging.Info("Flight cancelled", "flight", slug)
	return nil
}

// UncancelFlight flips the cancellation flag back off.
func (s *StaffService) UncancelFlight(ctx context.Context, slug string) error {
	if err := s.flightRepo.SetCancelled(ctx, slug, false); err != nil {
		return err
	}
	logging.Info("Flight restored", "flight", slug)
	return nil
}

// RegisterStaff creates a staff account, or promotes an existing
// passenger, and attaches it to the requested group. Supervisors only.
func (s *StaffService) RegisterStaff(ctx context.Context, req *dtos.StaffRegistrationRequest) (*gormModels.Passenger, error) {
	group, err := s.passengerRepo.GetGroupByName(ctx, constants.StaffGroup(req.Group))
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrUnknownGroup
	}

	account, err := s.passengerRepo.GetByEmailWithGroups(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if account == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		account = &gormModels.Passenger{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: string(hash),
			IsStaff:      true,
		}
		if err := s.passengerRepo.Create(ctx, account); err != nil {
			return nil, err
		}
	} else if err := s.passengerRepo.MarkStaff(ctx, account.ID); err != nil {
		return nil, err
	}

	if !account.InGroup(group.Name) {
		if err := s.passengerRepo.AddToGroup(ctx, account, group); err != nil {
			return nil, err
		}
	}

	logging.Info("Staff account registered", "email", req.Email, "group", req.Group)
	return account, nil
}
