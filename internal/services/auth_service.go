package services

import (
	"context"

	"skyward/aerodesk/internal/common"
	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/logging"
	"skyward/aerodesk/internal/models/dtos"
	gormModels "skyward/aerodesk/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles self-registration, credential checks and the
// session lifecycle around them.
type AuthService struct {
	passengerRepo *repositories.PassengerRepository
	sessions      *common.SessionService
}

// NewAuthService creates a new auth service
func NewAuthService(passengerRepo *repositories.PassengerRepository, sessions *common.SessionService) *AuthService {
	return &AuthService{
		passengerRepo: passengerRepo,
		sessions:      sessions,
	}
}

// Register creates a passenger account with a caller-chosen password.
func (s *AuthService) Register(ctx context.Context, req *dtos.RegistrationRequest) (*gormModels.Passenger, error) {
	existing, err := s.passengerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &gormModels.Passenger{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.passengerRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	logging.Info("Passenger registered", "email", req.Email)
	return account, nil
}

// Authenticate verifies an email/password pair and returns the account
// with groups preloaded. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*gormModels.Passenger, error) {
	account, err := s.passengerRepo.GetByEmailWithGroups(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Login authenticates and opens a session. requireStaff gates the
// staff console login without leaking whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string, requireStaff bool) (*common.SessionData, error) {
	account, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if requireStaff && !account.IsStaff && !account.IsSuperuser {
		return nil, ErrInvalidCredentials
	}

	groups := make([]string, 0, len(account.Groups))
	for _, g := range account.Groups {
		groups = append(groups, g.Name.String())
	}

	data := common.SessionData{
		PassengerID: account.ID,
		Email:       account.Email,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
		Groups:      groups,
	}

	sessionID, err := s.sessions.CreateSession(ctx, data)
	if err != nil {
		return nil, err
	}
	data.SessionID = sessionID

	logging.Info("Login", "email", account.Email, "staff", account.IsStaff)
	return &data, nil
}

// Logout drops the session. Unknown session IDs are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}
