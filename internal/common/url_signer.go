package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SignedTicketToken is the decoded form of a manage-booking link token.
type SignedTicketToken struct {
	TicketID  uint
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// URLSignerService generates and validates the signed single-use links
// embedded in ticket confirmation mail.
type URLSignerService struct {
	secretKey []byte
	redis     *redis.Client
}

// NewURLSignerService creates a new URL signer service
func NewURLSignerService(secretKey []byte, redis *redis.Client) *URLSignerService {
	return &URLSignerService{
		secretKey: secretKey,
		redis:     redis,
	}
}

// GenerateTicketToken signs a single-use token for the given ticket.
func (s *URLSignerService) GenerateTicketToken(ticketID uint, email string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"ticket_id": float64(ticketID),
		"email":     email,
		"jti":       tokenID,
		"exp":       expiresAt.Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses a token and rejects reuse.
func (s *URLSignerService) ValidateToken(ctx context.Context, tokenString string) (*SignedTicketToken, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	ticketID, ok := (*claims)["ticket_id"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid ticket_id claim")
	}

	email, ok := (*claims)["email"].(string)
	if !ok {
		return nil, errors.New("missing or invalid email claim")
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	used, err := s.redis.Exists(ctx, "used_token:"+tokenID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check token reuse: %w", err)
	}
	if used > 0 {
		return nil, errors.New("token already used")
	}

	return &SignedTicketToken{
		TicketID:  uint(ticketID),
		Email:     email,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkTokenAsUsed enforces single use. The marker outlives the token's
// own expiry so a replay after validation still fails.
func (s *URLSignerService) MarkTokenAsUsed(ctx context.Context, tokenID string) error {
	if err := s.redis.Set(ctx, "used_token:"+tokenID, "1", 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to mark token as used: %w", err)
	}
	return nil
}
