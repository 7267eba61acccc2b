package services

import (
	"context"
	"testing"

	"skyward/aerodesk/internal/db/repositories"
	"skyward/aerodesk/internal/models/dtos"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewPassengerRepository(db), nil)
	ctx := context.Background()

	req := &dtos.RegistrationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correcthorse",
	}

	account, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if account.PasswordHash == req.Password {
		t.Error("Password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		t.Error("Stored hash does not match the password")
	}

	if _, err := svc.Authenticate(ctx, "ada@example.com", "correcthorse"); err != nil {
		t.Errorf("Authenticate failed with correct password: %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ada@example.com", "wrongpassword"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "correcthorse"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repositories.NewPassengerRepository(db), nil)
	ctx := context.Background()

	req := &dtos.RegistrationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correcthorse",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, req); err != ErrEmailTaken {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}
