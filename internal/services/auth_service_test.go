package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "amanda", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "hunter2" {
		t.Fatal("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "amanda", "hunter2"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Register(ctx, "amanda", "other")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterRejectsBlankInput(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "   ", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for blank username, got %v", err)
	}
	if _, err := svc.Register(ctx, "amanda", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "amanda", "hunter2"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.Login(ctx, "amanda", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Username != "amanda" {
		t.Errorf("unexpected username %q", user.Username)
	}

	if _, err := svc.Login(ctx, "amanda", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
