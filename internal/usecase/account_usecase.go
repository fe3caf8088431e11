// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new credential record.
type SignupInput struct {
	UserName       string
	Password       string
	EmailAddresses []string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	UserName string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the created record's identity and addresses.
// The password hash is a secret-at-rest artifact and is deliberately absent.
type SignupOutput struct {
	UserName       string
	EmailAddresses []string
}

// LoginOutput confirms a verified credential. No token or session artifact is
// issued; authentication is re-evaluated on every call.
type LoginOutput struct {
	UserName string
}

// AccountUsecase defines the interface for credential-management operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
