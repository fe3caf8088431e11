// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"signon/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// The store owns the uniqueness guarantee on UserName: Create must fail with
// the duplicate-user fault when the key is already taken, even if a preceding
// lookup saw no record. The workflows never coordinate uniqueness client-side.
type UserRepository interface {
	// FindByUserName retrieves a single user by their unique username.
	// Returns ErrUserNotFound when no record exists for the key.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
