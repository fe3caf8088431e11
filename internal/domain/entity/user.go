// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential record. UserName is the case-sensitive natural key a
// person signs up and logs in with; no two records may share it.
type User struct {
	ID             uuid.UUID // Surrogate identifier assigned by the store.
	UserName       string    // Unique, human-chosen login identifier.
	PasswordHash   string    // Salted one-way digest of the secret. Never the plaintext, never part of a response.
	EmailAddresses []string  // Ordered list of contact addresses; a user may register several.
	CreatedAt      time.Time // Timestamp of when this record was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this record.
}
