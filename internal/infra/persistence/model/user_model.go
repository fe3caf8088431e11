package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The UNIQUE constraint on user_name is the authoritative uniqueness guard:
// a concurrent duplicate signup that survives the application-level pre-check
// still fails here, atomically, at write time.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserName       string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	EmailAddresses []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
