// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing one registered account.
// It carries only identity and credential data; the roommate-seeker data
// lives in the associated Profile.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login email, unique across the system.
	Phone        string    // The user's phone number, also unique.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed outward.
	Role         Role      // The user's role in the system.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
