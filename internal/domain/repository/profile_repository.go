// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sakny/internal/domain/entity"
	"sakny/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the persistence boundary for profile records and
// their owned preferred-area list.
type ProfileRepository interface {
	// ExistsByUserID reports whether a profile row exists for the user.
	ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error)

	// FindByUserID retrieves the profile with every join resolved: owning
	// user, current governorate/city and each preferred area's location
	// records.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile together with its preferred areas in a
	// single insert. The generated id and timestamps are written back.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update persists the profile's scalar columns and refreshes the
	// updated-at timestamp. Preferred areas are replaced separately via
	// ReplacePreferredAreas.
	Update(ctx context.Context, profile *entity.Profile) error

	// ReplacePreferredAreas clears the stored area set of the profile and
	// inserts the given one. Individual areas are never patched in place.
	ReplacePreferredAreas(ctx context.Context, profileID uuid.UUID, areas []entity.PreferredArea) error
}
