// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sakny/internal/domain/entity"
	"sakny/internal/errors"
)

// ErrCityNotFound is returned when a city id does not resolve to a row.
var ErrCityNotFound = errors.New("city not found")

// LocationRepository is the read-only lookup over the static
// governorate/city reference hierarchy. The workflow uses it for validation
// and for enriching responses; nothing ever mutates these tables.
type LocationRepository interface {
	// ListGovernorates returns every governorate ordered by id.
	ListGovernorates(ctx context.Context) ([]*entity.Governorate, error)

	// ListCities returns the cities of one governorate ordered by id.
	ListCities(ctx context.Context, governorateID int) ([]*entity.City, error)

	// GovernorateExists reports whether the governorate id resolves to a row.
	GovernorateExists(ctx context.Context, id int) (bool, error)

	// FindCityByID retrieves a city with its parent governorate resolved.
	FindCityByID(ctx context.Context, id int) (*entity.City, error)
}
