package usecase

import (
	"context"

	"sakny/internal/domain/entity"
)

// LocationUsecase exposes the read-only governorate/city reference hierarchy.
type LocationUsecase interface {
	// ListGovernorates returns every governorate ordered by id.
	ListGovernorates(ctx context.Context) ([]*entity.Governorate, error)

	// ListCities returns the cities of one governorate ordered by id.
	ListCities(ctx context.Context, governorateID int) ([]*entity.City, error)
}
