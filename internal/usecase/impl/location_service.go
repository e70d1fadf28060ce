package impl

import (
	"context"

	"sakny/internal/domain/entity"
	"sakny/internal/domain/repository"
	"sakny/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface over the static
// reference tables.
type locationService struct {
	locationRepo repository.LocationRepository
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
	}
}

// ListGovernorates returns every governorate ordered by id.
func (srv *locationService) ListGovernorates(ctx context.Context) ([]*entity.Governorate, error) {
	governorates, err := srv.locationRepo.ListGovernorates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list governorates")
	}

	return governorates, nil
}

// ListCities returns the cities of one governorate ordered by id.
func (srv *locationService) ListCities(ctx context.Context, governorateID int) ([]*entity.City, error) {
	cities, err := srv.locationRepo.ListCities(ctx, governorateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}
