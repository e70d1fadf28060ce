package postgres

import (
	"context"

	"sakny/internal/domain/entity"
	"sakny/internal/domain/repository"
	"sakny/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
// The governorate/city tables are seeded reference data; reads only.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// ListGovernorates returns every governorate ordered by id.
func (repo *locationRepository) ListGovernorates(ctx context.Context) ([]*entity.Governorate, error) {
	var governorateModels []model.GovernorateModel
	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&governorateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list governorates")
	}

	governorates := make([]*entity.Governorate, 0, len(governorateModels))
	for i := range governorateModels {
		governorates = append(governorates, toGovernorateDomain(&governorateModels[i]))
	}

	return governorates, nil
}

// ListCities returns the cities of one governorate ordered by id.
func (repo *locationRepository) ListCities(ctx context.Context, governorateID int) ([]*entity.City, error) {
	var cityModels []model.CityModel
	if err := repo.db.WithContext(ctx).
		Where("governorate_id = ?", governorateID).
		Order("id").
		Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for i := range cityModels {
		cities = append(cities, toCityDomain(&cityModels[i]))
	}

	return cities, nil
}

// GovernorateExists reports whether the governorate id resolves to a row.
func (repo *locationRepository) GovernorateExists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.GovernorateModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check governorate existence")
	}

	return count > 0, nil
}

// FindCityByID retrieves a city with its parent governorate resolved.
func (repo *locationRepository) FindCityByID(ctx context.Context, id int) (*entity.City, error) {
	var cityM model.CityModel
	if err := repo.db.WithContext(ctx).
		Preload("Governorate").
		First(&cityM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by id")
	}

	return toCityDomain(&cityM), nil
}

// --- Mapper Functions ---

// toGovernorateDomain converts a GORM GovernorateModel to a domain Governorate entity.
func toGovernorateDomain(data *model.GovernorateModel) *entity.Governorate {
	if data == nil {
		return nil
	}

	return &entity.Governorate{
		ID:     data.ID,
		NameEn: data.NameEn,
		NameAr: data.NameAr,
	}
}

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:            data.ID,
		GovernorateID: data.GovernorateID,
		NameEn:        data.NameEn,
		NameAr:        data.NameAr,
		Governorate:   toGovernorateDomain(data.Governorate),
	}
}
