package postgres

import (
	"context"

	"sakny/internal/domain/entity"
	domainerrors "sakny/internal/domain/errors"
	"sakny/internal/domain/repository"
	"sakny/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// ExistsByUserID reports whether a profile row exists for the user.
func (repo *profileRepository) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check profile existence")
	}

	return count > 0, nil
}

// FindByUserID retrieves the profile with its owning user, location records
// and preferred areas resolved.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("CurrentGovernorate").
		Preload("CurrentCity").
		Preload("PreferredAreas").
		Preload("PreferredAreas.Governorate").
		Preload("PreferredAreas.City").
		First(&profileM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM)
}

// Create persists a new profile together with its preferred areas.
// GORM's Create with associations inserts into profiles and preferred_areas
// in one statement batch.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileAlreadyExists.WrapMessage("unique constraint on profiles.user_id")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidCity.WrapMessage("location reference does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Write back generated ids and timestamps.
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	for i := range profileM.PreferredAreas {
		profile.PreferredAreas[i].ID = profileM.PreferredAreas[i].ID
	}

	return nil
}

// Update persists the profile's scalar columns. Preferred areas are handled
// separately by ReplacePreferredAreas so a partial update never touches them.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}
	// Detach owned rows so Save only writes the profiles table.
	profileM.PreferredAreas = nil

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(profileM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidCity.WrapMessage("location reference does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ReplacePreferredAreas clears the stored area set of the profile and inserts
// the given one. Areas are never patched in place.
func (repo *profileRepository) ReplacePreferredAreas(ctx context.Context, profileID uuid.UUID, areas []entity.PreferredArea) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Delete(&model.PreferredAreaModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear preferred areas")
	}

	if len(areas) == 0 {
		return nil
	}

	areaModels := make([]model.PreferredAreaModel, 0, len(areas))
	for _, area := range areas {
		areaModels = append(areaModels, model.PreferredAreaModel{
			ProfileID:     profileID,
			GovernorateID: area.GovernorateID,
			CityID:        area.CityID,
			Street:        area.Street,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&areaModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidCity.WrapMessage("preferred area references missing location")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert preferred areas")
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) (*entity.Profile, error) {
	if data == nil {
		return nil, nil
	}

	traits, err := model.UnmarshalTraits(data.PersonalityTraits)
	if err != nil {
		return nil, err
	}

	areas := make([]entity.PreferredArea, 0, len(data.PreferredAreas))
	for _, areaM := range data.PreferredAreas {
		areas = append(areas, entity.PreferredArea{
			ID:            areaM.ID,
			GovernorateID: areaM.GovernorateID,
			CityID:        areaM.CityID,
			Street:        areaM.Street,
			Governorate:   toGovernorateDomain(areaM.Governorate),
			City:          toCityDomain(areaM.City),
		})
	}

	return &entity.Profile{
		ID:                   data.ID,
		UserID:               data.UserID,
		User:                 toUserDomain(data.User),
		Age:                  data.Age,
		Gender:               entity.Gender(data.Gender),
		Occupation:           data.Occupation,
		UniversityOrSchool:   data.UniversityOrSchool,
		CompanyName:          data.CompanyName,
		CurrentGovernorateID: data.CurrentGovernorateID,
		CurrentCityID:        data.CurrentCityID,
		CurrentGovernorate:   toGovernorateDomain(data.CurrentGovernorate),
		CurrentCity:          toCityDomain(data.CurrentCity),
		ProfilePhotoURL:      data.ProfilePhotoURL,
		Bio:                  data.Bio,
		Instagram:            data.Instagram,
		Linkedin:             data.Linkedin,
		PersonalityTraits:    traits,
		Smoking:              entity.SmokingStatus(data.Smoking),
		Pets:                 entity.PetStatus(data.Pets),
		SleepSchedule:        entity.SleepSchedule(data.SleepSchedule),
		Cleanliness:          data.Cleanliness,
		BudgetMin:            data.BudgetMin,
		BudgetMax:            data.BudgetMax,
		RoommateGender:       entity.Gender(data.RoommateGender),
		RoommateType:         entity.RoommateType(data.RoommateType),
		PrefSmoking:          entity.SmokingPreference(data.PrefSmoking),
		PrefPets:             entity.PetPreference(data.PrefPets),
		PrefSleepSchedule:    entity.SleepSchedulePreference(data.PrefSleepSchedule),
		PrefCleanliness:      entity.CleanlinessPreference(data.PrefCleanliness),
		AdditionalNotes:      data.AdditionalNotes,
		PreferredAreas:       areas,
		IsComplete:           data.IsComplete,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) (*model.ProfileModel, error) {
	if data == nil {
		return nil, nil
	}

	traits, err := model.MarshalTraits(data.PersonalityTraits)
	if err != nil {
		return nil, err
	}

	areas := make([]model.PreferredAreaModel, 0, len(data.PreferredAreas))
	for _, area := range data.PreferredAreas {
		areas = append(areas, model.PreferredAreaModel{
			ID:            area.ID,
			GovernorateID: area.GovernorateID,
			CityID:        area.CityID,
			Street:        area.Street,
		})
	}

	return &model.ProfileModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		Age:                  data.Age,
		Gender:               string(data.Gender),
		Occupation:           data.Occupation,
		UniversityOrSchool:   data.UniversityOrSchool,
		CompanyName:          data.CompanyName,
		CurrentGovernorateID: data.CurrentGovernorateID,
		CurrentCityID:        data.CurrentCityID,
		ProfilePhotoURL:      data.ProfilePhotoURL,
		Bio:                  data.Bio,
		Instagram:            data.Instagram,
		Linkedin:             data.Linkedin,
		PersonalityTraits:    traits,
		Smoking:              string(data.Smoking),
		Pets:                 string(data.Pets),
		SleepSchedule:        string(data.SleepSchedule),
		Cleanliness:          data.Cleanliness,
		BudgetMin:            data.BudgetMin,
		BudgetMax:            data.BudgetMax,
		RoommateGender:       string(data.RoommateGender),
		RoommateType:         string(data.RoommateType),
		PrefSmoking:          string(data.PrefSmoking),
		PrefPets:             string(data.PrefPets),
		PrefSleepSchedule:    string(data.PrefSleepSchedule),
		PrefCleanliness:      string(data.PrefCleanliness),
		AdditionalNotes:      data.AdditionalNotes,
		PreferredAreas:       areas,
		IsComplete:           data.IsComplete,
	}, nil
}
