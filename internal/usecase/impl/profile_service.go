package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "sakny/internal/delivery/context"
	"sakny/internal/domain/entity"
	domainerrors "sakny/internal/domain/errors"
	"sakny/internal/domain/repository"
	"sakny/internal/domain/service"
	"sakny/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxPhotoSize       = 5 << 20 // 5 MiB
	maxPreferredAreas  = 5
	defaultCleanliness = 3
)

// photoExtensions maps the accepted content types to the fallback file
// extension used when the original filename carries none.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	photoStorage service.PhotoStorage
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	PhotoStorage service.PhotoStorage
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		photoStorage: params.PhotoStorage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile stores the one profile of the user. The six wizard steps
// arrive as a single submission, so the stored row is complete from the start.
func (srv *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Creating profile", slog.Any("userID", userID))

	var created *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()
		locationRepo := repoFactory.LocationRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for profile creation")
		}

		exists, err := profileRepo.ExistsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to check profile existence")
		}
		if exists {
			return domainerrors.ErrProfileAlreadyExists
		}

		if input.BudgetMin > input.BudgetMax {
			return domainerrors.ErrInvalidBudgetRange
		}

		if err := validateLocationPair(ctx, locationRepo, input.CurrentGovernorateID, input.CurrentCityID); err != nil {
			return err
		}

		areas, err := buildPreferredAreas(ctx, locationRepo, input.PreferredAreas)
		if err != nil {
			return err
		}

		cleanliness := input.Cleanliness
		if cleanliness == 0 {
			cleanliness = defaultCleanliness
		}

		profile := &entity.Profile{
			UserID:               userID,
			Age:                  input.Age,
			Gender:               entity.Gender(input.Gender),
			Occupation:           input.Occupation,
			UniversityOrSchool:   input.UniversityOrSchool,
			CompanyName:          input.CompanyName,
			CurrentGovernorateID: input.CurrentGovernorateID,
			CurrentCityID:        input.CurrentCityID,
			Bio:                  input.Bio,
			Instagram:            input.Instagram,
			Linkedin:             input.Linkedin,
			PersonalityTraits:    input.PersonalityTraits,
			Smoking:              entity.SmokingStatus(input.Smoking),
			Pets:                 entity.PetStatus(input.Pets),
			SleepSchedule:        entity.SleepSchedule(input.SleepSchedule),
			Cleanliness:          cleanliness,
			BudgetMin:            input.BudgetMin,
			BudgetMax:            input.BudgetMax,
			// The roommate gender preference starts as the creator's own
			// gender and lives its own life afterwards.
			RoommateGender:    entity.Gender(input.Gender),
			RoommateType:      entity.RoommateType(input.RoommateType),
			PrefSmoking:       entity.SmokingPreference(input.PrefSmoking),
			PrefPets:          entity.PetPreference(input.PrefPets),
			PrefSleepSchedule: entity.SleepSchedulePreference(input.PrefSleepSchedule),
			PrefCleanliness:   entity.CleanlinessPreference(input.PrefCleanliness),
			AdditionalNotes:   input.AdditionalNotes,
			PreferredAreas:    areas,
			IsComplete:        true,
		}

		if err := profileRepo.Create(ctx, profile); err != nil {
			return err
		}

		created, err = profileRepo.FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// UpdateProfile applies a partial update. A nil input field was omitted by
// the client and leaves the stored value untouched; a non-nil field
// overwrites it.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		locationRepo := repoFactory.LocationRepo()

		profile, err := profileRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to load profile for update")
		}

		// The budget range is checked over the merged view so a partial
		// update can never leave min above max.
		budgetMin := profile.BudgetMin
		if input.BudgetMin != nil {
			budgetMin = *input.BudgetMin
		}
		budgetMax := profile.BudgetMax
		if input.BudgetMax != nil {
			budgetMax = *input.BudgetMax
		}
		if budgetMin > budgetMax {
			return domainerrors.ErrInvalidBudgetRange
		}

		if input.CurrentGovernorateID != nil || input.CurrentCityID != nil {
			governorateID := profile.CurrentGovernorateID
			if input.CurrentGovernorateID != nil {
				governorateID = input.CurrentGovernorateID
			}
			cityID := profile.CurrentCityID
			if input.CurrentCityID != nil {
				cityID = input.CurrentCityID
			}
			if err := validateLocationPair(ctx, locationRepo, governorateID, cityID); err != nil {
				return err
			}
			profile.CurrentGovernorateID = governorateID
			profile.CurrentCityID = cityID
		}

		applyProfilePatch(profile, input)
		profile.BudgetMin = budgetMin
		profile.BudgetMax = budgetMax

		// A non-empty area list replaces the stored set wholesale; an empty
		// or absent list leaves it alone.
		if len(input.PreferredAreas) > 0 {
			areas, err := buildPreferredAreas(ctx, locationRepo, input.PreferredAreas)
			if err != nil {
				return err
			}
			if err := profileRepo.ReplacePreferredAreas(ctx, profile.ID, areas); err != nil {
				return err
			}
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated, err = profileRepo.FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// GetProfile fetches the caller's profile with all joins resolved.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return srv.fetchProfile(ctx, userID)
}

// GetProfileByUserID fetches any user's profile. Who may call this is the
// delivery layer's concern.
func (srv *profileService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return srv.fetchProfile(ctx, userID)
}

func (srv *profileService) fetchProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return profile, nil
}

// UploadProfilePhoto validates the file, removes the previous object
// best-effort, uploads the new one and persists its public URL.
func (srv *profileService) UploadProfilePhoto(ctx context.Context, userID uuid.UUID, upload *usecase.PhotoUpload) (*entity.Profile, error) {
	profile, err := srv.fetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := validatePhotoUpload(upload); err != nil {
		return nil, err
	}

	// Losing the old object is acceptable; losing the upload is not. The
	// delete is best-effort and failure only logs.
	if profile.ProfilePhotoURL != "" {
		if oldKey := srv.photoStorage.ObjectKeyFromURL(profile.ProfilePhotoURL); oldKey != "" {
			if err := srv.photoStorage.Delete(ctx, oldKey); err != nil {
				srv.log(ctx).Warn("Failed to delete previous profile photo",
					slog.Any("userID", userID),
					slog.String("objectKey", oldKey),
					slog.Any("error", err),
				)
			}
		}
	}

	objectKey := fmt.Sprintf("profile-photos/user-%s/%s%s",
		userID, uuid.New(), photoExtension(upload.Filename, upload.ContentType))

	photoURL, err := srv.photoStorage.Upload(ctx, upload.Data, upload.Size, upload.ContentType, objectKey)
	if err != nil {
		srv.log(ctx).Error("Failed to upload profile photo", slog.Any("userID", userID), slog.Any("error", err))

		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	var updated *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile.ProfilePhotoURL = photoURL
		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated, err = profileRepo.FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProfilePhoto removes the stored photo object and clears the URL.
// Unlike the replacement path, an explicit delete surfaces storage failures.
func (srv *profileService) DeleteProfilePhoto(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.fetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Nothing stored, nothing to do.
	if profile.ProfilePhotoURL == "" {
		return profile, nil
	}

	if objectKey := srv.photoStorage.ObjectKeyFromURL(profile.ProfilePhotoURL); objectKey != "" {
		if err := srv.photoStorage.Delete(ctx, objectKey); err != nil {
			// An already-missing object still lets the URL be cleared.
			if !errors.Is(err, service.ErrObjectNotFound) {
				srv.log(ctx).Error("Failed to delete profile photo", slog.Any("userID", userID), slog.Any("error", err))

				return nil, domainerrors.ErrDeleteFailed.WrapMessage(err.Error())
			}
		}
	}

	var updated *entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile.ProfilePhotoURL = ""
		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated, err = profileRepo.FindByUserID(ctx, userID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// --- Helpers ---

// validateLocationPair checks a current-location reference. Either side may
// be absent; when both are present the city must belong to the governorate.
func validateLocationPair(ctx context.Context, locationRepo repository.LocationRepository, governorateID, cityID *int) error {
	if governorateID != nil {
		exists, err := locationRepo.GovernorateExists(ctx, *governorateID)
		if err != nil {
			return errors.Wrap(err, "failed to check governorate")
		}
		if !exists {
			return domainerrors.ErrInvalidGovernorate.WithDetails(fmt.Sprintf("governorate id %d", *governorateID))
		}
	}

	if cityID != nil {
		city, err := locationRepo.FindCityByID(ctx, *cityID)
		if err != nil {
			if errors.Is(err, repository.ErrCityNotFound) {
				return domainerrors.ErrInvalidCity.WithDetails(fmt.Sprintf("city id %d", *cityID))
			}

			return errors.Wrap(err, "failed to check city")
		}
		if governorateID != nil && city.GovernorateID != *governorateID {
			return domainerrors.ErrInvalidCity.WithDetails(
				fmt.Sprintf("city id %d does not belong to governorate id %d", *cityID, *governorateID))
		}
	}

	return nil
}

// buildPreferredAreas validates every requested area against the reference
// hierarchy and rejects duplicate governorate/city pairs.
func buildPreferredAreas(ctx context.Context, locationRepo repository.LocationRepository, inputs []usecase.PreferredAreaInput) ([]entity.PreferredArea, error) {
	if len(inputs) > maxPreferredAreas {
		return nil, domainerrors.ErrTooManyPreferredAreas
	}

	seen := make(map[[2]int]struct{}, len(inputs))
	areas := make([]entity.PreferredArea, 0, len(inputs))
	for _, in := range inputs {
		pair := [2]int{in.GovernorateID, in.CityID}
		if _, dup := seen[pair]; dup {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("duplicate preferred area: governorate %d, city %d", in.GovernorateID, in.CityID))
		}
		seen[pair] = struct{}{}

		governorateID := in.GovernorateID
		cityID := in.CityID
		if err := validateLocationPair(ctx, locationRepo, &governorateID, &cityID); err != nil {
			return nil, err
		}

		areas = append(areas, entity.PreferredArea{
			GovernorateID: in.GovernorateID,
			CityID:        in.CityID,
			Street:        in.Street,
		})
	}

	return areas, nil
}

// applyProfilePatch copies every provided scalar field onto the entity.
// Budget, current location and preferred areas are handled by the caller
// because they need merged-view validation.
func applyProfilePatch(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Age != nil {
		profile.Age = *input.Age
	}
	if input.Gender != nil {
		profile.Gender = entity.Gender(*input.Gender)
	}
	if input.Occupation != nil {
		profile.Occupation = *input.Occupation
	}
	if input.UniversityOrSchool != nil {
		profile.UniversityOrSchool = *input.UniversityOrSchool
	}
	if input.CompanyName != nil {
		profile.CompanyName = *input.CompanyName
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Instagram != nil {
		profile.Instagram = *input.Instagram
	}
	if input.Linkedin != nil {
		profile.Linkedin = *input.Linkedin
	}
	if input.PersonalityTraits != nil {
		profile.PersonalityTraits = input.PersonalityTraits
	}
	if input.Smoking != nil {
		profile.Smoking = entity.SmokingStatus(*input.Smoking)
	}
	if input.Pets != nil {
		profile.Pets = entity.PetStatus(*input.Pets)
	}
	if input.SleepSchedule != nil {
		profile.SleepSchedule = entity.SleepSchedule(*input.SleepSchedule)
	}
	if input.Cleanliness != nil {
		profile.Cleanliness = *input.Cleanliness
	}
	if input.RoommateGender != nil {
		profile.RoommateGender = entity.Gender(*input.RoommateGender)
	}
	if input.RoommateType != nil {
		profile.RoommateType = entity.RoommateType(*input.RoommateType)
	}
	if input.PrefSmoking != nil {
		profile.PrefSmoking = entity.SmokingPreference(*input.PrefSmoking)
	}
	if input.PrefPets != nil {
		profile.PrefPets = entity.PetPreference(*input.PrefPets)
	}
	if input.PrefSleepSchedule != nil {
		profile.PrefSleepSchedule = entity.SleepSchedulePreference(*input.PrefSleepSchedule)
	}
	if input.PrefCleanliness != nil {
		profile.PrefCleanliness = entity.CleanlinessPreference(*input.PrefCleanliness)
	}
	if input.AdditionalNotes != nil {
		profile.AdditionalNotes = *input.AdditionalNotes
	}
}

// validatePhotoUpload enforces the size and content type limits.
func validatePhotoUpload(upload *usecase.PhotoUpload) error {
	if upload == nil || upload.Size == 0 || len(upload.Data) == 0 {
		return domainerrors.ErrEmptyFile
	}
	if upload.Size > maxPhotoSize || int64(len(upload.Data)) > maxPhotoSize {
		return domainerrors.ErrFileTooLarge
	}
	if _, ok := photoExtensions[upload.ContentType]; !ok {
		return domainerrors.ErrInvalidFileType.WithDetails(upload.ContentType)
	}

	return nil
}

// photoExtension picks the stored object's extension: the original filename's
// extension when present, otherwise one derived from the content type.
func photoExtension(filename, contentType string) string {
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}

	return photoExtensions[contentType]
}
