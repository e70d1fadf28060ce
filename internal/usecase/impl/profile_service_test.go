package impl

import (
	"context"
	"testing"

	"sakny/internal/domain/entity"
	"sakny/internal/domain/repository"
	mockRepo "sakny/internal/mocks/repository"
	mockService "sakny/internal/mocks/service"
	"sakny/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	t            *testing.T
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	profileRepo  *mockRepo.MockProfileRepository
	photoStorage *mockService.MockPhotoStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStorage := mockService.NewMockPhotoStorage(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:    txManager,
		ProfileRepo:  profileRepo,
		PhotoStorage: photoStorage,
		Logger:       newDiscardLogger(),
	})

	return profileServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		profileRepo:  profileRepo,
		photoStorage: photoStorage,
	}
}

// onExecute wires one transaction round: the setup callback arranges the
// factory's repositories, then the transaction body runs against them and
// Execute reports the given result.
func (fx profileServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func validCreateInput() *usecase.CreateProfileInput {
	return &usecase.CreateProfileInput{
		Age:               24,
		Gender:            "FEMALE",
		Occupation:        "STUDENT",
		PersonalityTraits: []string{"quiet", "organized"},
		Smoking:           "NON_SMOKER",
		Pets:              "NO_PETS",
		SleepSchedule:     "EARLY_BIRD",
		BudgetMin:         2000,
		BudgetMax:         4000,
		RoommateType:      "STUDENT",
		PreferredAreas: []usecase.PreferredAreaInput{
			{GovernorateID: 1, CityID: 10, Street: "Main St"},
		},
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()
	enriched := storedProfile(userID)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID}, nil)

		mockProfileRepo.EXPECT().
			ExistsByUserID(ctx, userID).
			Return(false, nil)

		mockLocationRepo.EXPECT().GovernorateExists(ctx, 1).Return(true, nil)
		mockLocationRepo.EXPECT().
			FindCityByID(ctx, 10).
			Return(&entity.City{ID: 10, GovernorateID: 1}, nil)

		mockProfileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				// The gender preference mirrors the creator's own gender
				// and the stored row is complete from the start.
				assert.Equal(t, entity.GenderFemale, profile.RoommateGender)
				assert.True(t, profile.IsComplete)
				assert.Len(t, profile.PreferredAreas, 1)
				profile.ID = uuid.New()
			}).
			Return(nil)

		mockProfileRepo.EXPECT().
			FindByUserID(ctx, userID).
			Return(enriched, nil)
	})

	profile, err := fx.service.CreateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, enriched, profile)
}

func TestProfileService_CreateProfile_DefaultsCleanliness(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()
	input.Cleanliness = 0

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockProfileRepo.EXPECT().ExistsByUserID(ctx, userID).Return(false, nil)
		mockLocationRepo.EXPECT().GovernorateExists(ctx, 1).Return(true, nil)
		mockLocationRepo.EXPECT().FindCityByID(ctx, 10).Return(&entity.City{ID: 10, GovernorateID: 1}, nil)

		mockProfileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				assert.Equal(t, 3, profile.Cleanliness)
			}).
			Return(nil)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(storedProfile(userID), nil)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_BioOnly(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newBio := "new bio"
	input := &usecase.UpdateProfileInput{Bio: &newBio}

	existing := storedProfile(userID)
	enriched := storedProfile(userID)
	enriched.Bio = newBio

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()

		mockProfileRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				// Only the provided field changes; everything else keeps
				// its stored value.
				assert.Equal(t, newBio, profile.Bio)
				assert.Equal(t, 24, profile.Age)
				assert.Equal(t, 2000, profile.BudgetMin)
				assert.Equal(t, entity.GenderFemale, profile.RoommateGender)
			}).
			Return(nil)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(enriched, nil).Once()
	})

	profile, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, newBio, profile.Bio)
}

func TestProfileService_UpdateProfile_GenderKeepsRoommateGender(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newGender := "MALE"
	input := &usecase.UpdateProfileInput{Gender: &newGender}

	existing := storedProfile(userID)
	enriched := storedProfile(userID)
	enriched.Gender = entity.GenderMale

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()

		mockProfileRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				// Own gender changes; the roommate preference keeps the
				// value captured at creation time.
				assert.Equal(t, entity.GenderMale, profile.Gender)
				assert.Equal(t, entity.GenderFemale, profile.RoommateGender)
			}).
			Return(nil)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(enriched, nil).Once()
	})

	profile, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.GenderMale, profile.Gender)
	assert.Equal(t, entity.GenderFemale, profile.RoommateGender)
}

func TestProfileService_UpdateProfile_ReplacesAreas(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		PreferredAreas: []usecase.PreferredAreaInput{
			{GovernorateID: 2, CityID: 20},
			{GovernorateID: 2, CityID: 21, Street: "Side St"},
		},
	}

	existing := storedProfile(userID)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()

		mockLocationRepo.EXPECT().GovernorateExists(ctx, 2).Return(true, nil).Twice()
		mockLocationRepo.EXPECT().FindCityByID(ctx, 20).Return(&entity.City{ID: 20, GovernorateID: 2}, nil)
		mockLocationRepo.EXPECT().FindCityByID(ctx, 21).Return(&entity.City{ID: 21, GovernorateID: 2}, nil)

		mockProfileRepo.EXPECT().
			ReplacePreferredAreas(ctx, existing.ID, mock.AnythingOfType("[]entity.PreferredArea")).
			Run(func(ctx context.Context, profileID uuid.UUID, areas []entity.PreferredArea) {
				assert.Len(t, areas, 2)
			}).
			Return(nil)

		mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()
	})

	_, err := fx.service.UpdateProfile(ctx, userID, input)
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_EmptyAreasUntouched(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	age := 30
	input := &usecase.UpdateProfileInput{Age: &age}

	existing := storedProfile(userID)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()
		// No ReplacePreferredAreas expectation: an absent list must not
		// touch the stored set.
		mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil).Once()
	})

	_, err := fx.service.UpdateProfile(ctx, userID, input)
	require.NoError(t, err)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := storedProfile(userID)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(expected, nil)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_UploadProfilePhoto_ReplacesOld(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := storedProfile(userID)
	existing.ProfilePhotoURL = "http://localhost:9000/sakny-photos/profile-photos/user-1/old.jpg"

	upload := &usecase.PhotoUpload{
		Data:        []byte("fake image bytes"),
		Size:        16,
		ContentType: "image/jpeg",
		Filename:    "selfie.jpg",
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	fx.photoStorage.EXPECT().
		ObjectKeyFromURL(existing.ProfilePhotoURL).
		Return("profile-photos/user-1/old.jpg")
	fx.photoStorage.EXPECT().
		Delete(ctx, "profile-photos/user-1/old.jpg").
		Return(nil)

	fx.photoStorage.EXPECT().
		Upload(ctx, upload.Data, upload.Size, "image/jpeg", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, data []byte, size int64, contentType string, objectKey string) {
			assert.Contains(t, objectKey, "profile-photos/user-"+userID.String()+"/")
			assert.Contains(t, objectKey, ".jpg")
		}).
		Return("http://localhost:9000/sakny-photos/profile-photos/new.jpg", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)

		mockProfileRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				assert.Equal(t, "http://localhost:9000/sakny-photos/profile-photos/new.jpg", profile.ProfilePhotoURL)
			}).
			Return(nil)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	})

	_, err := fx.service.UploadProfilePhoto(ctx, userID, upload)
	require.NoError(t, err)
}

func TestProfileService_UploadProfilePhoto_OldDeleteFailureSwallowed(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := storedProfile(userID)
	existing.ProfilePhotoURL = "http://localhost:9000/sakny-photos/profile-photos/old.png"

	upload := &usecase.PhotoUpload{
		Data:        []byte("png bytes"),
		Size:        9,
		ContentType: "image/png",
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	fx.photoStorage.EXPECT().
		ObjectKeyFromURL(existing.ProfilePhotoURL).
		Return("profile-photos/old.png")
	fx.photoStorage.EXPECT().
		Delete(ctx, "profile-photos/old.png").
		Return(assert.AnError)

	fx.photoStorage.EXPECT().
		Upload(ctx, upload.Data, upload.Size, "image/png", mock.AnythingOfType("string")).
		Return("http://localhost:9000/sakny-photos/profile-photos/new.png", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	})

	_, err := fx.service.UploadProfilePhoto(ctx, userID, upload)
	require.NoError(t, err)
}

func TestProfileService_DeleteProfilePhoto_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := storedProfile(userID)
	existing.ProfilePhotoURL = "http://localhost:9000/sakny-photos/profile-photos/pic.webp"

	cleared := storedProfile(userID)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	fx.photoStorage.EXPECT().
		ObjectKeyFromURL(existing.ProfilePhotoURL).
		Return("profile-photos/pic.webp")
	fx.photoStorage.EXPECT().
		Delete(ctx, "profile-photos/pic.webp").
		Return(nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)

		mockProfileRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(ctx context.Context, profile *entity.Profile) {
				assert.Empty(t, profile.ProfilePhotoURL)
			}).
			Return(nil)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(cleared, nil)
	})

	profile, err := fx.service.DeleteProfilePhoto(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, profile.ProfilePhotoURL)
}

func TestProfileService_DeleteProfilePhoto_NoPhotoNoStorageCall(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := storedProfile(userID)

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	// No photoStorage or txManager expectations: without a stored URL the
	// operation is a pure no-op.
	profile, err := fx.service.DeleteProfilePhoto(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, existing, profile)
}

func TestPhotoExtension(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		expected    string
	}{
		{"from filename", "selfie.JPG", "image/png", ".jpg"},
		{"jpeg fallback", "", "image/jpeg", ".jpg"},
		{"png fallback", "photo", "image/png", ".png"},
		{"webp fallback", "", "image/webp", ".webp"},
		{"filename wins", "pic.webp", "image/jpeg", ".webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, photoExtension(tt.filename, tt.contentType))
		})
	}
}
