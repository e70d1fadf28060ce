package impl

import (
	"context"
	"testing"

	"sakny/internal/domain/entity"
	domainerrors "sakny/internal/domain/errors"
	"sakny/internal/domain/repository"
	mockRepo "sakny/internal/mocks/repository"
	"sakny/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()

	fx.onExecute(ctx, domainerrors.ErrProfileAlreadyExists, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockProfileRepo.EXPECT().ExistsByUserID(ctx, userID).Return(true, nil)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_CreateProfile_UserMissing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()

	fx.onExecute(ctx, domainerrors.ErrUserNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_CreateProfile_InvalidBudgetRange(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()
	input.BudgetMin = 5000
	input.BudgetMax = 4000

	fx.onExecute(ctx, domainerrors.ErrInvalidBudgetRange, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockProfileRepo.EXPECT().ExistsByUserID(ctx, userID).Return(false, nil)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBudgetRange))
}

func TestProfileService_CreateProfile_CityOutsideGovernorate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()
	// Area claims city 10 sits in governorate 1, but the reference row
	// says otherwise.
	fx.onExecute(ctx, domainerrors.ErrInvalidCity, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockProfileRepo.EXPECT().ExistsByUserID(ctx, userID).Return(false, nil)

		mockLocationRepo.EXPECT().GovernorateExists(ctx, 1).Return(true, nil)
		mockLocationRepo.EXPECT().
			FindCityByID(ctx, 10).
			Return(&entity.City{ID: 10, GovernorateID: 2}, nil)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)

	assert.Error(t, err)
	assert.Equal(t, "PROFILE_005", appErrorCode(t, err))
}

func TestProfileService_CreateProfile_DuplicateArea(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := validCreateInput()
	input.PreferredAreas = []usecase.PreferredAreaInput{
		{GovernorateID: 1, CityID: 10},
		{GovernorateID: 1, CityID: 10, Street: "other street"},
	}

	fx.onExecute(ctx, domainerrors.ErrValidationFailed, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockProfileRepo.EXPECT().ExistsByUserID(ctx, userID).Return(false, nil)

		mockLocationRepo.EXPECT().GovernorateExists(ctx, 1).Return(true, nil)
		mockLocationRepo.EXPECT().
			FindCityByID(ctx, 10).
			Return(&entity.City{ID: 10, GovernorateID: 1}, nil)
	})

	_, err := fx.service.CreateProfile(ctx, userID, input)

	assert.Error(t, err)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	newBio := "bio"
	input := &usecase.UpdateProfileInput{Bio: &newBio}

	fx.onExecute(ctx, domainerrors.ErrProfileNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	})

	_, err := fx.service.UpdateProfile(ctx, userID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_MergedBudgetInvalid(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	// Stored max is 4000; raising only min above it must fail even though
	// the request by itself looks consistent.
	newMin := 4500
	input := &usecase.UpdateProfileInput{BudgetMin: &newMin}

	existing := storedProfile(userID)

	fx.onExecute(ctx, domainerrors.ErrInvalidBudgetRange, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		mockLocationRepo := mockRepo.NewMockLocationRepository(t)

		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		factory.EXPECT().LocationRepo().Return(mockLocationRepo)

		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, userID, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBudgetRange))
}

func TestProfileService_UploadProfilePhoto_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		upload   *usecase.PhotoUpload
		expected *domainerrors.BaseError
	}{
		{
			name:     "empty file",
			upload:   &usecase.PhotoUpload{Data: nil, Size: 0, ContentType: "image/png"},
			expected: domainerrors.ErrEmptyFile,
		},
		{
			name: "too large",
			upload: &usecase.PhotoUpload{
				Data:        make([]byte, 16),
				Size:        6 << 20,
				ContentType: "image/jpeg",
			},
			expected: domainerrors.ErrFileTooLarge,
		},
		{
			name: "buffer larger than declared size",
			upload: &usecase.PhotoUpload{
				Data:        make([]byte, 6<<20),
				Size:        16,
				ContentType: "image/jpeg",
			},
			expected: domainerrors.ErrFileTooLarge,
		},
		{
			name: "unsupported type",
			upload: &usecase.PhotoUpload{
				Data:        []byte("gif bytes"),
				Size:        9,
				ContentType: "image/gif",
			},
			expected: domainerrors.ErrInvalidFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(storedProfile(userID), nil)

			_, err := fx.service.UploadProfilePhoto(ctx, userID, tt.upload)

			assert.Error(t, err)
			assert.Equal(t, tt.expected.ErrorCode(), appErrorCode(t, err))
		})
	}
}

func TestProfileService_UploadProfilePhoto_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.UploadProfilePhoto(ctx, userID, &usecase.PhotoUpload{})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_DeleteProfilePhoto_StorageFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := storedProfile(userID)
	existing.ProfilePhotoURL = "http://localhost:9000/sakny-photos/profile-photos/pic.jpg"

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

	fx.photoStorage.EXPECT().
		ObjectKeyFromURL(existing.ProfilePhotoURL).
		Return("profile-photos/pic.jpg")
	fx.photoStorage.EXPECT().
		Delete(ctx, "profile-photos/pic.jpg").
		Return(assert.AnError)

	// Unlike the replacement path, an explicit delete must surface the
	// storage failure and leave the URL in place.
	_, err := fx.service.DeleteProfilePhoto(ctx, userID)

	assert.Error(t, err)
	assert.Equal(t, "STORAGE_005", appErrorCode(t, err))
}

// appErrorCode digs the application error out of a wrapped chain and returns
// its business code.
func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an application error, got %v", err)
	}

	return appErr.ErrorCode()
}
