package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"sakny/internal/delivery/http/middleware"
	"sakny/internal/delivery/http/validator"
	"sakny/internal/domain/entity"
	domainerrors "sakny/internal/domain/errors"
	mockusecase "sakny/internal/mocks/usecase"
	"sakny/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// photoPartHeader builds a multipart part header carrying both a filename
// and an explicit content type, the way browsers submit file inputs.
func photoPartHeader(filename, contentType string) textproto.MIMEHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	return header
}

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockusecase.MockProfileUsecase) {
	t.Helper()

	uc := mockusecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProfileHandler(uc, logger), uc
}

func testProfile(userID uuid.UUID) *entity.Profile {
	gov := &entity.Governorate{ID: 1, NameEn: "Cairo", NameAr: "القاهرة"}
	city := &entity.City{ID: 10, GovernorateID: 1, NameEn: "Nasr City", NameAr: "مدينة نصر"}
	govID, cityID := 1, 10

	return &entity.Profile{
		ID:                   uuid.New(),
		UserID:               userID,
		User:                 &entity.User{ID: userID, Name: "Sara"},
		Age:                  24,
		Gender:               entity.GenderFemale,
		CurrentGovernorateID: &govID,
		CurrentCityID:        &cityID,
		CurrentGovernorate:   gov,
		CurrentCity:          city,
		ProfilePhotoURL:      "http://minio:9000/sakny-photos/profile-photos/user-x/a.jpg",
		PersonalityTraits:    []string{"quiet", "organized"},
		Smoking:              entity.SmokingNonSmoker,
		Pets:                 entity.PetsNone,
		SleepSchedule:        entity.SleepEarlyBird,
		Cleanliness:          4,
		BudgetMin:            2000,
		BudgetMax:            4000,
		RoommateGender:       entity.GenderFemale,
		RoommateType:         entity.RoommateStudent,
		PreferredAreas: []entity.PreferredArea{
			{ID: uuid.New(), GovernorateID: 1, CityID: 10, Street: "Main St", Governorate: gov, City: city},
		},
		IsComplete: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestProfileHandler_Get(t *testing.T) {
	handler, uc := newTestProfileHandler(t)
	userID := uuid.New()
	uc.EXPECT().GetProfile(mock.Anything, userID).Return(testProfile(userID), nil)

	c, rec := newTestContext(t, http.MethodGet, "/v1/profile", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool            `json:"success"`
		Data    profileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, userID, envelope.Data.UserID)
	assert.Equal(t, "Sara", envelope.Data.Name)
	assert.Equal(t, "القاهرة", envelope.Data.CurrentGovernorate.NameAr)
	require.Len(t, envelope.Data.PreferredAreas, 1)
	assert.Equal(t, "Main St", envelope.Data.PreferredAreas[0].Street)
}

func TestProfileHandler_Get_NoAuthContext(t *testing.T) {
	handler, _ := newTestProfileHandler(t)

	c, _ := newTestContext(t, http.MethodGet, "/v1/profile", "")

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestProfileHandler_GetByUserID_InvalidUUID(t *testing.T) {
	handler, _ := newTestProfileHandler(t)

	c, _ := newTestContext(t, http.MethodGet, "/v1/profile/not-a-uuid", "")
	c.SetParamNames("userId")
	c.SetParamValues("not-a-uuid")

	err := handler.GetByUserID(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileHandler_Update(t *testing.T) {
	handler, uc := newTestProfileHandler(t)
	userID := uuid.New()
	bio := "New bio"

	uc.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) {
			require.NotNil(t, input.Bio)
			assert.Equal(t, bio, *input.Bio)
			assert.Nil(t, input.Age)
		}).
		Return(testProfile(userID), nil)

	c, rec := newTestContext(t, http.MethodPut, "/v1/profile", `{"bio":"New bio"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UploadPhoto(t *testing.T) {
	handler, uc := newTestProfileHandler(t)
	userID := uuid.New()
	content := []byte("fake image bytes")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreatePart(photoPartHeader("avatar.png", "image/png"))
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	uc.EXPECT().
		UploadProfilePhoto(mock.Anything, userID, mock.AnythingOfType("*usecase.PhotoUpload")).
		Run(func(ctx context.Context, id uuid.UUID, upload *usecase.PhotoUpload) {
			assert.Equal(t, "avatar.png", upload.Filename)
			assert.Equal(t, "image/png", upload.ContentType)
			assert.Equal(t, int64(len(content)), upload.Size)
			assert.Equal(t, content, upload.Data)
		}).
		Return(testProfile(userID), nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/profile/photo", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.UploadPhoto(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UploadPhoto_MissingFile(t *testing.T) {
	handler, _ := newTestProfileHandler(t)
	userID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/profile/photo", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	err := handler.UploadPhoto(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProfileHandler_DeletePhoto(t *testing.T) {
	handler, uc := newTestProfileHandler(t)
	userID := uuid.New()

	cleared := testProfile(userID)
	cleared.ProfilePhotoURL = ""
	uc.EXPECT().DeleteProfilePhoto(mock.Anything, userID).Return(cleared, nil)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/profile/photo", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.DeletePhoto(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "profilePhotoUrl")
}
