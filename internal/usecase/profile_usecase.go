package usecase

import (
	"context"

	"sakny/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PreferredAreaInput names one governorate/city pair the user wants to live in.
type PreferredAreaInput struct {
	GovernorateID int    `json:"governorateId" validate:"required,min=1"`
	CityID        int    `json:"cityId" validate:"required,min=1"`
	Street        string `json:"street" validate:"max=255"`
}

// CreateProfileInput carries the full six-step wizard submission. Every step
// arrives at once; a stored profile is never partial.
type CreateProfileInput struct {
	Age                int    `json:"age" validate:"required,min=18,max=100"`
	Gender             string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Occupation         string `json:"occupation" validate:"max=100"`
	UniversityOrSchool string `json:"universityOrSchool" validate:"max=255"`
	CompanyName        string `json:"companyName" validate:"max=255"`

	CurrentGovernorateID *int `json:"currentGovernorateId" validate:"omitempty,min=1"`
	CurrentCityID        *int `json:"currentCityId" validate:"omitempty,min=1"`

	Bio       string `json:"bio" validate:"max=500"`
	Instagram string `json:"instagram" validate:"max=255"`
	Linkedin  string `json:"linkedin" validate:"max=255"`

	PersonalityTraits []string `json:"personalityTraits" validate:"required,min=1,dive,max=50"`

	Smoking       string `json:"smoking" validate:"required,oneof=NON_SMOKER OCCASIONAL REGULAR"`
	Pets          string `json:"pets" validate:"required,oneof=NO_PETS HAS_PETS"`
	SleepSchedule string `json:"sleepSchedule" validate:"required,oneof=EARLY_BIRD NIGHT_OWL FLEXIBLE"`
	Cleanliness   int    `json:"cleanliness" validate:"omitempty,min=1,max=5"`

	BudgetMin int `json:"budgetMin" validate:"required,min=500"`
	BudgetMax int `json:"budgetMax" validate:"required,max=20000"`

	RoommateType      string `json:"roommateType" validate:"required,oneof=STUDENT PROFESSIONAL ANY"`
	PrefSmoking       string `json:"prefSmoking" validate:"omitempty,oneof=NO_SMOKING OUTDOOR_ONLY SMOKING_OK"`
	PrefPets          string `json:"prefPets" validate:"omitempty,oneof=NO_PETS PETS_OK"`
	PrefSleepSchedule string `json:"prefSleepSchedule" validate:"omitempty,oneof=EARLY_BIRD NIGHT_OWL NO_PREFERENCE"`
	PrefCleanliness   string `json:"prefCleanliness" validate:"omitempty,oneof=VERY_CLEAN MODERATE RELAXED"`
	AdditionalNotes   string `json:"additionalNotes" validate:"max=300"`

	PreferredAreas []PreferredAreaInput `json:"preferredAreas" validate:"required,min=1,max=5,dive"`
}

// UpdateProfileInput carries a partial update. Nil means the field was omitted
// and the stored value stays untouched; non-nil overwrites. PreferredAreas
// replaces the whole set when non-empty and is ignored when empty or absent.
type UpdateProfileInput struct {
	Age                *int    `json:"age" validate:"omitempty,min=18,max=100"`
	Gender             *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	Occupation         *string `json:"occupation" validate:"omitempty,max=100"`
	UniversityOrSchool *string `json:"universityOrSchool" validate:"omitempty,max=255"`
	CompanyName        *string `json:"companyName" validate:"omitempty,max=255"`

	CurrentGovernorateID *int `json:"currentGovernorateId" validate:"omitempty,min=1"`
	CurrentCityID        *int `json:"currentCityId" validate:"omitempty,min=1"`

	Bio       *string `json:"bio" validate:"omitempty,max=500"`
	Instagram *string `json:"instagram" validate:"omitempty,max=255"`
	Linkedin  *string `json:"linkedin" validate:"omitempty,max=255"`

	PersonalityTraits []string `json:"personalityTraits" validate:"omitempty,dive,max=50"`

	Smoking       *string `json:"smoking" validate:"omitempty,oneof=NON_SMOKER OCCASIONAL REGULAR"`
	Pets          *string `json:"pets" validate:"omitempty,oneof=NO_PETS HAS_PETS"`
	SleepSchedule *string `json:"sleepSchedule" validate:"omitempty,oneof=EARLY_BIRD NIGHT_OWL FLEXIBLE"`
	Cleanliness   *int    `json:"cleanliness" validate:"omitempty,min=1,max=5"`

	BudgetMin *int `json:"budgetMin" validate:"omitempty,min=500"`
	BudgetMax *int `json:"budgetMax" validate:"omitempty,max=20000"`

	RoommateGender    *string `json:"roommateGender" validate:"omitempty,oneof=MALE FEMALE"`
	RoommateType      *string `json:"roommateType" validate:"omitempty,oneof=STUDENT PROFESSIONAL ANY"`
	PrefSmoking       *string `json:"prefSmoking" validate:"omitempty,oneof=NO_SMOKING OUTDOOR_ONLY SMOKING_OK"`
	PrefPets          *string `json:"prefPets" validate:"omitempty,oneof=NO_PETS PETS_OK"`
	PrefSleepSchedule *string `json:"prefSleepSchedule" validate:"omitempty,oneof=EARLY_BIRD NIGHT_OWL NO_PREFERENCE"`
	PrefCleanliness   *string `json:"prefCleanliness" validate:"omitempty,oneof=VERY_CLEAN MODERATE RELAXED"`
	AdditionalNotes   *string `json:"additionalNotes" validate:"omitempty,max=300"`

	PreferredAreas []PreferredAreaInput `json:"preferredAreas" validate:"omitempty,max=5,dive"`
}

// PhotoUpload carries one uploaded file, already read into memory by the
// delivery layer.
type PhotoUpload struct {
	Data        []byte
	Size        int64
	ContentType string
	Filename    string
}

// ProfileUsecase defines the interface for the roommate-profile workflow.
type ProfileUsecase interface {
	// CreateProfile stores the one profile of the user. Fails when a
	// profile already exists.
	CreateProfile(ctx context.Context, userID uuid.UUID, input *CreateProfileInput) (*entity.Profile, error)

	// UpdateProfile applies a partial update to the stored profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// GetProfile fetches the caller's profile with all joins resolved.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// GetProfileByUserID fetches any user's profile; authorization is the
	// delivery layer's concern.
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UploadProfilePhoto validates and stores a new photo, replacing any
	// previous object best-effort.
	UploadProfilePhoto(ctx context.Context, userID uuid.UUID, upload *PhotoUpload) (*entity.Profile, error)

	// DeleteProfilePhoto removes the stored photo object and clears the URL.
	DeleteProfilePhoto(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
