package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ProfileModel mirrors the 'profiles' table. Each user owns at most one row,
// enforced by the unique index on user_id.
type ProfileModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;unique;not null"`

	Age                int    `gorm:"not null"`
	Gender             string `gorm:"type:varchar(10);not null"`
	Occupation         string `gorm:"type:varchar(20);not null"`
	UniversityOrSchool string `gorm:"type:varchar(255)"`
	CompanyName        string `gorm:"type:varchar(255)"`

	CurrentGovernorateID *int
	CurrentCityID        *int

	ProfilePhotoURL string `gorm:"type:varchar(512)"`
	Bio             string `gorm:"type:text"`
	Instagram       string `gorm:"type:varchar(255)"`
	Linkedin        string `gorm:"type:varchar(255)"`

	// PersonalityTraits is stored as a JSON array in a text column.
	PersonalityTraits string `gorm:"type:text;not null;default:'[]'"`

	Smoking       string `gorm:"type:varchar(20);not null"`
	Pets          string `gorm:"type:varchar(20);not null"`
	SleepSchedule string `gorm:"type:varchar(20);not null"`
	Cleanliness   int    `gorm:"not null;default:3"`

	BudgetMin int `gorm:"not null"`
	BudgetMax int `gorm:"not null"`

	RoommateGender    string `gorm:"type:varchar(10);not null"`
	RoommateType      string `gorm:"type:varchar(20);not null"`
	PrefSmoking       string `gorm:"type:varchar(20);not null"`
	PrefPets          string `gorm:"type:varchar(20);not null"`
	PrefSleepSchedule string `gorm:"type:varchar(20);not null"`
	PrefCleanliness   string `gorm:"type:varchar(20);not null"`

	AdditionalNotes string `gorm:"type:text"`

	IsComplete bool `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User               *UserModel           `gorm:"foreignKey:UserID"`
	CurrentGovernorate *GovernorateModel    `gorm:"foreignKey:CurrentGovernorateID"`
	CurrentCity        *CityModel           `gorm:"foreignKey:CurrentCityID"`
	PreferredAreas     []PreferredAreaModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// PreferredAreaModel mirrors the 'preferred_areas' table. Rows are owned by a
// profile and replaced wholesale whenever the profile's area list changes.
type PreferredAreaModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	GovernorateID int       `gorm:"not null"`
	CityID        int       `gorm:"not null"`
	Street        string    `gorm:"type:varchar(255)"`

	Governorate *GovernorateModel `gorm:"foreignKey:GovernorateID"`
	City        *CityModel        `gorm:"foreignKey:CityID"`
}

// TableName explicitly sets the table name for GORM.
func (PreferredAreaModel) TableName() string {
	return "preferred_areas"
}

// MarshalTraits serializes a trait list into the JSON text stored in the
// personality_traits column. A nil or empty slice serializes to "[]".
func MarshalTraits(traits []string) (string, error) {
	if len(traits) == 0 {
		return "[]", nil
	}

	raw, err := json.Marshal(traits)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal personality traits")
	}

	return string(raw), nil
}

// UnmarshalTraits parses the personality_traits column back into a trait list.
// Empty or missing column values decode to an empty slice, never nil.
func UnmarshalTraits(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return []string{}, nil
	}

	var traits []string
	if err := json.Unmarshal([]byte(raw), &traits); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal personality traits")
	}
	if traits == nil {
		traits = []string{}
	}

	return traits, nil
}
