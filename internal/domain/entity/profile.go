package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the roommate-seeker record, exactly one per user. The client
// assembles the six wizard steps and submits once; there is no persisted
// draft state, so a stored profile is always complete.
type Profile struct {
	ID     uuid.UUID
	UserID uuid.UUID
	User   *User // Resolved owning user, populated on fetch.

	Age                int
	Gender             Gender
	Occupation         string
	UniversityOrSchool string
	CompanyName        string

	// Current location is optional; when set, the city must belong to the
	// governorate. Resolved records are populated on fetch.
	CurrentGovernorateID *int
	CurrentCityID        *int
	CurrentGovernorate   *Governorate
	CurrentCity          *City

	ProfilePhotoURL string
	Bio             string
	Instagram       string
	Linkedin        string

	// PersonalityTraits keeps its submission order.
	PersonalityTraits []string

	Smoking       SmokingStatus
	Pets          PetStatus
	SleepSchedule SleepSchedule
	Cleanliness   int

	BudgetMin int
	BudgetMax int

	// RoommateGender mirrors the creator's own gender at creation time and
	// is stored independently thereafter; updates never re-derive it.
	RoommateGender Gender
	RoommateType   RoommateType

	PrefSmoking       SmokingPreference
	PrefPets          PetPreference
	PrefSleepSchedule SleepSchedulePreference
	PrefCleanliness   CleanlinessPreference
	AdditionalNotes   string

	// PreferredAreas is owned by value; the persistence layer keeps the
	// back reference as a non-owning ProfileID column only.
	PreferredAreas []PreferredArea

	IsComplete bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PreferredArea names a governorate/city pair the user is willing to live in,
// with an optional street. A profile carries between one and five areas and
// the (governorate, city) pair must not repeat within one profile.
type PreferredArea struct {
	ID            uuid.UUID
	GovernorateID int
	CityID        int
	Street        string

	// Resolved reference records, populated on fetch.
	Governorate *Governorate
	City        *City
}
