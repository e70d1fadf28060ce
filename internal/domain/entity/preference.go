package entity

// Gender represents the user's own gender and the desired roommate gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// SmokingStatus describes the user's own smoking habits.
type SmokingStatus string

const (
	SmokingNonSmoker  SmokingStatus = "NON_SMOKER"
	SmokingOccasional SmokingStatus = "OCCASIONAL"
	SmokingRegular    SmokingStatus = "REGULAR"
)

// PetStatus describes whether the user lives with pets.
type PetStatus string

const (
	PetsNone PetStatus = "NO_PETS"
	PetsHas  PetStatus = "HAS_PETS"
)

// SleepSchedule describes the user's typical sleeping pattern.
type SleepSchedule string

const (
	SleepEarlyBird SleepSchedule = "EARLY_BIRD"
	SleepNightOwl  SleepSchedule = "NIGHT_OWL"
	SleepFlexible  SleepSchedule = "FLEXIBLE"
)

// RoommateType describes what kind of roommate the user is looking for.
type RoommateType string

const (
	RoommateStudent      RoommateType = "STUDENT"
	RoommateProfessional RoommateType = "PROFESSIONAL"
	RoommateAny          RoommateType = "ANY"
)

// SmokingPreference is the soft preference about a roommate's smoking habits.
type SmokingPreference string

const (
	PrefNoSmoking   SmokingPreference = "NO_SMOKING"
	PrefOutdoorOnly SmokingPreference = "OUTDOOR_ONLY"
	PrefSmokingOK   SmokingPreference = "SMOKING_OK"
)

// PetPreference is the soft preference about a roommate's pets.
type PetPreference string

const (
	PrefNoPets PetPreference = "NO_PETS"
	PrefPetsOK PetPreference = "PETS_OK"
)

// SleepSchedulePreference is the soft preference about a roommate's sleep schedule.
type SleepSchedulePreference string

const (
	PrefEarlyBird     SleepSchedulePreference = "EARLY_BIRD"
	PrefNightOwl      SleepSchedulePreference = "NIGHT_OWL"
	PrefSleepAnySched SleepSchedulePreference = "NO_PREFERENCE"
)

// CleanlinessPreference is the soft preference about a roommate's cleanliness.
type CleanlinessPreference string

const (
	PrefVeryClean CleanlinessPreference = "VERY_CLEAN"
	PrefModerate  CleanlinessPreference = "MODERATE"
	PrefRelaxed   CleanlinessPreference = "RELAXED"
)
