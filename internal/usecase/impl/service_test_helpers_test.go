package impl

import (
	"io"
	"log/slog"

	"sakny/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storedProfile builds a fully populated profile row as the repository would
// return it.
func storedProfile(userID uuid.UUID) *entity.Profile {
	governorateID := 1
	cityID := 10

	return &entity.Profile{
		ID:                   uuid.New(),
		UserID:               userID,
		Age:                  24,
		Gender:               entity.GenderFemale,
		Occupation:           "STUDENT",
		UniversityOrSchool:   "Cairo University",
		CurrentGovernorateID: &governorateID,
		CurrentCityID:        &cityID,
		Bio:                  "old bio",
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
			{ID: uuid.New(), GovernorateID: 1, CityID: 10, Street: "Main St"},
		},
		IsComplete: true,
	}
}
