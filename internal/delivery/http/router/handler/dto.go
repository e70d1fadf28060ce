package handler

import (
	"time"

	"sakny/internal/domain/entity"
	"sakny/internal/usecase"

	"github.com/google/uuid"
)

// Wire DTOs. Entities are never serialized directly; the user mapping in
// particular keeps the password hash out of every response.

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type governorateResponse struct {
	ID     int    `json:"id"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

type cityResponse struct {
	ID     int    `json:"id"`
	NameEn string `json:"nameEn"`
	NameAr string `json:"nameAr"`
}

type preferredAreaResponse struct {
	GovernorateID int                  `json:"governorateId"`
	CityID        int                  `json:"cityId"`
	Street        string               `json:"street,omitempty"`
	Governorate   *governorateResponse `json:"governorate,omitempty"`
	City          *cityResponse        `json:"city,omitempty"`
}

type profileResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name,omitempty"`

	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Occupation         string `json:"occupation,omitempty"`
	UniversityOrSchool string `json:"universityOrSchool,omitempty"`
	CompanyName        string `json:"companyName,omitempty"`

	CurrentGovernorate *governorateResponse `json:"currentGovernorate,omitempty"`
	CurrentCity        *cityResponse        `json:"currentCity,omitempty"`

	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
	Linkedin        string `json:"linkedin,omitempty"`

	PersonalityTraits []string `json:"personalityTraits"`

	Smoking       string `json:"smoking"`
	Pets          string `json:"pets"`
	SleepSchedule string `json:"sleepSchedule"`
	Cleanliness   int    `json:"cleanliness"`

	BudgetMin int `json:"budgetMin"`
	BudgetMax int `json:"budgetMax"`

	RoommateGender    string `json:"roommateGender"`
	RoommateType      string `json:"roommateType"`
	PrefSmoking       string `json:"prefSmoking,omitempty"`
	PrefPets          string `json:"prefPets,omitempty"`
	PrefSleepSchedule string `json:"prefSleepSchedule,omitempty"`
	PrefCleanliness   string `json:"prefCleanliness,omitempty"`
	AdditionalNotes   string `json:"additionalNotes,omitempty"`

	PreferredAreas []preferredAreaResponse `json:"preferredAreas"`

	IsComplete bool      `json:"isComplete"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		AccessToken: output.AccessToken,
		User:        toUserResponse(output.User),
	}
}

func toGovernorateResponse(gov *entity.Governorate) *governorateResponse {
	if gov == nil {
		return nil
	}

	return &governorateResponse{ID: gov.ID, NameEn: gov.NameEn, NameAr: gov.NameAr}
}

func toCityResponse(city *entity.City) *cityResponse {
	if city == nil {
		return nil
	}

	return &cityResponse{ID: city.ID, NameEn: city.NameEn, NameAr: city.NameAr}
}

func toProfileResponse(profile *entity.Profile) profileResponse {
	areas := make([]preferredAreaResponse, 0, len(profile.PreferredAreas))
	for _, area := range profile.PreferredAreas {
		areas = append(areas, preferredAreaResponse{
			GovernorateID: area.GovernorateID,
			CityID:        area.CityID,
			Street:        area.Street,
			Governorate:   toGovernorateResponse(area.Governorate),
			City:          toCityResponse(area.City),
		})
	}

	traits := profile.PersonalityTraits
	if traits == nil {
		traits = []string{}
	}

	resp := profileResponse{
		ID:                 profile.ID,
		UserID:             profile.UserID,
		Age:                profile.Age,
		Gender:             string(profile.Gender),
		Occupation:         profile.Occupation,
		UniversityOrSchool: profile.UniversityOrSchool,
		CompanyName:        profile.CompanyName,
		CurrentGovernorate: toGovernorateResponse(profile.CurrentGovernorate),
		CurrentCity:        toCityResponse(profile.CurrentCity),
		ProfilePhotoURL:    profile.ProfilePhotoURL,
		Bio:                profile.Bio,
		Instagram:          profile.Instagram,
		Linkedin:           profile.Linkedin,
		PersonalityTraits:  traits,
		Smoking:            string(profile.Smoking),
		Pets:               string(profile.Pets),
		SleepSchedule:      string(profile.SleepSchedule),
		Cleanliness:        profile.Cleanliness,
		BudgetMin:          profile.BudgetMin,
		BudgetMax:          profile.BudgetMax,
		RoommateGender:     string(profile.RoommateGender),
		RoommateType:       string(profile.RoommateType),
		PrefSmoking:        string(profile.PrefSmoking),
		PrefPets:           string(profile.PrefPets),
		PrefSleepSchedule:  string(profile.PrefSleepSchedule),
		PrefCleanliness:    string(profile.PrefCleanliness),
		AdditionalNotes:    profile.AdditionalNotes,
		PreferredAreas:     areas,
		IsComplete:         profile.IsComplete,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
	if profile.User != nil {
		resp.Name = profile.User.Name
	}

	return resp
}
