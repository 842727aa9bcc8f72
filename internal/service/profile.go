package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// ProfileService manages the per-user profile document.
type ProfileService struct {
	db    *gorm.DB
	goals *GoalsService
}

func NewProfileService(db *gorm.DB, goals *GoalsService) *ProfileService {
	return &ProfileService{db: db, goals: goals}
}

// GetOrCreate returns the user's profile, creating a blank one on first
// access.
func (s *ProfileService) GetOrCreate(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID, Goals: "maintain"}
		if err := s.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the provided fields, then resyncs auto goals since the
// driving attributes may have changed.
func (s *ProfileService) Update(userID uuid.UUID, req types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
		changed = true
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
		changed = true
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
		changed = true
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
		changed = true
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			profile.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				return nil, ErrInvalidInput
			}
			profile.DateOfBirth = &dob
		}
		changed = true
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
		changed = true
	}
	if req.HeightCM != nil {
		profile.HeightCM = *req.HeightCM
		changed = true
	}
	if req.WeightKG != nil {
		profile.WeightKG = *req.WeightKG
		changed = true
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
		changed = true
	}
	if req.Goals != nil {
		profile.Goals = *req.Goals
		changed = true
	}
	if req.DietaryPreferences != nil {
		profile.DietaryPreferences = models.JSONBStringArray(*req.DietaryPreferences)
		changed = true
	}
	if req.Allergies != nil {
		profile.Allergies = models.JSONBStringArray(*req.Allergies)
		changed = true
	}

	if !changed {
		return nil, ErrInvalidInput
	}

	if err := s.db.Save(profile).Error; err != nil {
		return nil, err
	}

	if err := s.goals.ResyncIfAuto(userID); err != nil {
		return nil, err
	}

	return profile, nil
}
