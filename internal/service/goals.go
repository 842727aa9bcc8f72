package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// GoalsService maintains per-user daily nutrition targets.
type GoalsService struct {
	db *gorm.DB
}

func NewGoalsService(db *gorm.DB) *GoalsService {
	return &GoalsService{db: db}
}

// SyncAuto recomputes targets from the user's profile and persists them,
// creating the goals record on first access. A manual record is returned
// untouched: user overrides are never clobbered by recomputation.
func (s *GoalsService) SyncAuto(userID uuid.UUID) (*models.NutritionGoals, error) {
	var existing models.NutritionGoals
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if found && existing.Source == models.GoalSourceManual {
		return &existing, nil
	}

	var profile models.UserProfile
	_ = s.db.Where("user_id = ?", userID).First(&profile).Error

	computed := nutrition.ComputeTargets(nutrition.GoalProfile{
		HeightCM:      profile.HeightCM,
		WeightKG:      profile.WeightKG,
		DateOfBirth:   profile.DateOfBirth,
		Gender:        profile.Gender,
		ActivityLevel: profile.ActivityLevel,
		Goal:          profile.Goals,
	}, time.Now())

	goals := existing
	goals.UserID = userID
	goals.GoalType = computed.GoalType
	goals.DailyCalories = computed.DailyCalories
	goals.Macros = models.GoalMacros(computed.Macros)
	goals.Micronutrients = models.GoalMicronutrients(computed.Micronutrients)
	goals.Source = models.GoalSourceAuto
	goals.ComputedFromProfile = models.ComputedFromProfile(computed.ComputedFrom)
	goals.LastComputedAt = time.Now()

	if err := s.db.Save(&goals).Error; err != nil {
		return nil, err
	}
	return &goals, nil
}

// UpdateManual applies user-supplied overrides on top of the current record
// and freezes it: source flips to manual and stays there until the record is
// deleted.
func (s *GoalsService) UpdateManual(userID uuid.UUID, req types.UpdateGoalsRequest) (*models.NutritionGoals, error) {
	goals, err := s.SyncAuto(userID)
	if err != nil {
		return nil, err
	}

	if req.DailyCalories != nil {
		goals.DailyCalories = *req.DailyCalories
	}
	if req.GoalType != nil {
		goals.GoalType = nutrition.NormalizeGoal(*req.GoalType)
	}

	macros := nutrition.Macros(goals.Macros)
	if req.Macros != nil {
		applyMacroPatch(&macros, *req.Macros)
	}
	if req.Protein != nil {
		macros.Protein = *req.Protein
	}
	if req.Carbs != nil {
		macros.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		macros.Fat = *req.Fat
	}
	if req.Fiber != nil {
		macros.Fiber = *req.Fiber
	}
	goals.Macros = models.GoalMacros(macros)

	if req.Micronutrients != nil {
		micros := nutrition.Micronutrients(goals.Micronutrients)
		applyMicroPatch(&micros, *req.Micronutrients)
		goals.Micronutrients = models.GoalMicronutrients(micros)
	}

	goals.Source = models.GoalSourceManual
	goals.LastComputedAt = time.Now()

	if err := s.db.Save(goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// ResyncIfAuto refreshes targets after a profile change, unless the user has
// taken manual control.
func (s *GoalsService) ResyncIfAuto(userID uuid.UUID) error {
	var existing models.NutritionGoals
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No record yet: it will be computed lazily on first goals read.
		return nil
	}
	if err != nil {
		return err
	}
	if existing.Source == models.GoalSourceManual {
		return nil
	}
	_, err = s.SyncAuto(userID)
	return err
}

func applyMacroPatch(m *nutrition.Macros, patch map[string]float64) {
	for key, value := range patch {
		switch key {
		case "protein":
			m.Protein = value
		case "carbs":
			m.Carbs = value
		case "fat":
			m.Fat = value
		case "fiber":
			m.Fiber = value
		}
	}
}

func applyMicroPatch(m *nutrition.Micronutrients, patch map[string]float64) {
	for key, value := range patch {
		switch key {
		case "iron":
			m.Iron = value
		case "calcium":
			m.Calcium = value
		case "magnesium":
			m.Magnesium = value
		case "potassium":
			m.Potassium = value
		case "sodium":
			m.Sodium = value
		case "zinc":
			m.Zinc = value
		case "vitaminA":
			m.VitaminA = value
		case "vitaminC":
			m.VitaminC = value
		case "vitaminD":
			m.VitaminD = value
		}
	}
}
