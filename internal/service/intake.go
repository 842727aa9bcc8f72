package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/logger"
	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/types"
)

const dateLayout = "2006-01-02"

// IntakeService tracks what a user ate on a given day. Entry snapshots and
// day totals are derived data: every mutation ends with a full recalculation
// against the recipes as they exist now.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

// GetDay returns the intake log for a date, partitioned by meal type. Days
// with no log yet come back empty rather than as an error.
func (s *IntakeService) GetDay(userID uuid.UUID, date string) (*types.IntakeResponse, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	// Reads create the day document on first access and re-derive every
	// snapshot from current recipe data, so edits to a recipe show up the
	// next time the day is fetched.
	intake, err := s.ensureDay(userID, date)
	if err != nil {
		return nil, err
	}
	return s.recalculateAndRespond(intake.ID)
}

// AddEntry logs a meal. Either gramsConsumed or servings may be given;
// servings convert through the recipe's serving size.
func (s *IntakeService) AddEntry(userID uuid.UUID, req types.MealEntryRequest) (*types.IntakeResponse, error) {
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	mealType := strings.ToLower(strings.TrimSpace(req.MealType))
	if !nutrition.ValidMealType(mealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, req.MealType)
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}

	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, ErrNotFound
	}

	intake, err := s.ensureDay(userID, date)
	if err != nil {
		return nil, err
	}

	servings := req.Servings
	if servings == 0 {
		servings = req.Quantity
	}
	grams := nutrition.ResolveGrams(req.GramsConsumed, servings, recipe.ServingSizeGrams)

	entry := models.MealLogEntry{
		DailyIntakeID: intake.ID,
		MealType:      mealType,
		RecipeID:      recipeID,
		GramsConsumed: grams,
		ConsumedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}

	return s.recalculateAndRespond(intake.ID)
}

// UpdateEntry changes the consumed quantity (and optionally meal type) of an
// existing log entry.
func (s *IntakeService) UpdateEntry(userID uuid.UUID, req types.MealEntryRequest) (*types.IntakeResponse, error) {
	entryID, err := uuid.Parse(req.MealEntryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid meal entry id", ErrInvalidInput)
	}

	entry, intake, err := s.findOwnedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.MealType != "" {
		mealType := strings.ToLower(strings.TrimSpace(req.MealType))
		if !nutrition.ValidMealType(mealType) {
			return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, req.MealType)
		}
		entry.MealType = mealType
	}

	if req.GramsConsumed > 0 {
		entry.GramsConsumed = req.GramsConsumed
	} else {
		servings := req.Servings
		if servings == 0 {
			servings = req.Quantity
		}
		if servings > 0 {
			var recipe models.Recipe
			sizeGrams := 0.0
			if err := s.db.First(&recipe, "id = ?", entry.RecipeID).Error; err == nil {
				sizeGrams = recipe.ServingSizeGrams
			}
			entry.GramsConsumed = nutrition.ResolveGrams(0, servings, sizeGrams)
		}
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return s.recalculateAndRespond(intake.ID)
}

// RemoveEntry deletes a log entry and re-sums the day.
func (s *IntakeService) RemoveEntry(userID uuid.UUID, entryID uuid.UUID) (*types.IntakeResponse, error) {
	entry, intake, err := s.findOwnedEntry(userID, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return nil, err
	}
	return s.recalculateAndRespond(intake.ID)
}

// LogRecipe appends one entry for a recipe without an explicit quantity
// request, defaulting to a single serving. Meal schedule completion uses it.
func (s *IntakeService) LogRecipe(userID uuid.UUID, date, mealType string, recipeID uuid.UUID) error {
	_, err := s.AddEntry(userID, types.MealEntryRequest{
		Date:     date,
		MealType: mealType,
		RecipeID: recipeID.String(),
		Servings: 1,
	})
	return err
}

// RemoveLastForRecipe drops the most recent entry matching (date, mealType,
// recipe), the inverse of LogRecipe for schedule un-completion. Missing
// entries are not an error.
func (s *IntakeService) RemoveLastForRecipe(userID uuid.UUID, date, mealType string, recipeID uuid.UUID) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}

	var intake models.DailyIntake
	err = s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var entry models.MealLogEntry
	err = s.db.Where("daily_intake_id = ? AND meal_type = ? AND recipe_id = ?",
		intake.ID, strings.ToLower(mealType), recipeID).
		Order("consumed_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return err
	}
	_, err = s.recalculateAndRespond(intake.ID)
	return err
}

// Recalculate rebuilds every entry snapshot from the recipes' current
// nutrition and re-sums the day total. It walks entries meal type by meal
// type in canonical order; entries whose recipe no longer exists keep their
// stored snapshot but contribute nothing to the total.
func (s *IntakeService) Recalculate(intakeID uuid.UUID) (*models.DailyIntake, error) {
	var intake models.DailyIntake
	if err := s.db.Preload("Entries").First(&intake, "id = ?", intakeID).Error; err != nil {
		return nil, err
	}

	byMeal := make(map[string][]*models.MealLogEntry, len(nutrition.MealTypes))
	for i := range intake.Entries {
		e := &intake.Entries[i]
		byMeal[e.MealType] = append(byMeal[e.MealType], e)
	}

	var totals nutrition.Profile
	for _, mealType := range nutrition.MealTypes {
		for _, entry := range byMeal[mealType] {
			var recipe models.Recipe
			if err := s.db.First(&recipe, "id = ?", entry.RecipeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					logger.Warn("intake entry references missing recipe",
						zap.String("entry", entry.ID.String()),
						zap.String("recipe", entry.RecipeID.String()))
					continue
				}
				return nil, err
			}

			// Rows logged before gram tracking carry only a serving count;
			// backfill grams once and persist them.
			if entry.GramsConsumed <= 0 {
				entry.GramsConsumed = nutrition.ResolveGrams(0, entry.Servings, recipe.ServingSizeGrams)
			}

			entry.NutritionSnapshot = nutrition.Scale(recipe.NutritionPer100g, entry.GramsConsumed)
			entry.Servings = nutrition.ResolveServings(entry.GramsConsumed, recipe.ServingSizeGrams)
			if err := s.db.Save(entry).Error; err != nil {
				return nil, err
			}

			totals.Add(entry.NutritionSnapshot)
		}
	}

	intake.Totals = totals
	if err := s.db.Model(&models.DailyIntake{}).
		Where("id = ?", intake.ID).
		Update("totals", totals).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}

func (s *IntakeService) ensureDay(userID uuid.UUID, date string) (*models.DailyIntake, error) {
	var intake models.DailyIntake
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&intake).Error
	if err == nil {
		return &intake, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	intake = models.DailyIntake{UserID: userID, Date: date}
	if err := s.db.Create(&intake).Error; err != nil {
		return nil, err
	}
	return &intake, nil
}

func (s *IntakeService) findOwnedEntry(userID, entryID uuid.UUID) (*models.MealLogEntry, *models.DailyIntake, error) {
	var entry models.MealLogEntry
	if err := s.db.First(&entry, "id = ?", entryID).Error; err != nil {
		return nil, nil, ErrNotFound
	}

	var intake models.DailyIntake
	if err := s.db.First(&intake, "id = ?", entry.DailyIntakeID).Error; err != nil {
		return nil, nil, ErrNotFound
	}
	if intake.UserID != userID {
		return nil, nil, ErrForbidden
	}
	return &entry, &intake, nil
}

func (s *IntakeService) recalculateAndRespond(intakeID uuid.UUID) (*types.IntakeResponse, error) {
	intake, err := s.Recalculate(intakeID)
	if err != nil {
		return nil, err
	}
	return intakeResponse(intake), nil
}

func intakeResponse(intake *models.DailyIntake) *types.IntakeResponse {
	resp := emptyIntakeResponse(intake.Date)
	resp.ID = intake.ID.String()
	resp.UserID = intake.UserID.String()
	resp.Totals = intake.Totals
	for _, entry := range intake.Entries {
		resp.Meals[entry.MealType] = append(resp.Meals[entry.MealType], entry)
	}
	return resp
}

func emptyIntakeResponse(date string) *types.IntakeResponse {
	meals := make(map[string][]models.MealLogEntry, len(nutrition.MealTypes))
	for _, mealType := range nutrition.MealTypes {
		meals[mealType] = []models.MealLogEntry{}
	}
	return &types.IntakeResponse{Date: date, Meals: meals}
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().UTC().Format(dateLayout), nil
	}
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return parsed.Format(dateLayout), nil
}
