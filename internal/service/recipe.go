package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/logger"
	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// RecipeFilter narrows recipe listings.
type RecipeFilter struct {
	Search   string
	Tag      string
	MealType string
	Cuisine  string
}

// RecipeService manages recipes and keeps their derived per-100g nutrition
// profile in sync with the ingredient list.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func (s *RecipeService) List(filter RecipeFilter) ([]models.Recipe, error) {
	query := s.db.Preload("Ingredients.Ingredient")

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Tag != "" {
		like := "%" + strings.ToLower(filter.Tag) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where("LOWER(tags::text) LIKE ?", like)
		} else {
			query = query.Where("LOWER(tags) LIKE ?", like)
		}
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", strings.ToLower(filter.MealType))
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", strings.ToLower(filter.Cuisine))
	}

	var recipes []models.Recipe
	if err := query.Order("name").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByIdentifier resolves a recipe by UUID or slug, ingredient lines
// populated.
func (s *RecipeService) GetByIdentifier(identifier string) (*models.Recipe, error) {
	query := s.db.Preload("Ingredients.Ingredient")
	var recipe models.Recipe
	var err error
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		err = query.First(&recipe, "id = ?", id).Error
	} else {
		err = query.First(&recipe, "slug = ?", strings.ToLower(identifier)).Error
	}
	if err != nil {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

func (s *RecipeService) Create(req types.RecipeRequest, createdBy *uuid.UUID) (*models.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	recipeSlug := strings.TrimSpace(req.Slug)
	if recipeSlug == "" {
		recipeSlug = slug.Make(name)
	}
	if err := s.ensureSlugFree(recipeSlug, uuid.Nil); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:                 name,
		Slug:                 strings.ToLower(recipeSlug),
		Description:          req.Description,
		Steps:                req.Steps,
		TotalDurationMinutes: req.TotalDurationMinutes,
		Difficulty:           defaultString(req.Difficulty, "medium"),
		Servings:             req.Servings,
		Tags:                 models.JSONBStringArray(lowercaseAll(req.Tags)),
		Cuisine:              strings.ToLower(req.Cuisine),
		MealType:             strings.ToLower(req.MealType),
		ServingSizeGrams:     req.ServingSizeGrams,
		ImageURL:             req.ImageURL,
		CreatedByID:          createdBy,
	}
	if recipe.Servings == 0 {
		recipe.Servings = 1
	}

	lines, err := s.buildLines(req.Ingredients)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = lines
	s.refreshNutrition(&recipe)

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Update(id uuid.UUID, req types.RecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Ingredients").First(&recipe, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		recipe.Name = name
		if req.Slug == "" {
			recipe.Slug = slug.Make(name)
		}
	}
	if req.Slug != "" {
		recipe.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	}
	if err := s.ensureSlugFree(recipe.Slug, recipe.ID); err != nil {
		return nil, err
	}

	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.Steps != nil {
		recipe.Steps = req.Steps
	}
	if req.TotalDurationMinutes > 0 {
		recipe.TotalDurationMinutes = req.TotalDurationMinutes
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Tags != nil {
		recipe.Tags = models.JSONBStringArray(lowercaseAll(req.Tags))
	}
	if req.Cuisine != "" {
		recipe.Cuisine = strings.ToLower(req.Cuisine)
	}
	if req.MealType != "" {
		recipe.MealType = strings.ToLower(req.MealType)
	}
	if req.ServingSizeGrams > 0 {
		recipe.ServingSizeGrams = req.ServingSizeGrams
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}

	if req.Ingredients != nil {
		lines, err := s.buildLines(req.Ingredients)
		if err != nil {
			return nil, err
		}
		// Replace the composition wholesale; the derived profile follows.
		if err := s.db.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return nil, err
		}
		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		recipe.Ingredients = lines
		s.refreshNutrition(&recipe)
	}

	if err := s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// buildLines validates line quantities and resolves ingredient references.
// Unresolvable references are kept (they may resolve later) but carry no
// nutrition; aggregation skips them.
func (s *RecipeService) buildLines(reqs []types.IngredientLineRequest) ([]models.RecipeIngredient, error) {
	lines := make([]models.RecipeIngredient, 0, len(reqs))
	for i, lr := range reqs {
		ingredientID, err := uuid.Parse(lr.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid ingredient id %q", ErrInvalidInput, lr.IngredientID)
		}
		if lr.Quantity <= 0 {
			return nil, fmt.Errorf("%w: ingredient quantity must be positive", ErrInvalidInput)
		}
		line := models.RecipeIngredient{
			IngredientID: ingredientID,
			GramsPer100g: lr.Quantity,
			Unit:         defaultString(lr.Unit, "g"),
			Position:     i,
		}
		var ingredient models.Ingredient
		if err := s.db.First(&ingredient, "id = ?", ingredientID).Error; err == nil {
			line.Ingredient = &ingredient
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// refreshNutrition recomputes the recipe's per-100g profile from its lines.
// An empty line list leaves the stored profile untouched.
func (s *RecipeService) refreshNutrition(recipe *models.Recipe) {
	agg := make([]nutrition.IngredientLine, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		var per100g *nutrition.Profile
		if line.Ingredient != nil {
			per100g = &line.Ingredient.NutritionPer100g
		}
		agg = append(agg, nutrition.IngredientLine{
			Per100g:      per100g,
			GramsPer100g: line.GramsPer100g,
		})
	}

	profile, skipped := nutrition.ComputeRecipeNutrition(agg)
	if profile == nil {
		return
	}
	if skipped > 0 {
		logger.Warn("recipe aggregation skipped unresolved ingredients",
			zap.String("recipe", recipe.Name),
			zap.Int("skipped", skipped))
	}
	recipe.NutritionPer100g = *profile
}

func (s *RecipeService) ensureSlugFree(recipeSlug string, selfID uuid.UUID) error {
	var other models.Recipe
	err := s.db.Where("slug = ? AND id <> ?", strings.ToLower(recipeSlug), selfID).First(&other).Error
	if err == nil {
		return fmt.Errorf("%w: recipe with this slug already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
