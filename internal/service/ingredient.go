package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// IngredientService manages the per-100g nutrition reference data.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Search matches on name prefix/substring or alias membership.
func (s *IngredientService) Search(query string) ([]models.Ingredient, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	aliasColumn := "LOWER(aliases)"
	if s.db.Dialector.Name() == "postgres" {
		aliasColumn = "LOWER(aliases::text)"
	}
	var ingredients []models.Ingredient
	err := s.db.
		Where("LOWER(name) LIKE ? OR "+aliasColumn+" LIKE ?", like, like).
		Order("name").
		Limit(50).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByIdentifier resolves an ingredient by UUID or slug.
func (s *IngredientService) GetByIdentifier(identifier string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	var err error
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		err = s.db.First(&ingredient, "id = ?", id).Error
	} else {
		err = s.db.First(&ingredient, "slug = ?", strings.ToLower(identifier)).Error
	}
	if err != nil {
		return nil, ErrNotFound
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(req types.IngredientRequest) (*models.Ingredient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.NutritionPer100g == nil {
		return nil, fmt.Errorf("%w: nutritionPer100g is required", ErrInvalidInput)
	}

	ingredientSlug := strings.TrimSpace(req.Slug)
	if ingredientSlug == "" {
		ingredientSlug = slug.Make(name)
	}

	ingredient := models.Ingredient{
		Name:             name,
		Slug:             strings.ToLower(ingredientSlug),
		Aliases:          models.JSONBStringArray(lowercaseAll(req.Aliases)),
		Category:         defaultString(req.Category, "other"),
		BaseUnit:         defaultString(req.BaseUnit, "g"),
		NutritionPer100g: *req.NutritionPer100g,
		ImageURL:         req.ImageURL,
		Density:          req.Density,
	}

	if err := s.ensureSlugFree(ingredient.Slug, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(id uuid.UUID, req types.IngredientRequest) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		ingredient.Name = name
		if req.Slug == "" {
			ingredient.Slug = slug.Make(name)
		}
	}
	if req.Slug != "" {
		ingredient.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	}
	if req.Aliases != nil {
		ingredient.Aliases = models.JSONBStringArray(lowercaseAll(req.Aliases))
	}
	if req.Category != "" {
		ingredient.Category = req.Category
	}
	if req.BaseUnit != "" {
		ingredient.BaseUnit = req.BaseUnit
	}
	if req.NutritionPer100g != nil {
		ingredient.NutritionPer100g = *req.NutritionPer100g
	}
	if req.ImageURL != "" {
		ingredient.ImageURL = req.ImageURL
	}
	if req.Density != nil {
		ingredient.Density = req.Density
	}

	if err := s.ensureSlugFree(ingredient.Slug, ingredient.ID); err != nil {
		return nil, err
	}
	if err := s.db.Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *IngredientService) ensureSlugFree(ingredientSlug string, selfID uuid.UUID) error {
	var other models.Ingredient
	err := s.db.Where("slug = ? AND id <> ?", ingredientSlug, selfID).First(&other).Error
	if err == nil {
		return fmt.Errorf("%w: ingredient with this slug already exists", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func lowercaseAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.ToLower(strings.TrimSpace(v)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
