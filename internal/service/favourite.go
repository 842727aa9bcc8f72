package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
)

// FavouriteService handles favourite toggling and recipe ratings. Rating a
// recipe re-derives the recipe's stored average and count.
type FavouriteService struct {
	db *gorm.DB
}

func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{db: db}
}

// List returns the user's favourited recipes. Favourites whose recipe has
// since been deleted are silently skipped.
func (s *FavouriteService) List(userID uuid.UUID) ([]models.Recipe, error) {
	var favourites []models.Favourite
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favourites).Error; err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(favourites))
	for _, fav := range favourites {
		var recipe models.Recipe
		err := s.db.Preload("Ingredients.Ingredient").First(&recipe, "id = ?", fav.RecipeID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// IDs returns just the favourited recipe ids, for cheap client-side checks.
func (s *FavouriteService) IDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Favourite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Toggle flips the favourite state for (user, recipe) and reports the new
// state.
func (s *FavouriteService) Toggle(userID, recipeID uuid.UUID) (favourited bool, err error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return false, ErrNotFound
	}

	var fav models.Favourite
	err = s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&fav).Error
	if err == nil {
		if err := s.db.Delete(&fav).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav = models.Favourite{UserID: userID, RecipeID: recipeID}
	if err := s.db.Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Rate records or replaces the user's score for a recipe, then recomputes
// the recipe's rating average (one decimal place) and count.
func (s *FavouriteService) Rate(userID, recipeID uuid.UUID, score int, comment string) (*models.Recipe, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrInvalidInput)
	}
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, ErrNotFound
	}

	var rating models.Rating
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&rating).Error
	switch {
	case err == nil:
		rating.Score = score
		rating.Comment = comment
		if err := s.db.Save(&rating).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = models.Rating{UserID: userID, RecipeID: recipeID, Score: score, Comment: comment}
		if err := s.db.Create(&rating).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.recomputeAverage(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Unrate removes the user's rating and re-derives the recipe aggregate.
func (s *FavouriteService) Unrate(userID, recipeID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, ErrNotFound
	}

	result := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.Rating{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	if err := s.recomputeAverage(&recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *FavouriteService) recomputeAverage(recipe *models.Recipe) error {
	var ratings []models.Rating
	if err := s.db.Where("recipe_id = ?", recipe.ID).Find(&ratings).Error; err != nil {
		return err
	}

	recipe.RatingCount = len(ratings)
	if recipe.RatingCount == 0 {
		recipe.RatingAverage = 0
	} else {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		recipe.RatingAverage = math.Round(float64(sum)/float64(recipe.RatingCount)*10) / 10
	}

	return s.db.Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"rating_average": recipe.RatingAverage,
			"rating_count":   recipe.RatingCount,
		}).Error
}
