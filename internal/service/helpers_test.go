package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/testdb"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.Setup(t)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Name:         "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		Role:         models.RoleUser,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestIngredient(t *testing.T, db *gorm.DB, name string, per100g nutrition.Profile) *models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{
		Name:             name,
		Slug:             name,
		NutritionPer100g: per100g,
	}
	require.NoError(t, db.Create(&ingredient).Error)
	return &ingredient
}

// createTestRecipe stores a recipe with a known per-100g profile and serving
// size, bypassing ingredient aggregation.
func createTestRecipe(t *testing.T, db *gorm.DB, name string, per100g nutrition.Profile, servingSizeGrams float64) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		Name:             name,
		Slug:             name,
		Servings:         1,
		NutritionPer100g: per100g,
		ServingSizeGrams: servingSizeGrams,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func chickenProfile() nutrition.Profile {
	return nutrition.Profile{
		Calories: 165,
		Macros:   nutrition.Macros{Protein: 31, Carbs: 0, Fat: 3.6},
		Micronutrients: nutrition.Micronutrients{
			Iron: 1, Potassium: 256, Sodium: 74,
		},
	}
}

func riceProfile() nutrition.Profile {
	return nutrition.Profile{
		Calories: 130,
		Macros:   nutrition.Macros{Protein: 2.7, Carbs: 28, Fat: 0.3},
		Micronutrients: nutrition.Micronutrients{
			Iron: 0.2, Potassium: 35, Sodium: 1,
		},
	}
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
