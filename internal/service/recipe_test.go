package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/types"
)

func TestCreateRecipeComputesNutrition(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	chicken := createTestIngredient(t, db, "chicken-breast", chickenProfile())
	rice := createTestIngredient(t, db, "white-rice", riceProfile())

	recipe, err := svc.Create(types.RecipeRequest{
		Name:     "Chicken and Rice",
		Servings: 2,
		Ingredients: []types.IngredientLineRequest{
			{IngredientID: chicken.ID.String(), Quantity: 50},
			{IngredientID: rice.ID.String(), Quantity: 50},
		},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "chicken-and-rice", recipe.Slug)
	// 50 g of each per 100 g of recipe: (165 + 130) / 2 = 147.5 kcal.
	assert.Equal(t, 147.5, recipe.NutritionPer100g.Calories)
	// (31 + 2.7) / 2 = 16.85, rounded to one decimal.
	assert.Equal(t, 16.9, recipe.NutritionPer100g.Macros.Protein)
	assert.Equal(t, 14.0, recipe.NutritionPer100g.Macros.Carbs)
}

func TestCreateRecipeSkipsUnresolvedIngredients(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	chicken := createTestIngredient(t, db, "chicken", chickenProfile())

	recipe, err := svc.Create(types.RecipeRequest{
		Name: "Mystery Bowl",
		Ingredients: []types.IngredientLineRequest{
			{IngredientID: chicken.ID.String(), Quantity: 50},
			{IngredientID: uuid.New().String(), Quantity: 50},
		},
	}, nil)
	require.NoError(t, err)

	// Only the resolved line contributes: 165 * 0.5 = 82.5 kcal.
	assert.Equal(t, 82.5, recipe.NutritionPer100g.Calories)
	assert.Equal(t, 15.5, recipe.NutritionPer100g.Macros.Protein)
	// Both lines are kept in the composition.
	assert.Len(t, recipe.Ingredients, 2)
}

func TestUpdateRecipeWithoutIngredientsKeepsProfile(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	chicken := createTestIngredient(t, db, "chicken", chickenProfile())
	recipe, err := svc.Create(types.RecipeRequest{
		Name: "Grilled Chicken",
		Ingredients: []types.IngredientLineRequest{
			{IngredientID: chicken.ID.String(), Quantity: 100},
		},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 165.0, recipe.NutritionPer100g.Calories)

	// A metadata-only update must not clear the derived profile.
	updated, err := svc.Update(recipe.ID, types.RecipeRequest{Description: "now with a description"})
	require.NoError(t, err)
	assert.Equal(t, 165.0, updated.NutritionPer100g.Calories)
	assert.Equal(t, "now with a description", updated.Description)
}

func TestRecipeSlugConflict(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	_, err := svc.Create(types.RecipeRequest{Name: "Pasta"}, nil)
	require.NoError(t, err)

	_, err = svc.Create(types.RecipeRequest{Name: "pasta"}, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetRecipeByIDOrSlug(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	created, err := svc.Create(types.RecipeRequest{Name: "Lentil Soup"}, nil)
	require.NoError(t, err)

	byID, err := svc.GetByIdentifier(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := svc.GetByIdentifier("lentil-soup")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = svc.GetByIdentifier("no-such-recipe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	created, err := svc.Create(types.RecipeRequest{Name: "Toast"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByIdentifier(created.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}

func TestListRecipesFilters(t *testing.T) {
	db := setupDB(t)
	svc := NewRecipeService(db)

	_, err := svc.Create(types.RecipeRequest{Name: "Oatmeal", MealType: "breakfast", Tags: []string{"quick"}}, nil)
	require.NoError(t, err)
	_, err = svc.Create(types.RecipeRequest{Name: "Steak", MealType: "dinner"}, nil)
	require.NoError(t, err)

	breakfast, err := svc.List(RecipeFilter{MealType: "breakfast"})
	require.NoError(t, err)
	require.Len(t, breakfast, 1)
	assert.Equal(t, "Oatmeal", breakfast[0].Name)

	byName, err := svc.List(RecipeFilter{Search: "stea"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Steak", byName[0].Name)

	all, err := svc.List(RecipeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
