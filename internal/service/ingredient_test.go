package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/types"
)

func TestIngredientCreateAndLookup(t *testing.T) {
	db := setupDB(t)
	svc := NewIngredientService(db)

	profile := chickenProfile()
	created, err := svc.Create(types.IngredientRequest{
		Name:             "Chicken Breast",
		Aliases:          []string{"Chicken Fillet", " poulet "},
		NutritionPer100g: &profile,
	})
	require.NoError(t, err)
	assert.Equal(t, "chicken-breast", created.Slug)
	assert.Equal(t, []string{"chicken fillet", "poulet"}, []string(created.Aliases))
	assert.Equal(t, "other", created.Category)
	assert.Equal(t, "g", created.BaseUnit)

	bySlug, err := svc.GetByIdentifier("chicken-breast")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	byID, err := svc.GetByIdentifier(created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)
}

func TestIngredientCreateValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewIngredientService(db)

	profile := riceProfile()
	_, err := svc.Create(types.IngredientRequest{NutritionPer100g: &profile})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(types.IngredientRequest{Name: "Rice"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIngredientSlugConflict(t *testing.T) {
	db := setupDB(t)
	svc := NewIngredientService(db)

	profile := riceProfile()
	_, err := svc.Create(types.IngredientRequest{Name: "Basmati Rice", NutritionPer100g: &profile})
	require.NoError(t, err)

	_, err = svc.Create(types.IngredientRequest{Name: "basmati rice", NutritionPer100g: &profile})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestIngredientSearch(t *testing.T) {
	db := setupDB(t)
	svc := NewIngredientService(db)

	chicken := chickenProfile()
	_, err := svc.Create(types.IngredientRequest{
		Name:             "Chicken Thigh",
		Aliases:          []string{"dark meat"},
		NutritionPer100g: &chicken,
	})
	require.NoError(t, err)
	rice := riceProfile()
	_, err = svc.Create(types.IngredientRequest{Name: "Jasmine Rice", NutritionPer100g: &rice})
	require.NoError(t, err)

	results, err := svc.Search("chick")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chicken Thigh", results[0].Name)

	// Alias substrings match too.
	results, err = svc.Search("dark meat")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search("zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIngredientUpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	svc := NewIngredientService(db)

	profile := riceProfile()
	created, err := svc.Create(types.IngredientRequest{Name: "Brown Rice", NutritionPer100g: &profile})
	require.NoError(t, err)

	richer := nutrition.Profile{Calories: 111, Macros: nutrition.Macros{Protein: 2.6, Carbs: 23, Fat: 0.9, Fiber: 1.8}}
	updated, err := svc.Update(created.ID, types.IngredientRequest{NutritionPer100g: &richer})
	require.NoError(t, err)
	assert.Equal(t, 111.0, updated.NutritionPer100g.Calories)
	assert.Equal(t, "Brown Rice", updated.Name)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByIdentifier(created.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}
