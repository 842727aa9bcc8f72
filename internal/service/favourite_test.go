package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/models"
)

func TestToggleFavourite(t *testing.T) {
	db := setupDB(t)
	svc := NewFavouriteService(db)
	user := createTestUser(t, db, "favuser")
	recipe := createTestRecipe(t, db, "pancakes", riceProfile(), 100)

	favourited, err := svc.Toggle(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, favourited)

	ids, err := svc.IDs(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{recipe.ID}, ids)

	favourited, err = svc.Toggle(user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, favourited)

	ids, err = svc.IDs(user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleUnknownRecipe(t *testing.T) {
	db := setupDB(t)
	svc := NewFavouriteService(db)
	user := createTestUser(t, db, "favuser2")

	_, err := svc.Toggle(user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSkipsDeletedRecipes(t *testing.T) {
	db := setupDB(t)
	svc := NewFavouriteService(db)
	user := createTestUser(t, db, "favuser3")
	kept := createTestRecipe(t, db, "kept-fav", riceProfile(), 100)
	doomed := createTestRecipe(t, db, "doomed-fav", chickenProfile(), 100)

	_, err := svc.Toggle(user.ID, kept.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(user.ID, doomed.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Recipe{}, "id = ?", doomed.ID).Error)

	recipes, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, kept.ID, recipes[0].ID)
}

func TestRateRecipeRecomputesAverage(t *testing.T) {
	db := setupDB(t)
	svc := NewFavouriteService(db)
	alice := createTestUser(t, db, "alice-rater")
	bob := createTestUser(t, db, "bob-rater")
	recipe := createTestRecipe(t, db, "curry", chickenProfile(), 100)

	rated, err := svc.Rate(alice.ID, recipe.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5.0, rated.RatingAverage)
	assert.Equal(t, 1, rated.RatingCount)

	rated, err = svc.Rate(bob.ID, recipe.ID, 2, "")
	require.NoError(t, err)
	// (5 + 2) / 2 = 3.5
	assert.Equal(t, 3.5, rated.RatingAverage)
	assert.Equal(t, 2, rated.RatingCount)

	// Re-rating replaces, not appends.
	rated, err = svc.Rate(bob.ID, recipe.ID, 4, "")
	require.NoError(t, err)
	assert.Equal(t, 4.5, rated.RatingAverage)
	assert.Equal(t, 2, rated.RatingCount)

	rated, err = svc.Unrate(bob.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, rated.RatingAverage)
	assert.Equal(t, 1, rated.RatingCount)
}

func TestRateRejectsOutOfRangeScore(t *testing.T) {
	db := setupDB(t)
	svc := NewFavouriteService(db)
	user := createTestUser(t, db, "rater")
	recipe := createTestRecipe(t, db, "pie", riceProfile(), 100)

	_, err := svc.Rate(user.ID, recipe.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Rate(user.ID, recipe.ID, 6, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
