package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

func TestProfileGetOrCreate(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db, NewGoalsService(db))
	user := createTestUser(t, db, "profuser")

	profile, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "maintain", profile.Goals)

	again, err := svc.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestProfileUpdatePatchesFields(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db, NewGoalsService(db))
	user := createTestUser(t, db, "profuser2")

	height := 180.0
	weight := 82.5
	gender := "male"
	dob := "1996-04-12"
	profile, err := svc.Update(user.ID, types.UpdateProfileRequest{
		HeightCM:    &height,
		WeightKG:    &weight,
		Gender:      &gender,
		DateOfBirth: &dob,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, profile.HeightCM)
	assert.Equal(t, 82.5, profile.WeightKG)
	require.NotNil(t, profile.DateOfBirth)
	assert.Equal(t, 1996, profile.DateOfBirth.Year())

	// Untouched fields survive a later partial update.
	bio := "lifts on tuesdays"
	profile, err = svc.Update(user.ID, types.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, 180.0, profile.HeightCM)
	assert.Equal(t, "lifts on tuesdays", profile.Bio)
}

func TestProfileUpdateRejectsEmptyPatch(t *testing.T) {
	db := setupDB(t)
	svc := NewProfileService(db, NewGoalsService(db))
	user := createTestUser(t, db, "profuser3")

	_, err := svc.Update(user.ID, types.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := "12/04/1996"
	_, err = svc.Update(user.ID, types.UpdateProfileRequest{DateOfBirth: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProfileUpdateResyncsAutoGoals(t *testing.T) {
	db := setupDB(t)
	goals := NewGoalsService(db)
	svc := NewProfileService(db, goals)
	user := createTestUser(t, db, "profuser4")

	// Seed an auto goals record at the defaults.
	first, err := goals.SyncAuto(user.ID)
	require.NoError(t, err)

	weight := 100.0
	_, err = svc.Update(user.ID, types.UpdateProfileRequest{WeightKG: &weight})
	require.NoError(t, err)

	var updated models.NutritionGoals
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&updated).Error)
	assert.NotEqual(t, first.DailyCalories, updated.DailyCalories)
	assert.Equal(t, models.GoalSourceAuto, updated.Source)
	// protein = max(100 * 1.4, 90) = 140
	assert.Equal(t, 140.0, updated.Macros.Protein)
}
