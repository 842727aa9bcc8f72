package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/types"
)

func TestInventoryUpsertDeduplicates(t *testing.T) {
	db := setupDB(t)
	svc := NewInventoryService(db)
	user := createTestUser(t, db, "pantry1")
	ingredient := createTestIngredient(t, db, "tomato", riceProfile())

	first, err := svc.Upsert(user.ID, types.InventoryUpsertRequest{
		IngredientID: ingredient.ID.String(),
		Type:         "vegetable",
	})
	require.NoError(t, err)

	// Same (ingredient, type) pair updates in place.
	second, err := svc.Upsert(user.ID, types.InventoryUpsertRequest{
		IngredientID: ingredient.ID.String(),
		Type:         "vegetable",
		ImageURL:     "https://img.example.com/tomato.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "https://img.example.com/tomato.jpg", second.ImageURL)

	items, err := svc.List(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// A different type is a separate row.
	_, err = svc.Upsert(user.ID, types.InventoryUpsertRequest{
		IngredientID: ingredient.ID.String(),
		Type:         "snack",
	})
	require.NoError(t, err)
	items, err = svc.List(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestInventoryListByType(t *testing.T) {
	db := setupDB(t)
	svc := NewInventoryService(db)
	user := createTestUser(t, db, "pantry2")
	tomato := createTestIngredient(t, db, "tomato2", riceProfile())
	beef := createTestIngredient(t, db, "beef", chickenProfile())

	_, err := svc.Upsert(user.ID, types.InventoryUpsertRequest{IngredientID: tomato.ID.String(), Type: "vegetable"})
	require.NoError(t, err)
	_, err = svc.Upsert(user.ID, types.InventoryUpsertRequest{IngredientID: beef.ID.String(), Type: "meat"})
	require.NoError(t, err)

	meat, err := svc.List(user.ID, "meat")
	require.NoError(t, err)
	require.Len(t, meat, 1)
	assert.Equal(t, beef.ID, meat[0].IngredientID)

	_, err = svc.List(user.ID, "junk-food")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInventoryDefaultsToOther(t *testing.T) {
	db := setupDB(t)
	svc := NewInventoryService(db)
	user := createTestUser(t, db, "pantry3")
	ingredient := createTestIngredient(t, db, "mystery", riceProfile())

	item, err := svc.Upsert(user.ID, types.InventoryUpsertRequest{IngredientID: ingredient.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "other", item.Type)
}

func TestInventoryDeleteScopedToUser(t *testing.T) {
	db := setupDB(t)
	svc := NewInventoryService(db)
	owner := createTestUser(t, db, "pantry-owner")
	other := createTestUser(t, db, "pantry-other")
	ingredient := createTestIngredient(t, db, "salt", riceProfile())

	item, err := svc.Upsert(owner.ID, types.InventoryUpsertRequest{IngredientID: ingredient.ID.String(), Type: "spice"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(other.ID, item.ID), ErrNotFound)
	require.NoError(t, svc.Delete(owner.ID, item.ID))
	assert.ErrorIs(t, svc.Delete(owner.ID, item.ID), ErrNotFound)
}

func TestInventoryUnknownIngredient(t *testing.T) {
	db := setupDB(t)
	svc := NewInventoryService(db)
	user := createTestUser(t, db, "pantry4")

	_, err := svc.Upsert(user.ID, types.InventoryUpsertRequest{IngredientID: uuid.New().String()})
	assert.ErrorIs(t, err, ErrNotFound)
}
