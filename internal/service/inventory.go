package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// InventoryService tracks what ingredients a user has on hand.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// List returns the user's inventory, optionally filtered to one category.
func (s *InventoryService) List(userID uuid.UUID, invType string) ([]models.InventoryItem, error) {
	query := s.db.Preload("Ingredient").Where("user_id = ?", userID)
	if invType != "" {
		invType = strings.ToLower(strings.TrimSpace(invType))
		if !models.ValidInventoryType(invType) {
			return nil, fmt.Errorf("%w: unknown inventory type %q", ErrInvalidInput, invType)
		}
		query = query.Where("type = ?", invType)
	}

	var items []models.InventoryItem
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *InventoryService) Get(userID, itemID uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.Preload("Ingredient").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &item, nil
}

// Upsert adds an ingredient to the user's inventory, or refreshes the
// existing row when the (ingredient, type) pair is already present.
func (s *InventoryService) Upsert(userID uuid.UUID, req types.InventoryUpsertRequest) (*models.InventoryItem, error) {
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ingredient id", ErrInvalidInput)
	}
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, "id = ?", ingredientID).Error; err != nil {
		return nil, ErrNotFound
	}

	invType := strings.ToLower(strings.TrimSpace(req.Type))
	if invType == "" {
		invType = "other"
	}
	if !models.ValidInventoryType(invType) {
		return nil, fmt.Errorf("%w: unknown inventory type %q", ErrInvalidInput, req.Type)
	}

	var item models.InventoryItem
	err = s.db.Where("user_id = ? AND ingredient_id = ? AND type = ?", userID, ingredientID, invType).
		First(&item).Error
	switch {
	case err == nil:
		if req.ImageURL != "" {
			item.ImageURL = req.ImageURL
		}
		if err := s.db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.InventoryItem{
			UserID:       userID,
			IngredientID: ingredientID,
			Type:         invType,
			ImageURL:     req.ImageURL,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	item.Ingredient = &ingredient
	return &item, nil
}

// Update changes an item's category or image.
func (s *InventoryService) Update(userID, itemID uuid.UUID, req types.InventoryUpsertRequest) (*models.InventoryItem, error) {
	item, err := s.Get(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Type != "" {
		invType := strings.ToLower(strings.TrimSpace(req.Type))
		if !models.ValidInventoryType(invType) {
			return nil, fmt.Errorf("%w: unknown inventory type %q", ErrInvalidInput, req.Type)
		}
		item.Type = invType
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Delete(userID, itemID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
