package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem records that a user has an ingredient on hand, bucketed by a
// loose pantry category. One row per (user, ingredient, type).
type InventoryItem struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_inv_user_ing_type" json:"userId"`
	IngredientID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_inv_user_ing_type" json:"ingredientId"`
	Type         string      `gorm:"size:20;not null;default:'other';uniqueIndex:idx_inv_user_ing_type" json:"type"`
	ImageURL     string      `gorm:"size:512" json:"imageURL"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// InventoryTypes are the accepted pantry categories.
var InventoryTypes = []string{
	"meat", "fruit", "vegetable", "spice", "breakfast",
	"snack", "lunch", "dinner", "oil", "other",
}

// ValidInventoryType reports whether s is an accepted pantry category.
func ValidInventoryType(s string) bool {
	for _, t := range InventoryTypes {
		if t == s {
			return true
		}
	}
	return false
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
