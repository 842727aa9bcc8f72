package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/nutrition"
)

// Ingredient is immutable reference data: per-100g nutrition facts managed
// through admin operations.
type Ingredient struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
	Name             string            `gorm:"size:255;not null;index" json:"name"`
	Slug             string            `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Aliases          JSONBStringArray  `gorm:"type:jsonb;not null;default:'[]'" json:"aliases"`
	Category         string            `gorm:"size:50;default:'other'" json:"category"`
	BaseUnit         string            `gorm:"size:10;default:'g'" json:"baseUnit"`
	NutritionPer100g nutrition.Profile `gorm:"type:jsonb;not null;default:'{}'" json:"nutritionPer100g"`
	ImageURL         string            `gorm:"size:512" json:"image"`
	Density          *float64          `json:"density"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
