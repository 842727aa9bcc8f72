package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/nutrition"
)

// RecipeStep is one instruction in a recipe, stored inside a JSONB array.
type RecipeStep struct {
	StepNumber      int    `json:"stepNumber"`
	Instruction     string `json:"instruction"`
	DurationMinutes int    `json:"durationMinutes"`
	MediaURL        string `json:"mediaUrl,omitempty"`
}

// RecipeSteps stores the ordered instruction list in a JSONB column.
type RecipeSteps []RecipeStep

func (s RecipeSteps) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *RecipeSteps) Scan(value interface{}) error {
	if value == nil {
		*s = RecipeSteps{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// RecipeIngredient is one composition row: grams of an ingredient contained
// in 100 g of the finished recipe. The sum over a recipe's rows need not be
// 100 (water loss/gain in cooking).
type RecipeIngredient struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"-"`
	RecipeID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	IngredientID uuid.UUID   `gorm:"type:uuid;not null;index" json:"ingredientId"`
	GramsPer100g float64     `gorm:"not null" json:"quantity"`
	Unit         string      `gorm:"size:10;default:'g'" json:"unit"`
	Position     int         `gorm:"not null;default:0" json:"-"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

type Recipe struct {
	ID                   uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	DeletedAt            gorm.DeletedAt     `gorm:"index" json:"-"`
	Name                 string             `gorm:"size:255;not null;index" json:"name"`
	Slug                 string             `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description          string             `gorm:"type:text" json:"description"`
	Ingredients          []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps                RecipeSteps        `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	TotalDurationMinutes int                `json:"totalDurationMinutes"`
	Difficulty           string             `gorm:"size:10;default:'medium'" json:"difficulty"`
	Servings             int                `gorm:"default:1" json:"servings"`
	RatingAverage        float64            `json:"ratingAverage"`
	RatingCount          int                `json:"ratingCount"`
	Tags                 JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Cuisine              string             `gorm:"size:50" json:"cuisine"`
	MealType             string             `gorm:"size:20" json:"mealType"`
	NutritionPer100g     nutrition.Profile  `gorm:"type:jsonb;not null;default:'{}'" json:"nutritionPer100g"`
	ServingSizeGrams     float64            `json:"servingSizeGrams"`
	ImageURL             string             `gorm:"size:512" json:"image"`
	CreatedByID          *uuid.UUID         `gorm:"type:uuid" json:"createdBy"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
