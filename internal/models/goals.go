package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/nutrition"
)

// Goal record sources. Auto goals track profile changes; manual goals are
// frozen once the user edits them directly.
const (
	GoalSourceAuto   = "auto"
	GoalSourceManual = "manual"
)

// GoalMacros stores daily macro targets in a JSONB column.
type GoalMacros nutrition.Macros

func (m GoalMacros) Value() (driver.Value, error) { return json.Marshal(m) }

func (m *GoalMacros) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// GoalMicronutrients stores daily micronutrient targets in a JSONB column.
type GoalMicronutrients nutrition.Micronutrients

func (m GoalMicronutrients) Value() (driver.Value, error) { return json.Marshal(m) }

func (m *GoalMicronutrients) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// ComputedFromProfile records the profile attributes a goal set was derived
// from, stored in a JSONB column.
type ComputedFromProfile nutrition.ComputedFrom

func (c ComputedFromProfile) Value() (driver.Value, error) { return json.Marshal(c) }

func (c *ComputedFromProfile) Scan(value interface{}) error {
	return scanJSON(value, c)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
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
	return json.Unmarshal(bytes, dest)
}

// NutritionGoals is the per-user daily target set. Created lazily on first
// access; source flips auto -> manual irreversibly on the first direct edit.
type NutritionGoals struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	GoalType            string              `gorm:"size:20;default:'maintain'" json:"goalType"`
	DailyCalories       int                 `gorm:"default:2000" json:"dailyCalories"`
	Macros              GoalMacros          `gorm:"type:jsonb;not null;default:'{}'" json:"macros"`
	Micronutrients      GoalMicronutrients  `gorm:"type:jsonb;not null;default:'{}'" json:"micronutrients"`
	Source              string              `gorm:"size:10;default:'auto'" json:"source"`
	ComputedFromProfile ComputedFromProfile `gorm:"type:jsonb;not null;default:'{}'" json:"computedFromProfile"`
	LastComputedAt      time.Time           `json:"lastComputedAt"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

func (g *NutritionGoals) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
