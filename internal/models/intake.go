package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/nutrition"
)

// MealLogEntry is one logged consumption of a recipe. The snapshot freezes
// nutrition values at recalculation time; GramsConsumed is the source of
// truth, Servings is display convenience (and the legacy backfill source for
// rows that predate gram tracking).
type MealLogEntry struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	DailyIntakeID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	MealType          string            `gorm:"size:10;not null;index" json:"mealType"`
	RecipeID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"recipeId"`
	GramsConsumed     float64           `json:"gramsConsumed"`
	Servings          float64           `gorm:"default:1" json:"servings"`
	ConsumedAt        time.Time         `json:"consumedAt"`
	NutritionSnapshot nutrition.Profile `gorm:"type:jsonb;not null;default:'{}'" json:"nutritionSnapshot"`
	Recipe            *Recipe           `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (e *MealLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// DailyIntake is the per-(user, calendar date) log of consumed meals, with
// derived totals re-summed whenever entries change.
type DailyIntake struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_intake_user_date" json:"userId"`
	Date      string            `gorm:"size:10;not null;uniqueIndex:idx_intake_user_date" json:"date"`
	Entries   []MealLogEntry    `gorm:"foreignKey:DailyIntakeID;constraint:OnDelete:CASCADE" json:"-"`
	Totals    nutrition.Profile `gorm:"type:jsonb;not null;default:'{}'" json:"totals"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (d *DailyIntake) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
