package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduledMeal is one planned eating occasion on a schedule day.
type ScheduledMeal struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MealScheduleID uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	RecipeID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipeId"`
	MealSlot       string     `gorm:"size:10;not null" json:"mealSlot"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt    *time.Time `json:"completedAt"`
	Recipe         *Recipe    `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (m *ScheduledMeal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealSchedule is the per-(user, date) meal plan.
type MealSchedule struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_user_date" json:"userId"`
	Date      string          `gorm:"size:10;not null;uniqueIndex:idx_schedule_user_date" json:"date"`
	Meals     []ScheduledMeal `gorm:"foreignKey:MealScheduleID;constraint:OnDelete:CASCADE" json:"meals"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s *MealSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
