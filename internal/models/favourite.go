package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favourite marks a recipe as favourited by a user, one row per pair.
type Favourite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_recipe" json:"userId"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_recipe" json:"recipeId"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *Favourite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Rating is a user's 1-5 score for a recipe, upserted on re-rating.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_recipe" json:"userId"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_recipe" json:"recipeId"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment   string    `gorm:"size:500" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
