package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Username     string         `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Role         string         `gorm:"size:10;not null;default:'user'" json:"role"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserProfile holds the mutable personal attributes behind nutrition goal
// computation, one per user.
type UserProfile struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName        string           `gorm:"size:100" json:"displayName"`
	Bio                string           `gorm:"size:300" json:"bio"`
	AvatarURL          string           `gorm:"size:255" json:"avatarUrl"`
	Phone              string           `gorm:"size:30" json:"phone"`
	DateOfBirth        *time.Time       `json:"dateOfBirth"`
	Gender             string           `gorm:"size:10" json:"gender"`
	Goals              string           `gorm:"size:20;default:'maintain'" json:"goals"`
	HeightCM           float64          `json:"height"`
	WeightKG           float64          `json:"weight"`
	ActivityLevel      string           `gorm:"size:20" json:"activityLevel"`
	DietaryPreferences JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryPreferences"`
	Allergies          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergies"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
