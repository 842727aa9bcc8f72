package database

import (
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
)

// RunMigrations applies the schema via GORM auto-migration. The model set is
// the single source of truth for the schema.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.DailyIntake{},
		&models.MealLogEntry{},
		&models.NutritionGoals{},
		&models.MealSchedule{},
		&models.ScheduledMeal{},
		&models.Favourite{},
		&models.Rating{},
		&models.InventoryItem{},
	)
}
