package types

import (
	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest accepts either username or email plus password.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthUser is the sanitized user shape returned by auth endpoints.
type AuthUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse carries the token pair and the sanitized user.
type LoginResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	User         AuthUser `json:"user"`
}

// UpdateUserRequest is the body for PUT /users/:id.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UpdateProfileRequest is the body for PUT /profile/me. Pointer fields
// distinguish "absent" from "set to zero value".
type UpdateProfileRequest struct {
	DisplayName        *string   `json:"displayName"`
	Bio                *string   `json:"bio"`
	AvatarURL          *string   `json:"avatarUrl"`
	Phone              *string   `json:"phone"`
	DateOfBirth        *string   `json:"dateOfBirth"`
	Gender             *string   `json:"gender"`
	HeightCM           *float64  `json:"height"`
	WeightKG           *float64  `json:"weight"`
	ActivityLevel      *string   `json:"activityLevel"`
	Goals              *string   `json:"goals"`
	DietaryPreferences *[]string `json:"dietaryPreferences"`
	Allergies          *[]string `json:"allergies"`
}

// IngredientLineRequest is one composition row in a recipe payload.
type IngredientLineRequest struct {
	IngredientID string  `json:"ingredient" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required"` // grams per 100 g of recipe
	Unit         string  `json:"unit"`
}

// RecipeRequest is the body for recipe create/update.
type RecipeRequest struct {
	Name                 string                  `json:"name"`
	Slug                 string                  `json:"slug"`
	Description          string                  `json:"description"`
	Ingredients          []IngredientLineRequest `json:"ingredients"`
	Steps                models.RecipeSteps      `json:"steps"`
	TotalDurationMinutes int                     `json:"totalDurationMinutes"`
	Difficulty           string                  `json:"difficulty"`
	Servings             int                     `json:"servings"`
	Tags                 []string                `json:"tags"`
	Cuisine              string                  `json:"cuisine"`
	MealType             string                  `json:"mealType"`
	ServingSizeGrams     float64                 `json:"servingSizeGrams"`
	ImageURL             string                  `json:"image"`
}

// IngredientRequest is the body for ingredient create/update.
type IngredientRequest struct {
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	Aliases          []string           `json:"aliases"`
	Category         string             `json:"category"`
	BaseUnit         string             `json:"baseUnit"`
	NutritionPer100g *nutrition.Profile `json:"nutritionPer100g"`
	ImageURL         string             `json:"image"`
	Density          *float64           `json:"density"`
}

// MealEntryRequest drives add/update/remove of intake meal entries.
// GramsConsumed wins over Servings/Quantity when positive.
type MealEntryRequest struct {
	Date          string  `json:"date"`
	MealType      string  `json:"mealType"`
	RecipeID      string  `json:"recipeId"`
	MealEntryID   string  `json:"mealEntryId"`
	GramsConsumed float64 `json:"gramsConsumed"`
	Servings      float64 `json:"servings"`
	Quantity      float64 `json:"quantity"` // legacy alias for servings
}

// UpdateGoalsRequest is the body for PUT /nutrition/goals. Any provided
// field becomes a manual override.
type UpdateGoalsRequest struct {
	DailyCalories  *int                `json:"dailyCalories"`
	GoalType       *string             `json:"goalType"`
	Macros         *map[string]float64 `json:"macros"`
	Micronutrients *map[string]float64 `json:"micronutrients"`
	Protein        *float64            `json:"protein"`
	Carbs          *float64            `json:"carbs"`
	Fat            *float64            `json:"fat"`
	Fiber          *float64            `json:"fiber"`
}

// ScheduleMealRequest adds a recipe to a schedule slot.
type ScheduleMealRequest struct {
	Date     string `json:"date"`
	RecipeID string `json:"recipeId" binding:"required"`
	MealSlot string `json:"mealSlot" binding:"required"`
}

// ScheduleEntryRequest addresses one scheduled meal by date + id.
type ScheduleEntryRequest struct {
	Date   string `json:"date" binding:"required"`
	MealID string `json:"mealId" binding:"required"`
}

// InventoryUpsertRequest is the body for inventory create/update. The
// ingredient id is required on create only.
type InventoryUpsertRequest struct {
	IngredientID string `json:"ingredientId"`
	Type         string `json:"type"`
	ImageURL     string `json:"imageURL"`
}

// ForgotPasswordRequest starts the OTP flow.
type ForgotPasswordRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// VerifyOTPRequest checks a 6-digit code.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest completes the flow with the verified reset token.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// RateRecipeRequest is the body for POST /favourites/:recipeId/rate.
type RateRecipeRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// IntakeResponse is a DailyIntake serialized with entries partitioned across
// meal-slot buckets.
type IntakeResponse struct {
	ID     string                           `json:"id"`
	UserID string                           `json:"userId"`
	Date   string                           `json:"date"`
	Meals  map[string][]models.MealLogEntry `json:"meals"`
	Totals nutrition.Profile                `json:"totals"`
}
