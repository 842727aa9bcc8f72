package nutrition

import (
	"math"
	"strings"
	"time"
)

// Goal types.
const (
	GoalWeightLoss = "weightloss"
	GoalWeightGain = "weightgain"
	GoalMaintain   = "maintain"
)

// ActivityMultipliers maps activity level to the TDEE multiplier used on top
// of the basal metabolic rate.
var ActivityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MicronutrientTargets holds fixed daily targets per gender. These are looked
// up, never computed from the profile.
var MicronutrientTargets = map[string]Micronutrients{
	"male": {
		Iron: 8, Calcium: 1000, Magnesium: 420, Potassium: 3400,
		Sodium: 2300, Zinc: 11, VitaminA: 900, VitaminC: 90, VitaminD: 15,
	},
	"female": {
		Iron: 18, Calcium: 1000, Magnesium: 320, Potassium: 2600,
		Sodium: 2300, Zinc: 8, VitaminA: 700, VitaminC: 75, VitaminD: 15,
	},
	"other": {
		Iron: 10, Calcium: 1000, Magnesium: 370, Potassium: 3000,
		Sodium: 2300, Zinc: 10, VitaminA: 800, VitaminC: 85, VitaminD: 15,
	},
}

// GoalProfile carries the profile attributes that drive target computation.
// Zero or invalid values fall back to documented defaults.
type GoalProfile struct {
	HeightCM      float64
	WeightKG      float64
	DateOfBirth   *time.Time
	Gender        string
	ActivityLevel string
	Goal          string
}

// ComputedFrom records the (normalized) inputs a target set was derived from.
type ComputedFrom struct {
	Age           int     `json:"age"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Gender        string  `json:"gender"`
	Goals         string  `json:"goals"`
}

// Targets is a full set of daily nutrition goals.
type Targets struct {
	GoalType       string
	DailyCalories  int
	Macros         Macros
	Micronutrients Micronutrients
	ComputedFrom   ComputedFrom
}

// NormalizeGoal maps free-form goal strings ("Weight Loss", "fat-loss",
// "muscle_gain", ...) to one of the three canonical goal types.
func NormalizeGoal(input string) string {
	compact := strings.ToLower(input)
	for _, r := range []string{" ", "_", "-"} {
		compact = strings.ReplaceAll(compact, r, "")
	}
	switch compact {
	case "weightloss", "fatloss":
		return GoalWeightLoss
	case "weightgain", "musclegain":
		return GoalWeightGain
	default:
		return GoalMaintain
	}
}

// AgeYears derives age from a date of birth, clamped to [13, 90].
// A missing or unusable date of birth yields the default of 30.
func AgeYears(dob *time.Time, now time.Time) int {
	if dob == nil || dob.IsZero() {
		return 30
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return clampInt(age, 13, 90)
}

// ComputeTargets derives recommended daily calorie, macro and micronutrient
// targets from a user profile using the Mifflin-St Jeor formula. Pure
// function: the caller decides whether (and whether it is allowed) to
// persist the result.
func ComputeTargets(profile GoalProfile, now time.Time) Targets {
	gender := profile.Gender
	if gender != "male" && gender != "female" && gender != "other" {
		gender = "other"
	}

	goalType := NormalizeGoal(profile.Goal)

	height := sanitize(profile.HeightCM)
	if height <= 0 {
		height = 170
	}
	weight := sanitize(profile.WeightKG)
	if weight <= 0 {
		weight = 70
	}
	age := AgeYears(profile.DateOfBirth, now)

	activity, ok := ActivityMultipliers[profile.ActivityLevel]
	if !ok {
		activity = ActivityMultipliers["sedentary"]
	}

	genderAdjustment := -78.0
	switch gender {
	case "male":
		genderAdjustment = 5
	case "female":
		genderAdjustment = -161
	}

	bmr := 10*weight + 6.25*height - 5*float64(age) + genderAdjustment
	tdee := bmr * activity

	calorieDelta := 0.0
	switch goalType {
	case GoalWeightLoss:
		calorieDelta = -500
	case GoalWeightGain:
		calorieDelta = 300
	}

	dailyCalories := int(math.Round(clamp(tdee+calorieDelta, 1200, 5000)))

	proteinPerKg := 1.4
	switch goalType {
	case GoalWeightLoss:
		proteinPerKg = 1.8
	case GoalWeightGain:
		proteinPerKg = 1.7
	}
	protein := math.Round(math.Max(weight*proteinPerKg, 90))
	fat := math.Round(math.Max(weight*0.8, 50))
	remaining := math.Max(float64(dailyCalories)-protein*4-fat*9, 0)
	carbs := math.Round(math.Max(remaining/4, 100))
	fiber := math.Round(math.Max(float64(dailyCalories)/1000*14, 25))

	return Targets{
		GoalType:       goalType,
		DailyCalories:  dailyCalories,
		Macros:         Macros{Protein: protein, Carbs: carbs, Fat: fat, Fiber: fiber},
		Micronutrients: MicronutrientTargets[gender],
		ComputedFrom: ComputedFrom{
			Age:           age,
			Height:        height,
			Weight:        weight,
			ActivityLevel: profile.ActivityLevel,
			Gender:        gender,
			Goals:         goalType,
		},
	}
}

func clamp(v, min, max float64) float64 {
	return math.Min(max, math.Max(min, v))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
