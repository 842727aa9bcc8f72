package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeTargetsMifflinStJeor(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC) // exactly 30

	got := ComputeTargets(GoalProfile{
		HeightCM:      170,
		WeightKG:      70,
		DateOfBirth:   &dob,
		Gender:        "male",
		ActivityLevel: "sedentary",
		Goal:          "maintain",
	}, now)

	// bmr = 10*70 + 6.25*170 - 5*30 + 5 = 1617.5; tdee = 1617.5 * 1.2 = 1941
	assert.Equal(t, 1941, got.DailyCalories)
	assert.Equal(t, GoalMaintain, got.GoalType)
	// protein = max(70*1.4, 90) = 98, fat = max(70*0.8, 50) = 56
	assert.Equal(t, 98.0, got.Macros.Protein)
	assert.Equal(t, 56.0, got.Macros.Fat)
	// carbs = max((1941 - 98*4 - 56*9) / 4, 100) = round(1045/4) = 261
	assert.Equal(t, 261.0, got.Macros.Carbs)
	// fiber = max(1941/1000*14, 25) = round(27.174) = 27
	assert.Equal(t, 27.0, got.Macros.Fiber)
	assert.Equal(t, MicronutrientTargets["male"], got.Micronutrients)
	assert.Equal(t, 30, got.ComputedFrom.Age)
}

func TestComputeTargetsDefaultsWhenProfileEmpty(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := ComputeTargets(GoalProfile{}, now)

	// defaults: 170 cm, 70 kg, age 30, other (-78), sedentary, maintain
	// bmr = 700 + 1062.5 - 150 - 78 = 1534.5; tdee = 1841.4 -> 1841
	assert.Equal(t, 1841, got.DailyCalories)
	assert.Equal(t, "other", got.ComputedFrom.Gender)
	assert.Equal(t, MicronutrientTargets["other"], got.Micronutrients)
}

func TestComputeTargetsGoalDeltasAndClamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	base := GoalProfile{HeightCM: 170, WeightKG: 70, Gender: "male", ActivityLevel: "sedentary"}

	loss := base
	loss.Goal = "weightloss"
	gain := base
	gain.Goal = "weightgain"

	assert.Equal(t, 1941-500, ComputeTargets(loss, now).DailyCalories)
	assert.Equal(t, 1941+300, ComputeTargets(gain, now).DailyCalories)

	// a tiny profile still never drops below the 1200 kcal floor
	tiny := GoalProfile{HeightCM: 100, WeightKG: 1, Gender: "female", Goal: "weightloss"}
	assert.Equal(t, 1200, ComputeTargets(tiny, now).DailyCalories)
}

func TestComputeTargetsProteinPerKg(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	heavy := GoalProfile{HeightCM: 180, WeightKG: 100, Gender: "male", ActivityLevel: "moderate"}

	heavy.Goal = "weightloss"
	assert.Equal(t, 180.0, ComputeTargets(heavy, now).Macros.Protein)
	heavy.Goal = "weightgain"
	assert.Equal(t, 170.0, ComputeTargets(heavy, now).Macros.Protein)
	heavy.Goal = "maintain"
	assert.Equal(t, 140.0, ComputeTargets(heavy, now).Macros.Protein)
}

func TestNormalizeGoal(t *testing.T) {
	cases := map[string]string{
		"weightloss":  GoalWeightLoss,
		"Weight Loss": GoalWeightLoss,
		"fat-loss":    GoalWeightLoss,
		"muscle_gain": GoalWeightGain,
		"weightgain":  GoalWeightGain,
		"maintain":    GoalMaintain,
		"":            GoalMaintain,
		"bulk":        GoalMaintain,
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeGoal(input), "input %q", input)
	}
}

func TestAgeYears(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, AgeYears(nil, now))

	young := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 13, AgeYears(&young, now), "clamped to lower bound")

	old := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 90, AgeYears(&old, now), "clamped to upper bound")

	beforeBirthday := time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 34, AgeYears(&beforeBirthday, now))
	afterBirthday := time.Date(1990, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 35, AgeYears(&afterBirthday, now))
}

func TestActivityMultiplierFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	unknown := ComputeTargets(GoalProfile{HeightCM: 170, WeightKG: 70, Gender: "male", ActivityLevel: "couch"}, now)
	sedentary := ComputeTargets(GoalProfile{HeightCM: 170, WeightKG: 70, Gender: "male", ActivityLevel: "sedentary"}, now)
	assert.Equal(t, sedentary.DailyCalories, unknown.DailyCalories)
}
