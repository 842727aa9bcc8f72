// Package nutrition holds the pure calculation core: recipe nutrition
// aggregation, intake scaling, daily totals and goal targets. Nothing in this
// package touches storage; callers pass already-loaded records as plain data.
package nutrition

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

// Macros are the tracked macro-nutrients, in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
}

// Micronutrients are the tracked vitamins and minerals (mg, except
// vitamin A and D in µg).
type Micronutrients struct {
	Iron      float64 `json:"iron"`
	Calcium   float64 `json:"calcium"`
	Magnesium float64 `json:"magnesium"`
	Potassium float64 `json:"potassium"`
	Sodium    float64 `json:"sodium"`
	Zinc      float64 `json:"zinc"`
	VitaminA  float64 `json:"vitaminA"`
	VitaminC  float64 `json:"vitaminC"`
	VitaminD  float64 `json:"vitaminD"`
}

// Profile is a full nutrition fact sheet. The basis (per 100 g, or per
// consumed quantity) is decided by the owning record, never by this type.
type Profile struct {
	Calories       float64        `json:"calories"`
	Macros         Macros         `json:"macros"`
	Micronutrients Micronutrients `json:"micronutrients"`
}

// MicronutrientKeys lists every tracked micronutrient, in the JSON key form
// used across the API.
var MicronutrientKeys = []string{
	"iron", "calcium", "magnesium", "potassium", "sodium",
	"zinc", "vitaminA", "vitaminC", "vitaminD",
}

// MealTypes is the daily-intake bucket order used when recalculating totals.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack1", "snack2"}

// SlotOrder is the chronological eating-occasion order used by the meal
// schedule. It intentionally differs from MealTypes.
var SlotOrder = []string{"breakfast", "snack1", "lunch", "snack2", "dinner"}

// ValidMealType reports whether s names a daily-intake bucket.
func ValidMealType(s string) bool {
	for _, t := range MealTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Add accumulates other into p, field by field.
func (p *Profile) Add(other Profile) {
	p.Calories += other.Calories
	p.Macros.Protein += other.Macros.Protein
	p.Macros.Carbs += other.Macros.Carbs
	p.Macros.Fat += other.Macros.Fat
	p.Macros.Fiber += other.Macros.Fiber
	p.Micronutrients.Iron += other.Micronutrients.Iron
	p.Micronutrients.Calcium += other.Micronutrients.Calcium
	p.Micronutrients.Magnesium += other.Micronutrients.Magnesium
	p.Micronutrients.Potassium += other.Micronutrients.Potassium
	p.Micronutrients.Sodium += other.Micronutrients.Sodium
	p.Micronutrients.Zinc += other.Micronutrients.Zinc
	p.Micronutrients.VitaminA += other.Micronutrients.VitaminA
	p.Micronutrients.VitaminC += other.Micronutrients.VitaminC
	p.Micronutrients.VitaminD += other.Micronutrients.VitaminD
}

// scaleBy multiplies every nutrient field by factor. No rounding.
func (p Profile) scaleBy(factor float64) Profile {
	return Profile{
		Calories: p.Calories * factor,
		Macros: Macros{
			Protein: p.Macros.Protein * factor,
			Carbs:   p.Macros.Carbs * factor,
			Fat:     p.Macros.Fat * factor,
			Fiber:   p.Macros.Fiber * factor,
		},
		Micronutrients: Micronutrients{
			Iron:      p.Micronutrients.Iron * factor,
			Calcium:   p.Micronutrients.Calcium * factor,
			Magnesium: p.Micronutrients.Magnesium * factor,
			Potassium: p.Micronutrients.Potassium * factor,
			Sodium:    p.Micronutrients.Sodium * factor,
			Zinc:      p.Micronutrients.Zinc * factor,
			VitaminA:  p.Micronutrients.VitaminA * factor,
			VitaminC:  p.Micronutrients.VitaminC * factor,
			VitaminD:  p.Micronutrients.VitaminD * factor,
		},
	}
}

// rounded returns a copy with calories and macros rounded to 1 decimal place
// and micronutrients to 2, the fixed precision contract for stored per-100g
// profiles.
func (p Profile) rounded() Profile {
	return Profile{
		Calories: round1(p.Calories),
		Macros: Macros{
			Protein: round1(p.Macros.Protein),
			Carbs:   round1(p.Macros.Carbs),
			Fat:     round1(p.Macros.Fat),
			Fiber:   round1(p.Macros.Fiber),
		},
		Micronutrients: Micronutrients{
			Iron:      round2(p.Micronutrients.Iron),
			Calcium:   round2(p.Micronutrients.Calcium),
			Magnesium: round2(p.Micronutrients.Magnesium),
			Potassium: round2(p.Micronutrients.Potassium),
			Sodium:    round2(p.Micronutrients.Sodium),
			Zinc:      round2(p.Micronutrients.Zinc),
			VitaminA:  round2(p.Micronutrients.VitaminA),
			VitaminC:  round2(p.Micronutrients.VitaminC),
			VitaminD:  round2(p.Micronutrients.VitaminD),
		},
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Value implements driver.Valuer so a Profile can live in a JSONB column.
func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner. Missing keys default to zero, so legacy rows
// with partial documents load cleanly.
func (p *Profile) Scan(value interface{}) error {
	if value == nil {
		*p = Profile{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for nutrition profile", value)
	}

	return json.Unmarshal(bytes, p)
}
