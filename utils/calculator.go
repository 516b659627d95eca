package utils

import (
	"errors"
	"math"
)

// PlanInput is what the onboarding wizard collects.
type PlanInput struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"` // "male" | "female"
	Height        float64 `json:"height"` // cm
	Weight        float64 `json:"weight"` // kg
	GoalType      string  `json:"goal_type"`
	ActivityLevel string  `json:"activity_level"`
}

// Plan holds the computed daily targets, all rounded to whole numbers.
type Plan struct {
	DailyCalories int `json:"daily_calories"`
	ProteinTarget int `json:"protein_target"` // g
	CarbsTarget   int `json:"carbs_target"`   // g
	FatTarget     int `json:"fat_target"`     // g
	WaterTarget   int `json:"water_target"`   // ml
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculatePlan derives daily calorie and macro targets from body stats.
// BMR via Mifflin-St Jeor, scaled by the activity factor, then shifted by
// the goal: lose −500 kcal at 2.0 g/kg protein, gain +400 kcal at 2.0 g/kg,
// maintain 1.6 g/kg with no offset. Fat is 25% of calories; carbs take the
// remainder; water is 35 ml/kg. Unknown activity levels fall back to
// sedentary.
func CalculatePlan(in PlanInput) (Plan, error) {
	if in.Weight <= 0 || in.Height <= 0 || in.Age <= 0 {
		return Plan{}, errors.New("age, height and weight must be positive")
	}

	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(in.Age)
	if in.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[in.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	tdee := bmr * mult

	dailyCalories := tdee
	proteinPerKg := 1.6
	switch in.GoalType {
	case "lose":
		dailyCalories -= 500
		proteinPerKg = 2.0
	case "gain":
		dailyCalories += 400
		proteinPerKg = 2.0
	}

	protein := math.Round(in.Weight * proteinPerKg)
	fat := math.Round(dailyCalories * 0.25 / 9)
	carbs := math.Round((dailyCalories - protein*4 - fat*9) / 4)

	return Plan{
		DailyCalories: int(math.Round(dailyCalories)),
		ProteinTarget: int(protein),
		CarbsTarget:   int(carbs),
		FatTarget:     int(fat),
		WaterTarget:   int(math.Round(in.Weight * 35)),
	}, nil
}
