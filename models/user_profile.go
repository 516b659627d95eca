package models

// UserProfile holds each user's onboarding answers plus the daily targets
// computed from them. Saved wholesale (replace, not merge) on every update.
type UserProfile struct {
	UserID            string  `gorm:"primaryKey" json:"user_id"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	Height            float64 `json:"height"`         // cm
	CurrentWeight     float64 `json:"current_weight"` // kg
	GoalType          string  `json:"goal_type"`      // "lose" | "maintain" | "gain"
	GoalWeight        float64 `json:"goal_weight"`
	TargetDate        string  `json:"target_date"`
	ActivityLevel     string  `json:"activity_level"`
	DailyCalories     int     `json:"daily_calories"`
	ProteinTarget     int     `json:"protein_target"`
	CarbsTarget       int     `json:"carbs_target"`
	FatTarget         int     `json:"fat_target"`
	WaterTarget       int     `json:"water_target"` // ml
	PreferredLanguage string  `gorm:"default:en" json:"preferred_language"`
}

func (UserProfile) TableName() string { return "user_profiles" }
