package models

import "time"

// FoodEntry is one logged meal/snack item with its computed macros.
// Append-only; each insert also increments the matching DailyLog inside
// the same transaction.
type FoodEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Date      string    `gorm:"index;not null" json:"date"`
	Name      string    `gorm:"not null" json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Grams     float64   `json:"grams"`
	MealType  string    `json:"meal_type"` // breakfast | lunch | dinner | snack
	CreatedAt time.Time `json:"created_at"`
}
