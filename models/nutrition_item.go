package models

// NutritionItem is one row of the static nutrition reference table:
// macro values per 100g for a known food name. Seeded once at startup,
// read-only thereafter.
type NutritionItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	CaloriesPer100g float64 `gorm:"column:calories_per_100g" json:"calories_per_100g"`
	ProteinPer100g  float64 `gorm:"column:protein_per_100g" json:"protein_per_100g"`
	CarbsPer100g    float64 `gorm:"column:carbs_per_100g" json:"carbs_per_100g"`
	FatPer100g      float64 `gorm:"column:fat_per_100g" json:"fat_per_100g"`
	FiberPer100g    float64 `gorm:"column:fiber_per_100g;default:0" json:"fiber_per_100g"`
	Category        string  `json:"category"` // e.g. "Breads", "Curry", "Snack"
}

func (NutritionItem) TableName() string { return "nutrition_database" }
