package config

import (
	"log"

	"github.com/r-4-e/SwasthAI/models"

	"gorm.io/gorm"
)

// Macro values per 100g of common Indian dishes.
var referenceFoods = []models.NutritionItem{
	// Breads
	{Name: "Roti (Whole Wheat)", CaloriesPer100g: 297, ProteinPer100g: 10.6, CarbsPer100g: 60.3, FatPer100g: 2.3, Category: "Breads"},
	{Name: "Naan (Plain)", CaloriesPer100g: 315, ProteinPer100g: 9.5, CarbsPer100g: 53.6, FatPer100g: 6.2, Category: "Breads"},
	{Name: "Paratha (Plain)", CaloriesPer100g: 330, ProteinPer100g: 8.5, CarbsPer100g: 50.2, FatPer100g: 10.5, Category: "Breads"},
	{Name: "Aloo Paratha", CaloriesPer100g: 240, ProteinPer100g: 6.5, CarbsPer100g: 35.0, FatPer100g: 8.5, Category: "Breads"},
	{Name: "Puri", CaloriesPer100g: 350, ProteinPer100g: 6.0, CarbsPer100g: 45.0, FatPer100g: 16.0, Category: "Breads"},
	{Name: "Bhatura", CaloriesPer100g: 300, ProteinPer100g: 8.0, CarbsPer100g: 48.0, FatPer100g: 9.0, Category: "Breads"},

	// Rice & Grains
	{Name: "White Rice (Cooked)", CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28.0, FatPer100g: 0.3, Category: "Rice"},
	{Name: "Brown Rice (Cooked)", CaloriesPer100g: 111, ProteinPer100g: 2.6, CarbsPer100g: 23.0, FatPer100g: 0.9, Category: "Rice"},
	{Name: "Jeera Rice", CaloriesPer100g: 150, ProteinPer100g: 3.0, CarbsPer100g: 30.0, FatPer100g: 2.5, Category: "Rice"},
	{Name: "Biryani (Chicken)", CaloriesPer100g: 160, ProteinPer100g: 8.0, CarbsPer100g: 20.0, FatPer100g: 6.0, Category: "Rice"},
	{Name: "Biryani (Veg)", CaloriesPer100g: 140, ProteinPer100g: 4.0, CarbsPer100g: 22.0, FatPer100g: 5.0, Category: "Rice"},
	{Name: "Khichdi", CaloriesPer100g: 120, ProteinPer100g: 4.5, CarbsPer100g: 18.0, FatPer100g: 3.5, Category: "Rice"},
	{Name: "Pulao (Veg)", CaloriesPer100g: 135, ProteinPer100g: 3.5, CarbsPer100g: 24.0, FatPer100g: 3.0, Category: "Rice"},
	{Name: "Curd Rice", CaloriesPer100g: 130, ProteinPer100g: 4.0, CarbsPer100g: 18.0, FatPer100g: 5.0, Category: "Rice"},

	// Dals & Legumes
	{Name: "Dal Tadka (Yellow)", CaloriesPer100g: 110, ProteinPer100g: 6.0, CarbsPer100g: 14.0, FatPer100g: 4.0, Category: "Dal"},
	{Name: "Dal Makhani", CaloriesPer100g: 160, ProteinPer100g: 6.5, CarbsPer100g: 16.0, FatPer100g: 9.0, Category: "Dal"},
	{Name: "Chana Masala", CaloriesPer100g: 130, ProteinPer100g: 7.0, CarbsPer100g: 18.0, FatPer100g: 4.5, Category: "Dal"},
	{Name: "Rajma Masala", CaloriesPer100g: 140, ProteinPer100g: 8.0, CarbsPer100g: 20.0, FatPer100g: 4.0, Category: "Dal"},
	{Name: "Sambar", CaloriesPer100g: 70, ProteinPer100g: 3.0, CarbsPer100g: 10.0, FatPer100g: 2.0, Category: "Dal"},

	// Curries (Veg)
	{Name: "Palak Paneer", CaloriesPer100g: 180, ProteinPer100g: 9.0, CarbsPer100g: 6.0, FatPer100g: 14.0, Category: "Curry"},
	{Name: "Paneer Butter Masala", CaloriesPer100g: 250, ProteinPer100g: 10.0, CarbsPer100g: 12.0, FatPer100g: 18.0, Category: "Curry"},
	{Name: "Matar Paneer", CaloriesPer100g: 160, ProteinPer100g: 9.0, CarbsPer100g: 10.0, FatPer100g: 10.0, Category: "Curry"},
	{Name: "Aloo Gobi", CaloriesPer100g: 90, ProteinPer100g: 2.5, CarbsPer100g: 12.0, FatPer100g: 4.0, Category: "Curry"},
	{Name: "Bhindi Masala", CaloriesPer100g: 100, ProteinPer100g: 3.0, CarbsPer100g: 8.0, FatPer100g: 6.0, Category: "Curry"},
	{Name: "Baingan Bharta", CaloriesPer100g: 80, ProteinPer100g: 2.0, CarbsPer100g: 10.0, FatPer100g: 4.0, Category: "Curry"},
	{Name: "Mix Veg Curry", CaloriesPer100g: 110, ProteinPer100g: 3.0, CarbsPer100g: 12.0, FatPer100g: 6.0, Category: "Curry"},

	// Curries (Non-Veg)
	{Name: "Butter Chicken", CaloriesPer100g: 240, ProteinPer100g: 14.0, CarbsPer100g: 8.0, FatPer100g: 16.0, Category: "Curry"},
	{Name: "Chicken Tikka Masala", CaloriesPer100g: 180, ProteinPer100g: 16.0, CarbsPer100g: 6.0, FatPer100g: 10.0, Category: "Curry"},
	{Name: "Chicken Curry (Home Style)", CaloriesPer100g: 150, ProteinPer100g: 18.0, CarbsPer100g: 5.0, FatPer100g: 7.0, Category: "Curry"},
	{Name: "Fish Curry", CaloriesPer100g: 140, ProteinPer100g: 15.0, CarbsPer100g: 4.0, FatPer100g: 7.0, Category: "Curry"},
	{Name: "Mutton Curry", CaloriesPer100g: 200, ProteinPer100g: 16.0, CarbsPer100g: 5.0, FatPer100g: 13.0, Category: "Curry"},
	{Name: "Egg Curry", CaloriesPer100g: 130, ProteinPer100g: 9.0, CarbsPer100g: 4.0, FatPer100g: 9.0, Category: "Curry"},

	// Snacks & Breakfast
	{Name: "Idli", CaloriesPer100g: 130, ProteinPer100g: 4.0, CarbsPer100g: 26.0, FatPer100g: 0.5, Category: "Snack"},
	{Name: "Dosa (Plain)", CaloriesPer100g: 170, ProteinPer100g: 4.0, CarbsPer100g: 28.0, FatPer100g: 4.0, Category: "Snack"},
	{Name: "Masala Dosa", CaloriesPer100g: 220, ProteinPer100g: 5.0, CarbsPer100g: 32.0, FatPer100g: 8.0, Category: "Snack"},
	{Name: "Vada (Medu)", CaloriesPer100g: 280, ProteinPer100g: 8.0, CarbsPer100g: 25.0, FatPer100g: 18.0, Category: "Snack"},
	{Name: "Upma", CaloriesPer100g: 160, ProteinPer100g: 4.0, CarbsPer100g: 25.0, FatPer100g: 5.0, Category: "Snack"},
	{Name: "Poha", CaloriesPer100g: 180, ProteinPer100g: 3.0, CarbsPer100g: 35.0, FatPer100g: 4.0, Category: "Snack"},
	{Name: "Samosa", CaloriesPer100g: 260, ProteinPer100g: 4.0, CarbsPer100g: 24.0, FatPer100g: 17.0, Category: "Snack"},
	{Name: "Pakora (Onion)", CaloriesPer100g: 280, ProteinPer100g: 5.0, CarbsPer100g: 22.0, FatPer100g: 20.0, Category: "Snack"},
	{Name: "Dhokla", CaloriesPer100g: 150, ProteinPer100g: 6.0, CarbsPer100g: 20.0, FatPer100g: 5.0, Category: "Snack"},
	{Name: "Pav Bhaji", CaloriesPer100g: 180, ProteinPer100g: 5.0, CarbsPer100g: 25.0, FatPer100g: 8.0, Category: "Snack"},

	// Sweets
	{Name: "Gulab Jamun", CaloriesPer100g: 350, ProteinPer100g: 4.0, CarbsPer100g: 45.0, FatPer100g: 15.0, Category: "Sweet"},
	{Name: "Rasgulla", CaloriesPer100g: 180, ProteinPer100g: 4.0, CarbsPer100g: 38.0, FatPer100g: 1.0, Category: "Sweet"},
	{Name: "Jalebi", CaloriesPer100g: 380, ProteinPer100g: 2.0, CarbsPer100g: 65.0, FatPer100g: 12.0, Category: "Sweet"},
	{Name: "Kheer", CaloriesPer100g: 160, ProteinPer100g: 5.0, CarbsPer100g: 22.0, FatPer100g: 6.0, Category: "Sweet"},
	{Name: "Halwa (Gajar)", CaloriesPer100g: 250, ProteinPer100g: 3.0, CarbsPer100g: 35.0, FatPer100g: 12.0, Category: "Sweet"},
}

// SeedNutritionDatabase populates the reference table on first startup.
// It only runs when the table is empty, so re-running is a no-op.
func SeedNutritionDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.NutritionItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding nutrition database with Indian foods...")
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range referenceFoods {
			item := referenceFoods[i]
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
