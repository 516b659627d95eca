package services

import (
	"errors"
	"testing"

	"github.com/r-4-e/SwasthAI/models"
)

func TestLogFoodCreatesAndIncrementsDailyLog(t *testing.T) {
	svc := NewLogService(openTestDB(t))

	log1, err := svc.LogFood("user-1", FoodInput{
		Date: "2025-01-15", Name: "Roti", Calories: 297, Protein: 11, Carbs: 51, Fat: 7.5, Grams: 100, MealType: "lunch",
	})
	if err != nil {
		t.Fatalf("first LogFood: %v", err)
	}
	if log1.Calories != 297 || log1.Protein != 11 {
		t.Errorf("first log = %+v, want calories 297 protein 11", log1)
	}

	log2, err := svc.LogFood("user-1", FoodInput{
		Date: "2025-01-15", Name: "Dal Tadka", Calories: 116, Protein: 6.2, Carbs: 15, Fat: 3.5, Grams: 100, MealType: "lunch",
	})
	if err != nil {
		t.Fatalf("second LogFood: %v", err)
	}
	if log2.Calories != 413 {
		t.Errorf("calories = %v, want 413", log2.Calories)
	}
	if log2.Carbs != 66 {
		t.Errorf("carbs = %v, want 66", log2.Carbs)
	}
}

func TestLogFoodOrderIndependentTotals(t *testing.T) {
	a := FoodInput{Date: "2025-01-15", Name: "A", Calories: 100, Protein: 5, Carbs: 10, Fat: 2}
	b := FoodInput{Date: "2025-01-15", Name: "B", Calories: 250, Protein: 12, Carbs: 30, Fat: 8}

	first := NewLogService(openTestDB(t))
	if _, err := first.LogFood("u", a); err != nil {
		t.Fatal(err)
	}
	ab, err := first.LogFood("u", b)
	if err != nil {
		t.Fatal(err)
	}

	second := NewLogService(openTestDB(t))
	if _, err := second.LogFood("u", b); err != nil {
		t.Fatal(err)
	}
	ba, err := second.LogFood("u", a)
	if err != nil {
		t.Fatal(err)
	}

	if ab.Calories != ba.Calories || ab.Protein != ba.Protein || ab.Carbs != ba.Carbs || ab.Fat != ba.Fat {
		t.Errorf("totals depend on entry order: %+v vs %+v", ab, ba)
	}
}

func TestLogFoodDefaultsToSnack(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	if _, err := svc.LogFood("u", FoodInput{Date: "2025-01-15", Name: "Banana", Calories: 89}); err != nil {
		t.Fatalf("LogFood: %v", err)
	}

	var entry models.FoodEntry
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.MealType != "snack" {
		t.Errorf("meal type = %q, want snack", entry.MealType)
	}
}

func TestLogFoodRejectsUnknownMealType(t *testing.T) {
	svc := NewLogService(openTestDB(t))

	_, err := svc.LogFood("u", FoodInput{Date: "2025-01-15", Name: "Banana", MealType: "brunch"})
	if !errors.Is(err, ErrBadMealType) {
		t.Fatalf("err = %v, want ErrBadMealType", err)
	}
}

func TestLogWater(t *testing.T) {
	svc := NewLogService(openTestDB(t))

	if _, err := svc.LogWater("u", "2025-01-15", 25); !errors.Is(err, ErrWaterTooSmall) {
		t.Fatalf("err = %v, want ErrWaterTooSmall", err)
	}

	row, err := svc.LogWater("u", "2025-01-15", 250)
	if err != nil {
		t.Fatalf("LogWater: %v", err)
	}
	if row.WaterIntake != 250 {
		t.Errorf("water = %d, want 250", row.WaterIntake)
	}

	row, err = svc.LogWater("u", "2025-01-15", 50)
	if err != nil {
		t.Fatalf("LogWater increment: %v", err)
	}
	if row.WaterIntake != 300 {
		t.Errorf("water = %d, want 300", row.WaterIntake)
	}
	if row.Calories != 0 {
		t.Errorf("water logging must not touch calories, got %v", row.Calories)
	}
}

func TestSaveMealItemsComputesMacros(t *testing.T) {
	svc := NewLogService(openTestDB(t))

	edited := 150.0
	row, err := svc.SaveMealItems("u", "2025-01-15", []SavedItemInput{{
		Name:            "Paneer Butter Masala",
		EstimatedGrams:  200,
		EditedGrams:     &edited,
		OilMultiplier:   1.2,
		CaloriesPer100g: 200,
		ProteinPer100g:  10,
		CarbsPer100g:    20,
		FatPer100g:      10,
		MealType:        "dinner",
	}})
	if err != nil {
		t.Fatalf("SaveMealItems: %v", err)
	}

	// 150g at 1.2 oil: calories 200*1.5*1.2=360, fat 10*1.5*1.2=18,
	// protein and carbs unscaled by oil.
	if row.Calories != 360 || row.Fat != 18 || row.Protein != 15 || row.Carbs != 30 {
		t.Errorf("daily log = %+v, want 360/15/30/18", row)
	}
}

func TestSaveMealItemsAllOrNothing(t *testing.T) {
	db := openTestDB(t)
	svc := NewLogService(db)

	_, err := svc.SaveMealItems("u", "2025-01-15", []SavedItemInput{
		{Name: "Good Item", EstimatedGrams: 100, CaloriesPer100g: 100},
		{Name: "Bad Item", EstimatedGrams: 100, OilMultiplier: 1.5, CaloriesPer100g: 100},
	})
	if !errors.Is(err, ErrBadOil) {
		t.Fatalf("err = %v, want ErrBadOil", err)
	}

	var entries int64
	if err := db.Model(&models.FoodEntry{}).Count(&entries).Error; err != nil {
		t.Fatal(err)
	}
	if entries != 0 {
		t.Errorf("%d entries persisted after rollback, want 0", entries)
	}
	var logs int64
	if err := db.Model(&models.DailyLog{}).Count(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if logs != 0 {
		t.Errorf("%d daily logs persisted after rollback, want 0", logs)
	}
}

func TestSaveMealItemsEmpty(t *testing.T) {
	svc := NewLogService(openTestDB(t))

	if _, err := svc.SaveMealItems("u", "2025-01-15", nil); !errors.Is(err, ErrNoItems) {
		t.Fatalf("err = %v, want ErrNoItems", err)
	}
}
