package services

import (
	"errors"

	"github.com/r-4-e/SwasthAI/models"

	"gorm.io/gorm"
)

// MinWaterAmount is the smallest accepted water increment in ml.
const MinWaterAmount = 50

var (
	ErrWaterTooSmall = errors.New("water amount must be at least 50ml")
	ErrBadOil        = errors.New("oil multiplier must be one of 1.0, 1.1, 1.2, 1.3")
	ErrNoItems       = errors.New("no items to save")
	ErrBadMealType   = errors.New("invalid meal type")
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// LogService writes food entries and water intake, keeping the daily
// aggregate in step inside the same transaction as every insert.
type LogService struct {
	db *gorm.DB
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// FoodInput is a single manually-logged or pre-computed food entry.
type FoodInput struct {
	Date     string  `json:"date" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Grams    float64 `json:"grams"`
	MealType string  `json:"meal_type"`
}

// LogFood appends one food entry and increments (or creates) the day's
// aggregate, atomically. Returns the updated daily log.
func (s *LogService) LogFood(userID string, in FoodInput) (*models.DailyLog, error) {
	mealType := in.MealType
	if mealType == "" {
		mealType = "snack"
	}
	if !mealTypes[mealType] {
		return nil, ErrBadMealType
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry := models.FoodEntry{
			UserID:   userID,
			Date:     in.Date,
			Name:     in.Name,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
			Grams:    in.Grams,
			MealType: mealType,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return applyLogDelta(tx, userID, in.Date, in.Calories, in.Protein, in.Carbs, in.Fat, 0)
	})
	if err != nil {
		return nil, err
	}
	return s.currentLog(userID, in.Date)
}

// LogWater adds a water increment to the day's aggregate. Amounts below
// 50ml are rejected; the client only ever sends 50ml steps.
func (s *LogService) LogWater(userID, date string, amount int) (*models.DailyLog, error) {
	if amount < MinWaterAmount {
		return nil, ErrWaterTooSmall
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyLogDelta(tx, userID, date, 0, 0, 0, 0, amount)
	})
	if err != nil {
		return nil, err
	}
	return s.currentLog(userID, date)
}

// SavedItemInput is one finalized item from a meal analysis, carrying the
// user's portion and added-fat adjustments.
type SavedItemInput struct {
	Name            string   `json:"name" binding:"required"`
	EstimatedGrams  float64  `json:"estimated_grams"`
	EditedGrams     *float64 `json:"edited_grams"`
	OilMultiplier   float64  `json:"oil_multiplier"`
	CaloriesPer100g float64  `json:"calories_per_100g"`
	ProteinPer100g  float64  `json:"protein_per_100g"`
	CarbsPer100g    float64  `json:"carbs_per_100g"`
	FatPer100g      float64  `json:"fat_per_100g"`
	MealType        string   `json:"meal_type"`
}

// SaveMealItems commits a whole analyzed meal in one transaction: every
// entry plus its aggregate delta, all or nothing. A failure on any item
// rolls back the lot.
func (s *LogService) SaveMealItems(userID, date string, items []SavedItemInput) (*models.DailyLog, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range items {
			oil := in.OilMultiplier
			if oil == 0 {
				oil = 1.0
			}
			if !ValidOilMultiplier(oil) {
				return ErrBadOil
			}

			grams := in.EstimatedGrams
			if in.EditedGrams != nil {
				grams = *in.EditedGrams
			}
			if grams < 0 {
				grams = 0
			}

			mealType := in.MealType
			if mealType == "" {
				mealType = "snack"
			}
			if !mealTypes[mealType] {
				return ErrBadMealType
			}

			totals := ComputeMacros(MealItem{
				CaloriesPer100g: in.CaloriesPer100g,
				ProteinPer100g:  in.ProteinPer100g,
				CarbsPer100g:    in.CarbsPer100g,
				FatPer100g:      in.FatPer100g,
			}, grams, oil)

			entry := models.FoodEntry{
				UserID:   userID,
				Date:     date,
				Name:     in.Name,
				Calories: totals.Calories,
				Protein:  totals.Protein,
				Carbs:    totals.Carbs,
				Fat:      totals.Fat,
				Grams:    grams,
				MealType: mealType,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if err := applyLogDelta(tx, userID, date, totals.Calories, totals.Protein, totals.Carbs, totals.Fat, 0); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.currentLog(userID, date)
}

// applyLogDelta increments the (user, date) daily log, creating it lazily
// on the first entry of the day.
func applyLogDelta(tx *gorm.DB, userID, date string, cal, prot, carbs, fat float64, water int) error {
	var row models.DailyLog
	err := tx.Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.DailyLog{
			UserID:      userID,
			Date:        date,
			Calories:    cal,
			Protein:     prot,
			Carbs:       carbs,
			Fat:         fat,
			WaterIntake: water,
		}
		return tx.Create(&row).Error
	}
	if err != nil {
		return err
	}

	return tx.Model(&models.DailyLog{}).Where("id = ?", row.ID).Updates(map[string]interface{}{
		"calories":     gorm.Expr("calories + ?", cal),
		"protein":      gorm.Expr("protein + ?", prot),
		"carbs":        gorm.Expr("carbs + ?", carbs),
		"fat":          gorm.Expr("fat + ?", fat),
		"water_intake": gorm.Expr("water_intake + ?", water),
	}).Error
}

func (s *LogService) currentLog(userID, date string) (*models.DailyLog, error) {
	var row models.DailyLog
	if err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
