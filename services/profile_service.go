package services

import (
	"errors"
	"time"

	"github.com/r-4-e/SwasthAI/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService handles user sync and the nutrition profile.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// SyncUser creates the local user row on the first verified call and
// reports whether a profile exists yet. The provider id is immutable.
func (s *ProfileService) SyncUser(id, email, name string) (*models.User, bool, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{ID: id, Email: email, Name: name}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, false, err
		}
	} else if err != nil {
		return nil, false, err
	}

	var count int64
	if err := s.db.Model(&models.UserProfile{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		return nil, false, err
	}
	return &user, count > 0, nil
}

// ProfileInput carries the full profile; saves are wholesale replaces.
type ProfileInput struct {
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	Height            float64 `json:"height"`
	CurrentWeight     float64 `json:"current_weight"`
	GoalType          string  `json:"goal_type"`
	GoalWeight        float64 `json:"goal_weight"`
	TargetDate        string  `json:"target_date"`
	ActivityLevel     string  `json:"activity_level"`
	DailyCalories     int     `json:"daily_calories"`
	ProteinTarget     int     `json:"protein_target"`
	CarbsTarget       int     `json:"carbs_target"`
	FatTarget         int     `json:"fat_target"`
	WaterTarget       int     `json:"water_target"`
	PreferredLanguage string  `json:"preferred_language"`
}

// SaveProfile replaces the user's profile row and seeds today's weight log
// with the current weight.
func (s *ProfileService) SaveProfile(userID string, in ProfileInput) error {
	lang := in.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	profile := models.UserProfile{
		UserID:            userID,
		Age:               in.Age,
		Gender:            in.Gender,
		Height:            in.Height,
		CurrentWeight:     in.CurrentWeight,
		GoalType:          in.GoalType,
		GoalWeight:        in.GoalWeight,
		TargetDate:        in.TargetDate,
		ActivityLevel:     in.ActivityLevel,
		DailyCalories:     in.DailyCalories,
		ProteinTarget:     in.ProteinTarget,
		CarbsTarget:       in.CarbsTarget,
		FatTarget:         in.FatTarget,
		WaterTarget:       in.WaterTarget,
		PreferredLanguage: lang,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
			return err
		}
		weight := models.WeightLog{
			UserID: userID,
			Date:   time.Now().Format("2006-01-02"),
			Weight: in.CurrentWeight,
		}
		return tx.Create(&weight).Error
	})
}

// GetProfile returns the profile, or nil when the user has none yet.
func (s *ProfileService) GetProfile(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
