package services

import (
	"errors"

	"github.com/r-4-e/SwasthAI/models"

	"gorm.io/gorm"
)

// DashboardService is read-only aggregation for the daily dashboard.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardData is what the dashboard screen renders. Remaining-calories
// and progress math belong to the client, not this contract.
type DashboardData struct {
	Log           models.DailyLog    `json:"log"`
	Entries       []models.FoodEntry `json:"entries"`
	WeightHistory []models.WeightLog `json:"weightHistory"`
}

// Dashboard fetches the day's aggregate (zeroed when absent), that day's
// entries newest-first, and the most recent 7 weight logs.
func (s *DashboardService) Dashboard(userID, date string) (*DashboardData, error) {
	out := &DashboardData{
		Entries:       []models.FoodEntry{},
		WeightHistory: []models.WeightLog{},
	}

	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&out.Log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		out.Log = models.DailyLog{UserID: userID, Date: date}
	} else if err != nil {
		return nil, err
	}

	if err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&out.Entries).Error; err != nil {
		return nil, err
	}

	if err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(7).
		Find(&out.WeightHistory).Error; err != nil {
		return nil, err
	}

	return out, nil
}
