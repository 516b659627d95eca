package models

// DailyLog is the per-user, per-date running total of nutrition and
// hydration. Created lazily on the first entry of the day and mutated by
// incrementing fields; totals are never recomputed from entries.
type DailyLog struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      string  `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date        string  `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"date"` // YYYY-MM-DD
	Calories    float64 `gorm:"default:0" json:"calories"`
	Protein     float64 `gorm:"default:0" json:"protein"`
	Carbs       float64 `gorm:"default:0" json:"carbs"`
	Fat         float64 `gorm:"default:0" json:"fat"`
	WaterIntake int     `gorm:"default:0" json:"water_intake"` // ml
}
