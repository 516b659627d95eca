package models

// WeightLog is an append-only weight history row. One row is written at
// profile save time with the current weight.
type WeightLog struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID string  `gorm:"index;not null" json:"user_id"`
	Date   string  `gorm:"not null" json:"date"`
	Weight float64 `gorm:"not null" json:"weight"` // kg
}
