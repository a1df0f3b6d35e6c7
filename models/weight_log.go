package models

import "time"

// WeightLog is one measured body weight (kg) per date, upserted by date.
type WeightLog struct {
	Date      string    `gorm:"primaryKey;type:varchar(10)" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
