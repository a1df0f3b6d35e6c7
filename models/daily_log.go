package models

import (
	"time"

	"github.com/lib/pq"
)

// DailyFoodLog stores the food ids picked for each meal on one date.
// Date is a YYYY-MM-DD string and the identity key; saves fully replace
// all three lists. Referenced ids may no longer exist in the catalog.
type DailyFoodLog struct {
	Date      string         `gorm:"primaryKey;type:varchar(10)" json:"date"`
	Breakfast pq.StringArray `gorm:"type:text[]" json:"breakfast"`
	Lunch     pq.StringArray `gorm:"type:text[]" json:"lunch"`
	Dinner    pq.StringArray `gorm:"type:text[]" json:"dinner"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ResolvedDailyLog is a DailyFoodLog with the id lists expanded into full
// catalog items. Ids missing from the catalog are dropped, not errors.
type ResolvedDailyLog struct {
	Date      string     `json:"date"`
	Breakfast []FoodItem `json:"breakfast"`
	Lunch     []FoodItem `json:"lunch"`
	Dinner    []FoodItem `json:"dinner"`
}
