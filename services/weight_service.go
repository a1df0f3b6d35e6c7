package services

import (
	"context"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

// List returns every weight entry, newest date first.
func (s *WeightService) List(ctx context.Context) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	if err := s.db.WithContext(ctx).
		Order("date desc").
		Find(&logs).Error; err != nil {
		return nil, storeErr("list weight logs", err)
	}
	if logs == nil {
		logs = []models.WeightLog{}
	}
	return logs, nil
}

// Save upserts the weight for a date. weight is a pointer so a missing or
// null body value is distinguishable from an explicit 0.
func (s *WeightService) Save(ctx context.Context, date string, weight *float64) (*models.WeightLog, error) {
	if date == "" || weight == nil {
		return nil, validationErr("Date and weight are required")
	}
	if *weight < 0 {
		return nil, validationErr("Weight must be a positive number")
	}

	log := models.WeightLog{Date: date, Weight: *weight}
	// Returning scans the stored row back so an overwrite keeps the row's
	// original created_at in the response.
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
		}, clause.Returning{}).
		Create(&log).Error; err != nil {
		return nil, storeErr("save weight log", err)
	}
	return &log, nil
}
