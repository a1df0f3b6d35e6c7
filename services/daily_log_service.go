package services

import (
	"context"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogService struct{ db *gorm.DB }

func NewDailyLogService(db *gorm.DB) *DailyLogService { return &DailyLogService{db: db} }

// GetByDate returns the resolved log for a date. A date with no record
// yields an empty placeholder, not an error.
func (s *DailyLogService) GetByDate(ctx context.Context, date string) (*models.ResolvedDailyLog, error) {
	if date == "" {
		return nil, validationErr("Date is required")
	}

	var logs []models.DailyFoodLog
	if err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Limit(1).
		Find(&logs).Error; err != nil {
		return nil, storeErr("load daily log", err)
	}
	if len(logs) == 0 {
		return emptyLog(date), nil
	}

	resolved, err := s.resolve(ctx, logs)
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// GetByRange returns resolved logs with date in [start, end], ascending.
// An inverted range simply matches nothing.
func (s *DailyLogService) GetByRange(ctx context.Context, start, end string) ([]models.ResolvedDailyLog, error) {
	if start == "" || end == "" {
		return nil, validationErr("Start and end dates are required")
	}

	var logs []models.DailyFoodLog
	if err := s.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date asc").
		Find(&logs).Error; err != nil {
		return nil, storeErr("load daily log range", err)
	}
	return s.resolve(ctx, logs)
}

// Save upserts the log for a date, replacing all three meal lists.
// Omitted lists become empty; duplicates within a list are kept as-is.
func (s *DailyLogService) Save(ctx context.Context, date string, breakfast, lunch, dinner []string) (*models.ResolvedDailyLog, error) {
	if date == "" {
		return nil, validationErr("Date is required")
	}
	if breakfast == nil {
		breakfast = []string{}
	}
	if lunch == nil {
		lunch = []string{}
	}
	if dinner == nil {
		dinner = []string{}
	}

	log := models.DailyFoodLog{
		Date:      date,
		Breakfast: pq.StringArray(breakfast),
		Lunch:     pq.StringArray(lunch),
		Dinner:    pq.StringArray(dinner),
	}
	// Returning scans the stored row back so the response carries the
	// original created_at on overwrite, like findOneAndUpdate with new:true.
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"breakfast", "lunch", "dinner", "updated_at"}),
		}, clause.Returning{}).
		Create(&log).Error; err != nil {
		return nil, storeErr("save daily log", err)
	}

	resolved, err := s.resolve(ctx, []models.DailyFoodLog{log})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// resolve expands id lists into catalog items with a single batched lookup.
// Ids that no longer exist in the catalog are dropped silently so that
// historical logs stay viewable after catalog edits.
func (s *DailyLogService) resolve(ctx context.Context, logs []models.DailyFoodLog) ([]models.ResolvedDailyLog, error) {
	idSet := map[string]struct{}{}
	for _, l := range logs {
		for _, list := range [][]string{l.Breakfast, l.Lunch, l.Dinner} {
			for _, id := range list {
				idSet[id] = struct{}{}
			}
		}
	}

	byID := map[string]models.FoodItem{}
	if len(idSet) > 0 {
		ids := make([]string, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		var foods []models.FoodItem
		if err := s.db.WithContext(ctx).
			Where("id IN ?", ids).
			Find(&foods).Error; err != nil {
			return nil, storeErr("resolve foods", err)
		}
		for _, f := range foods {
			byID[f.ID] = f
		}
	}

	pick := func(ids []string) []models.FoodItem {
		out := []models.FoodItem{}
		for _, id := range ids {
			if f, ok := byID[id]; ok {
				out = append(out, f)
			}
		}
		return out
	}

	resolved := make([]models.ResolvedDailyLog, 0, len(logs))
	for _, l := range logs {
		resolved = append(resolved, models.ResolvedDailyLog{
			Date:      l.Date,
			Breakfast: pick(l.Breakfast),
			Lunch:     pick(l.Lunch),
			Dinner:    pick(l.Dinner),
		})
	}
	return resolved, nil
}

func emptyLog(date string) *models.ResolvedDailyLog {
	return &models.ResolvedDailyLog{
		Date:      date,
		Breakfast: []models.FoodItem{},
		Lunch:     []models.FoodItem{},
		Dinner:    []models.FoodItem{},
	}
}
