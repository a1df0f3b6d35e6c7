package services

import (
	"context"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodMasterData is the built-in catalog, upserted by the dev seed route.
var FoodMasterData = []models.FoodItem{
	{ID: "bf_bread_2", Name: "Bread", PortionLabel: "2 slices", Grams: 59, MealType: "breakfast"},
	{ID: "bf_peanut_butter", Name: "Peanut Butter", PortionLabel: "1 tablespoon", Grams: 17, MealType: "breakfast"},
	{ID: "bf_boiled_egg", Name: "Boiled Egg", PortionLabel: "1 whole", Grams: 50, MealType: "breakfast"},
	{ID: "bf_omelette", Name: "Omelette", PortionLabel: "1 egg", Grams: 50, MealType: "breakfast"},
	{ID: "bf_roti_2", Name: "Roti", PortionLabel: "2 medium", Grams: 80, MealType: "breakfast"},
	{ID: "bf_dal", Name: "Dal", PortionLabel: "1 bowl", Grams: 150, MealType: "breakfast"},
	{ID: "bf_sabji", Name: "Sabji (Vegetables)", PortionLabel: "1 bowl", Grams: 150, MealType: "breakfast"},
	{ID: "ln_rice_1cup", Name: "Cooked Rice", PortionLabel: "1 cup", Grams: 170, MealType: "lunch"},
	{ID: "ln_mixed_rice", Name: "Mixed Rice", PortionLabel: "1 medium bowl", Grams: 350, MealType: "lunch"},
	{ID: "ln_khichdi", Name: "Khichdi", PortionLabel: "1 medium bowl", Grams: 300, MealType: "lunch"},
	{ID: "ln_dal", Name: "Dal", PortionLabel: "1 bowl", Grams: 150, MealType: "lunch"},
	{ID: "ln_sabji", Name: "Sabji (Vegetables)", PortionLabel: "1–2 bowls", Grams: 200, MealType: "lunch"},
	{ID: "ln_fish_fry", Name: "Fish Fry", PortionLabel: "1 piece", Grams: 100, MealType: "lunch"},
	{ID: "ln_fish_curry", Name: "Fish Curry", PortionLabel: "1 piece with gravy", Grams: 120, MealType: "lunch"},
	{ID: "ln_chicken_curry", Name: "Chicken Curry", PortionLabel: "1 medium bowl", Grams: 150, MealType: "lunch"},
	{ID: "ln_chicken_fry", Name: "Chicken Fry", PortionLabel: "3–4 small pieces", Grams: 120, MealType: "lunch"},
	{ID: "ln_egg_curry", Name: "Egg Curry", PortionLabel: "2 eggs with gravy", Grams: 120, MealType: "lunch"},
	{ID: "ln_boiled_egg", Name: "Boiled Egg", PortionLabel: "1 whole", Grams: 50, MealType: "lunch"},
	{ID: "ln_paneer_sabji", Name: "Paneer Sabji", PortionLabel: "1 medium bowl", Grams: 100, MealType: "lunch"},
	{ID: "ln_curd", Name: "Curd (Doi)", PortionLabel: "1 small bowl", Grams: 100, MealType: "lunch"},
	{ID: "ln_salad", Name: "Salad", PortionLabel: "1 bowl", Grams: 150, MealType: "lunch"},
	{ID: "dn_roti_3", Name: "Roti", PortionLabel: "3 medium", Grams: 120, MealType: "dinner"},
	{ID: "dn_dal", Name: "Dal", PortionLabel: "1 bowl", Grams: 150, MealType: "dinner"},
	{ID: "dn_sabji", Name: "Sabji (Vegetables)", PortionLabel: "1–2 bowls", Grams: 200, MealType: "dinner"},
	{ID: "dn_fish_curry", Name: "Fish Curry", PortionLabel: "1 piece with gravy", Grams: 100, MealType: "dinner"},
	{ID: "dn_chicken_curry", Name: "Chicken Curry", PortionLabel: "1 small bowl", Grams: 120, MealType: "dinner"},
	{ID: "dn_egg_curry", Name: "Egg Curry", PortionLabel: "1–2 eggs with gravy", Grams: 100, MealType: "dinner"},
	{ID: "dn_boiled_egg", Name: "Boiled Egg", PortionLabel: "1 whole", Grams: 50, MealType: "dinner"},
	{ID: "dn_paneer_sabji", Name: "Paneer Sabji", PortionLabel: "1 small bowl", Grams: 80, MealType: "dinner"},
	{ID: "dn_curd", Name: "Curd (Doi)", PortionLabel: "1 small bowl", Grams: 80, MealType: "dinner"},
	{ID: "dn_salad", Name: "Salad", PortionLabel: "1 bowl", Grams: 150, MealType: "dinner"},
}

type SeedService struct{ db *gorm.DB }

func NewSeedService(db *gorm.DB) *SeedService { return &SeedService{db: db} }

// SeedFoods upserts the master catalog. Existing rows are overwritten so
// re-seeding resets any edited entries; daily logs are never touched.
func (s *SeedService) SeedFoods(ctx context.Context) (int, error) {
	foods := make([]models.FoodItem, len(FoodMasterData))
	copy(foods, FoodMasterData)

	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "portion_label", "grams", "meal_type"}),
		}).
		Create(&foods).Error; err != nil {
		return 0, storeErr("seed foods", err)
	}
	return len(foods), nil
}
