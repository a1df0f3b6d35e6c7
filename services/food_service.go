package services

import (
	"context"
	"errors"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

// FoodInput carries the mutable fields of a catalog item. ID is only
// consulted on create.
type FoodInput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PortionLabel string  `json:"portionLabel"`
	Grams        float64 `json:"grams"`
	MealType     string  `json:"mealType"`
}

func validateFoodFields(in FoodInput, requireID bool) error {
	if (requireID && in.ID == "") || in.Name == "" || in.PortionLabel == "" || in.Grams == 0 || in.MealType == "" {
		return validationErr("All fields are required")
	}
	if !models.ValidMealType(in.MealType) {
		return validationErr("Invalid meal type")
	}
	if in.Grams <= 0 {
		return validationErr("Grams must be greater than 0")
	}
	return nil
}

// List returns the whole catalog grouped by meal type, each group sorted
// by name. Groups are always present, empty slices included.
func (s *FoodService) List(ctx context.Context) (*models.GroupedFoods, error) {
	var foods []models.FoodItem
	if err := s.db.WithContext(ctx).
		Order("meal_type asc, name asc").
		Find(&foods).Error; err != nil {
		return nil, storeErr("list foods", err)
	}

	out := &models.GroupedFoods{
		Breakfast: []models.FoodItem{},
		Lunch:     []models.FoodItem{},
		Dinner:    []models.FoodItem{},
	}
	for _, f := range foods {
		switch f.MealType {
		case models.MealBreakfast:
			out.Breakfast = append(out.Breakfast, f)
		case models.MealLunch:
			out.Lunch = append(out.Lunch, f)
		case models.MealDinner:
			out.Dinner = append(out.Dinner, f)
		}
	}
	return out, nil
}

// Create validates and persists a new catalog item. The id must not exist yet.
func (s *FoodService) Create(ctx context.Context, in FoodInput) (*models.FoodItem, error) {
	if err := validateFoodFields(in, true); err != nil {
		return nil, err
	}

	var existing models.FoodItem
	err := s.db.WithContext(ctx).First(&existing, "id = ?", in.ID).Error
	if err == nil {
		return nil, &ConflictError{Message: "Food ID already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr("check food id", err)
	}

	food := models.FoodItem{
		ID:           in.ID,
		Name:         in.Name,
		PortionLabel: in.PortionLabel,
		Grams:        in.Grams,
		MealType:     in.MealType,
	}
	if err := s.db.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, storeErr("create food", err)
	}
	return &food, nil
}

// Update replaces every mutable field of an existing item.
func (s *FoodService) Update(ctx context.Context, id string, in FoodInput) (*models.FoodItem, error) {
	if err := validateFoodFields(in, false); err != nil {
		return nil, err
	}

	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Food item not found"}
		}
		return nil, storeErr("load food", err)
	}

	food.Name = in.Name
	food.PortionLabel = in.PortionLabel
	food.Grams = in.Grams
	food.MealType = in.MealType
	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, storeErr("update food", err)
	}
	return &food, nil
}

// Delete removes a catalog item and returns it. Daily logs referencing the
// id are left untouched; resolution treats the id as absent from then on.
func (s *FoodService) Delete(ctx context.Context, id string) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Food item not found"}
		}
		return nil, storeErr("load food", err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.FoodItem{}, "id = ?", id).Error; err != nil {
		return nil, storeErr("delete food", err)
	}
	return &food, nil
}
