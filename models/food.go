package models

// Allowed meal types for catalog items and log entries.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMealType reports whether s is one of the three meal types.
func ValidMealType(s string) bool {
	return s == MealBreakfast || s == MealLunch || s == MealDinner
}

// FoodItem is a catalog entry with a fixed portion weight.
// IDs are caller-supplied (convention "<mealPrefix>_<slug>", e.g. "bf_bread_2")
// and immutable after creation.
type FoodItem struct {
	ID           string  `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	PortionLabel string  `gorm:"not null" json:"portionLabel"`
	Grams        float64 `gorm:"not null" json:"grams"`
	MealType     string  `gorm:"not null;index" json:"mealType"`
}

// GroupedFoods is the catalog partitioned by meal type, each group sorted by name.
type GroupedFoods struct {
	Breakfast []FoodItem `json:"breakfast"`
	Lunch     []FoodItem `json:"lunch"`
	Dinner    []FoodItem `json:"dinner"`
}
