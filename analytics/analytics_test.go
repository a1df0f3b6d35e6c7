package analytics

import (
	"testing"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food(name string, grams float64) models.FoodItem {
	return models.FoodItem{ID: "x_" + name, Name: name, Grams: grams}
}

func TestDailyTotalsSumsMeals(t *testing.T) {
	logs := []models.ResolvedDailyLog{
		{
			Date:      "2024-01-01",
			Breakfast: []models.FoodItem{food("Bread", 59), food("Boiled Egg", 50)},
			Lunch:     []models.FoodItem{food("Cooked Rice", 170)},
			Dinner:    []models.FoodItem{},
		},
	}

	days := DailyTotals(logs)
	require.Len(t, days, 1)
	assert.Equal(t, 109.0, days[0].Breakfast)
	assert.Equal(t, 170.0, days[0].Lunch)
	assert.Equal(t, 0.0, days[0].Dinner)
	assert.Equal(t, 279.0, days[0].Total)
}

func TestDailyTotalsUnresolvedItemsContributeNothing(t *testing.T) {
	// A deleted catalog id never reaches the resolved list, so the day
	// simply weighs less.
	logs := []models.ResolvedDailyLog{
		{Date: "2024-01-01", Breakfast: []models.FoodItem{food("Bread", 59)}},
	}
	days := DailyTotals(logs)
	assert.Equal(t, 59.0, days[0].Total)
}

func TestDistributionPercentages(t *testing.T) {
	days := []DayTotals{
		{Breakfast: 100, Lunch: 200, Dinner: 100, Total: 400},
		{Breakfast: 100, Lunch: 200, Dinner: 300, Total: 600},
	}

	shares := Distribution(days)
	require.Len(t, shares, 3)
	assert.Equal(t, models.MealBreakfast, shares[0].Meal)
	assert.Equal(t, 200.0, shares[0].Grams)
	assert.Equal(t, 20.0, shares[0].Percentage)
	assert.Equal(t, 40.0, shares[1].Percentage)
	assert.Equal(t, 40.0, shares[2].Percentage)
}

func TestDistributionZeroTotalKeepsThreeEntries(t *testing.T) {
	shares := Distribution([]DayTotals{{Date: "2024-01-01"}})
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Equal(t, 0.0, s.Percentage)
		assert.Equal(t, 0.0, s.Grams)
	}

	shares = Distribution(nil)
	require.Len(t, shares, 3)
}

func TestAverageByMealUsesLoggedDaysOnly(t *testing.T) {
	// Two logged days inside a 7-day request: divide by 2, not 7.
	days := []DayTotals{
		{Breakfast: 100, Lunch: 150, Dinner: 200, Total: 450},
		{Breakfast: 200, Lunch: 250, Dinner: 100, Total: 550},
	}

	avg := AverageByMeal(days)
	assert.Equal(t, 150.0, avg.Breakfast)
	assert.Equal(t, 200.0, avg.Lunch)
	assert.Equal(t, 150.0, avg.Dinner)
	assert.Equal(t, 500.0, avg.Total)

	assert.Equal(t, Averages{}, AverageByMeal(nil))
}

func TestConsistency(t *testing.T) {
	assert.Equal(t, 100, Consistency(7, 7))
	assert.Equal(t, 43, Consistency(3, 7)) // 42.857 rounds up
	assert.Equal(t, 0, Consistency(0, 30))
	assert.Equal(t, 0, Consistency(5, 0))
}

func TestTrendComparesHalfMeans(t *testing.T) {
	days := []DayTotals{
		{Total: 100}, {Total: 100},
		{Total: 150}, {Total: 150},
	}
	assert.Equal(t, 50.0, Trend(days))

	falling := []DayTotals{
		{Total: 200}, {Total: 200},
		{Total: 100}, {Total: 100},
	}
	assert.Equal(t, -50.0, Trend(falling))
}

func TestTrendOddLengthSplitsAtFloorMidpoint(t *testing.T) {
	days := []DayTotals{{Total: 100}, {Total: 200}, {Total: 200}}
	// first half = [100], second half = [200, 200]
	assert.Equal(t, 100.0, Trend(days))
}

func TestTrendDegenerateRanges(t *testing.T) {
	assert.Equal(t, 0.0, Trend(nil))
	assert.Equal(t, 0.0, Trend([]DayTotals{{Total: 500}}))
	// zero first-half mean
	assert.Equal(t, 0.0, Trend([]DayTotals{{Total: 0}, {Total: 300}}))
}

func TestTopFoodsCountsAndTruncates(t *testing.T) {
	logs := []models.ResolvedDailyLog{
		{
			Date:      "2024-01-01",
			Breakfast: []models.FoodItem{food("Bread", 59)},
			Lunch:     []models.FoodItem{food("Dal", 150), food("Rice", 170)},
			Dinner:    []models.FoodItem{food("Dal", 150)},
		},
		{
			Date:   "2024-01-02",
			Lunch:  []models.FoodItem{food("Rice", 170)},
			Dinner: []models.FoodItem{food("Dal", 150)},
		},
	}

	top := TopFoods(logs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Dal", top[0].Name)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, 450.0, top[0].Grams)
	assert.Equal(t, "Rice", top[1].Name)
	assert.Equal(t, 2, top[1].Count)
}

func TestTopFoodsTiesKeepFirstSeenOrder(t *testing.T) {
	logs := []models.ResolvedDailyLog{
		{
			Date:      "2024-01-01",
			Breakfast: []models.FoodItem{food("Omelette", 50), food("Bread", 59)},
		},
	}

	top := TopFoods(logs, 10)
	require.Len(t, top, 2)
	assert.Equal(t, "Omelette", top[0].Name)
	assert.Equal(t, "Bread", top[1].Name)
}

func TestTopFoodsCountsDuplicatesWithinOneMeal(t *testing.T) {
	logs := []models.ResolvedDailyLog{
		{Date: "2024-01-01", Lunch: []models.FoodItem{food("Dal", 150), food("Dal", 150)}},
	}
	top := TopFoods(logs, 10)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, 300.0, top[0].Grams)
}

func TestSummarize(t *testing.T) {
	logs := []models.ResolvedDailyLog{
		{Date: "2024-01-01", Breakfast: []models.FoodItem{food("Bread", 100)}},
		{Date: "2024-01-02", Breakfast: []models.FoodItem{food("Bread", 200)}},
	}

	s := Summarize(logs, 7, 8)
	assert.Equal(t, 2, s.LoggedDays)
	assert.Equal(t, 7, s.TotalDays)
	assert.Equal(t, 29, s.Consistency)
	assert.Equal(t, 100.0, s.TrendPct)
	assert.Equal(t, 150.0, s.Averages.Total)
	require.Len(t, s.Distribution, 3)
	assert.Equal(t, 100.0, s.Distribution[0].Percentage)
	require.Len(t, s.TopFoods, 1)
	assert.Equal(t, 2, s.TopFoods[0].Count)
}

func TestSummarizeEmptyRange(t *testing.T) {
	s := Summarize(nil, 7, 8)
	assert.Equal(t, 0, s.LoggedDays)
	assert.Equal(t, 0, s.Consistency)
	assert.Equal(t, 0.0, s.TrendPct)
	assert.Len(t, s.Distribution, 3)
	assert.Empty(t, s.TopFoods)
	assert.Empty(t, s.DailyTotals)
}
