// Package analytics derives food and weight insights from data already
// fetched by the client. Nothing here is persisted or computed server-side;
// every value is recomputed from the logs passed in.
package analytics

import (
	"math"
	"sort"

	"github.com/Techlead-ANKAN/WeightTracker/models"
)

// DayTotals holds the per-meal gram totals of one logged date.
type DayTotals struct {
	Date      string  `json:"date"`
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Total     float64 `json:"total"`
}

// MealShare is one meal's slice of the range total.
type MealShare struct {
	Meal       string  `json:"meal"`
	Grams      float64 `json:"grams"`
	Percentage float64 `json:"percentage"`
}

// Averages are per-logged-day means, rounded to whole grams.
type Averages struct {
	Breakfast float64 `json:"breakfast"`
	Lunch     float64 `json:"lunch"`
	Dinner    float64 `json:"dinner"`
	Total     float64 `json:"total"`
}

// FoodCount tracks how often a distinct food name appears across a range.
type FoodCount struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Grams float64 `json:"grams"`
}

// Summary bundles every derived food metric for one fetched range.
type Summary struct {
	DailyTotals  []DayTotals `json:"dailyTotals"`
	Distribution []MealShare `json:"mealDistribution"`
	Averages     Averages    `json:"averages"`
	TopFoods     []FoodCount `json:"topFoods"`
	Consistency  int         `json:"consistency"`
	LoggedDays   int         `json:"loggedDays"`
	TotalDays    int         `json:"totalDays"`
	TrendPct     float64     `json:"trendPercentage"`
}

func sumGrams(foods []models.FoodItem) float64 {
	var total float64
	for _, f := range foods {
		total += f.Grams
	}
	return total
}

// MealTotal sums the gram weights of one resolved meal list. Unresolved
// ids were already dropped during resolution, so they contribute 0.
func MealTotal(foods []models.FoodItem) float64 { return sumGrams(foods) }

// DailyTotals computes per-meal and whole-day totals for each log,
// preserving the input (ascending date) order.
func DailyTotals(logs []models.ResolvedDailyLog) []DayTotals {
	out := make([]DayTotals, 0, len(logs))
	for _, l := range logs {
		d := DayTotals{
			Date:      l.Date,
			Breakfast: sumGrams(l.Breakfast),
			Lunch:     sumGrams(l.Lunch),
			Dinner:    sumGrams(l.Dinner),
		}
		d.Total = d.Breakfast + d.Lunch + d.Dinner
		out = append(out, d)
	}
	return out
}

// Distribution reports each meal's share of the range total. All three
// entries are always present; a zero grand total yields 0% across the board.
func Distribution(days []DayTotals) []MealShare {
	var b, l, d float64
	for _, day := range days {
		b += day.Breakfast
		l += day.Lunch
		d += day.Dinner
	}
	grand := b + l + d

	shares := []MealShare{
		{Meal: models.MealBreakfast, Grams: b},
		{Meal: models.MealLunch, Grams: l},
		{Meal: models.MealDinner, Grams: d},
	}
	if grand > 0 {
		for i := range shares {
			shares[i].Percentage = round1(shares[i].Grams / grand * 100)
		}
	}
	return shares
}

// AverageByMeal divides each meal's range total by the number of logged
// days, not by the calendar length of the range.
func AverageByMeal(days []DayTotals) Averages {
	if len(days) == 0 {
		return Averages{}
	}
	var a Averages
	for _, d := range days {
		a.Breakfast += d.Breakfast
		a.Lunch += d.Lunch
		a.Dinner += d.Dinner
		a.Total += d.Total
	}
	n := float64(len(days))
	a.Breakfast = math.Round(a.Breakfast / n)
	a.Lunch = math.Round(a.Lunch / n)
	a.Dinner = math.Round(a.Dinner / n)
	a.Total = math.Round(a.Total / n)
	return a
}

// Consistency is the share of requested days that have a log entry,
// rounded to a whole percent.
func Consistency(loggedDays, rangeDays int) int {
	if rangeDays <= 0 {
		return 0
	}
	return int(math.Round(float64(loggedDays) / float64(rangeDays) * 100))
}

// Trend splits the chronologically ordered totals at the midpoint and
// compares half means as a signed percentage change. One or zero entries,
// or a zero first-half mean, give 0.
func Trend(days []DayTotals) float64 {
	mid := len(days) / 2
	if mid == 0 {
		return 0
	}

	var firstSum, secondSum float64
	for _, d := range days[:mid] {
		firstSum += d.Total
	}
	for _, d := range days[mid:] {
		secondSum += d.Total
	}
	firstAvg := firstSum / float64(mid)
	secondAvg := secondSum / float64(len(days)-mid)
	if firstAvg <= 0 {
		return 0
	}
	return round1((secondAvg - firstAvg) / firstAvg * 100)
}

// TopFoods counts occurrences per distinct food name across all meals and
// days, sorted by count descending. Ties keep first-seen order; the result
// is truncated to n entries.
func TopFoods(logs []models.ResolvedDailyLog, n int) []FoodCount {
	counts := map[string]*FoodCount{}
	order := []string{}
	for _, l := range logs {
		for _, meal := range [][]models.FoodItem{l.Breakfast, l.Lunch, l.Dinner} {
			for _, f := range meal {
				fc, ok := counts[f.Name]
				if !ok {
					fc = &FoodCount{Name: f.Name}
					counts[f.Name] = fc
					order = append(order, f.Name)
				}
				fc.Count++
				fc.Grams += f.Grams
			}
		}
	}

	out := make([]FoodCount, 0, len(order))
	for _, name := range order {
		out = append(out, *counts[name])
	}
	// Stable sort keeps first-seen order between equal counts.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summarize computes every food metric for a fetched range. rangeDays is
// the requested calendar length (consistency denominator); topN caps the
// top-foods list.
func Summarize(logs []models.ResolvedDailyLog, rangeDays, topN int) Summary {
	days := DailyTotals(logs)
	return Summary{
		DailyTotals:  days,
		Distribution: Distribution(days),
		Averages:     AverageByMeal(days),
		TopFoods:     TopFoods(logs, topN),
		Consistency:  Consistency(len(logs), rangeDays),
		LoggedDays:   len(logs),
		TotalDays:    rangeDays,
		TrendPct:     Trend(days),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
