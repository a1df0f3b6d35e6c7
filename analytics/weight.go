package analytics

import (
	"sort"

	"github.com/Techlead-ANKAN/WeightTracker/models"
)

// WeightStats summarizes a window of weight entries.
type WeightStats struct {
	Latest  float64 `json:"latest"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Change  float64 `json:"change"`
	Entries int     `json:"entries"`
}

// SortByDateAsc orders entries oldest first. The API returns them newest
// first, so callers normalize before computing stats.
func SortByDateAsc(logs []models.WeightLog) []models.WeightLog {
	out := make([]models.WeightLog, len(logs))
	copy(out, logs)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// FilterSince keeps entries on or after cutoff (YYYY-MM-DD, compared
// lexicographically). An empty cutoff keeps everything.
func FilterSince(logs []models.WeightLog, cutoff string) []models.WeightLog {
	if cutoff == "" {
		return logs
	}
	out := []models.WeightLog{}
	for _, l := range logs {
		if l.Date >= cutoff {
			out = append(out, l)
		}
	}
	return out
}

// ComputeWeightStats derives latest/max/min and the earliest-to-latest
// change from an ascending-by-date window. Values round to one decimal.
func ComputeWeightStats(logs []models.WeightLog) WeightStats {
	if len(logs) == 0 {
		return WeightStats{}
	}

	first := logs[0].Weight
	latest := logs[len(logs)-1].Weight
	max, min := first, first
	for _, l := range logs {
		if l.Weight > max {
			max = l.Weight
		}
		if l.Weight < min {
			min = l.Weight
		}
	}
	return WeightStats{
		Latest:  round1(latest),
		Max:     round1(max),
		Min:     round1(min),
		Change:  round1(latest - first),
		Entries: len(logs),
	}
}
