package analytics

import (
	"testing"

	"github.com/Techlead-ANKAN/WeightTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByDateAsc(t *testing.T) {
	// API order is newest-first.
	logs := []models.WeightLog{
		{Date: "2024-01-03", Weight: 71},
		{Date: "2024-01-01", Weight: 70},
		{Date: "2024-01-02", Weight: 70.5},
	}

	sorted := SortByDateAsc(logs)
	require.Len(t, sorted, 3)
	assert.Equal(t, "2024-01-01", sorted[0].Date)
	assert.Equal(t, "2024-01-03", sorted[2].Date)
	// input untouched
	assert.Equal(t, "2024-01-03", logs[0].Date)
}

func TestFilterSince(t *testing.T) {
	logs := []models.WeightLog{
		{Date: "2024-01-01", Weight: 70},
		{Date: "2024-02-01", Weight: 69},
		{Date: "2024-03-01", Weight: 68},
	}

	out := FilterSince(logs, "2024-02-01")
	require.Len(t, out, 2)
	assert.Equal(t, "2024-02-01", out[0].Date)

	assert.Len(t, FilterSince(logs, ""), 3)
	assert.Empty(t, FilterSince(logs, "2025-01-01"))
}

func TestComputeWeightStats(t *testing.T) {
	logs := []models.WeightLog{
		{Date: "2024-01-01", Weight: 72.24},
		{Date: "2024-01-05", Weight: 73.5},
		{Date: "2024-01-10", Weight: 71.1},
	}

	stats := ComputeWeightStats(logs)
	assert.Equal(t, 71.1, stats.Latest)
	assert.Equal(t, 73.5, stats.Max)
	assert.Equal(t, 72.2, stats.Min)
	assert.Equal(t, -1.1, stats.Change)
	assert.Equal(t, 3, stats.Entries)
}

func TestComputeWeightStatsEmpty(t *testing.T) {
	assert.Equal(t, WeightStats{}, ComputeWeightStats(nil))
}

func TestComputeWeightStatsSingleEntry(t *testing.T) {
	stats := ComputeWeightStats([]models.WeightLog{{Date: "2024-01-01", Weight: 70}})
	assert.Equal(t, 70.0, stats.Latest)
	assert.Equal(t, 0.0, stats.Change)
	assert.Equal(t, 1, stats.Entries)
}
