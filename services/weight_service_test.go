package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestSaveWeightValidation(t *testing.T) {
	svc := NewWeightService(nil)

	cases := []struct {
		name    string
		date    string
		weight  *float64
		message string
	}{
		{"missing date", "", ptr(70), "Date and weight are required"},
		{"missing weight", "2024-01-01", nil, "Date and weight are required"},
		{"negative weight", "2024-01-01", ptr(-1), "Weight must be a positive number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), tc.date, tc.weight)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.message, ve.Message)
		})
	}
}

func TestSaveWeightUpsertOverwrites(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWeightService(db)

	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	// Saving an existing date overwrites its weight; RETURNING hands the
	// stored row back, original created_at included.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "weight_logs" (.+) ON CONFLICT \("date"\) DO UPDATE SET (.+)"weight"(.+) RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "weight", "created_at"}).
			AddRow("2024-01-01", 71.0, created))
	mock.ExpectCommit()

	log, err := svc.Save(context.Background(), "2024-01-01", ptr(71))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", log.Date)
	assert.Equal(t, 71.0, log.Weight)
	assert.Equal(t, created, log.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWeightsNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWeightService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "weight_logs" ORDER BY date desc`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "weight"}).
			AddRow("2024-01-03", 71.0).
			AddRow("2024-01-01", 70.0))

	logs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-01-03", logs[0].Date)
	assert.Equal(t, 71.0, logs[0].Weight)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWeightsEmptyIsSlice(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewWeightService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "weight_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "weight"}))

	logs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}
