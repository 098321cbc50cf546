package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "meio do mês",
			input:    time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
			months:   -1,
			expected: time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "fim de março volta para o fim de fevereiro bissexto",
			input:    time.Date(2024, 3, 31, 8, 0, 0, 0, time.UTC),
			months:   -1,
			expected: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "virada de ano",
			input:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			months:   -1,
			expected: time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "três meses para trás a partir de 31 de maio",
			input:    time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC),
			months:   -3,
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(AddMonths(tt.input, tt.months)), "got %s", AddMonths(tt.input, tt.months))
		})
	}
}

func TestStartOfMonthAndDay(t *testing.T) {
	ref := time.Date(2024, 7, 19, 17, 45, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(ref))
	assert.Equal(t, time.Date(2024, 7, 19, 0, 0, 0, 0, time.UTC), StartOfDay(ref))
	assert.Equal(t, 31, DaysInMonth(ref))
}

func TestMonthLabel(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 01/02 às 02h UTC ainda é janeiro em UTC-5
	ts := time.Date(2024, 2, 1, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01", MonthLabel(ts, loc))
	assert.Equal(t, "2024-02", MonthLabel(ts, time.UTC))
}

func TestParseDateIn(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	date, err := ParseDateIn("2024-03-09", loc)
	require.NoError(t, err)
	assert.Equal(t, 9, date.Day())
	assert.Equal(t, loc, date.Location())

	_, err = ParseDateIn("09/03/2024", loc)
	assert.Error(t, err)
}
