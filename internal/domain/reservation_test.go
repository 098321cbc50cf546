package domain

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeOfDay
	}{
		{input: "08:30", expected: TimeOfDay{Hour: 8, Minute: 30, Valid: true}},
		{input: "17:05:00", expected: TimeOfDay{Hour: 17, Minute: 5, Valid: true}},
		{input: "24:00", expected: TimeOfDay{}},
		{input: "abc", expected: TimeOfDay{}},
		{input: "", expected: TimeOfDay{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTimeOfDay(tt.input))
		})
	}
}

func TestReservationOccupies(t *testing.T) {
	r := Reservation{
		StartTime: TimeOfDay{Hour: 9, Valid: true},
		EndTime:   TimeOfDay{Hour: 11, Minute: 30, Valid: true},
	}

	assert.False(t, r.Occupies(8))
	assert.True(t, r.Occupies(9))
	assert.True(t, r.Occupies(10))
	assert.False(t, r.Occupies(11), "a hora final é exclusiva")

	assert.False(t, Reservation{StartTime: TimeOfDay{Hour: 9, Valid: true}}.Occupies(9))
}

func TestNormalizeReservation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	date := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	r := NormalizeReservation(&ReservationRecord{
		ID:        5,
		ParkingID: ptr(int64(2)),
		Date:      &date,
		StartTime: ptr("10:00:00"),
		EndTime:   ptr("12:00"),
	}, loc)

	assert.Equal(t, int64(2), r.ParkingID)
	assert.Zero(t, r.TotalPrice)
	assert.False(t, r.HasDriver())
	assert.False(t, r.HasCreatedAt())
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, loc), r.Date)
	assert.True(t, r.StartTime.Valid)
	assert.Equal(t, 12, r.EndTime.Hour)
}

func TestParseReservationStatus(t *testing.T) {
	status, ok := ParseReservationStatus(" paid ")
	assert.True(t, ok)
	assert.Equal(t, ReservationPaid, status)

	_, ok = ParseReservationStatus("ARCHIVED")
	assert.False(t, ok)
}

func TestTimeOfDayJSON(t *testing.T) {
	body, err := jsoniter.Marshal(struct {
		Start TimeOfDay `json:"start"`
		End   TimeOfDay `json:"end"`
	}{Start: TimeOfDay{Hour: 7, Minute: 5, Valid: true}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"07:05","end":null}`, string(body))
}
