package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpotStatus(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected ParkingSpotStatus
		ok       bool
	}{
		{name: "disponível", input: "AVAILABLE", expected: SpotAvailable, ok: true},
		{name: "minúsculas com espaços", input: " occupied ", expected: SpotOccupied, ok: true},
		{name: "reservada", input: "Reserved", expected: SpotReserved, ok: true},
		{name: "desconhecido", input: "BROKEN", ok: false},
		{name: "vazio", input: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, ok := ParseSpotStatus(tc.input)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, status)
		})
	}
}
