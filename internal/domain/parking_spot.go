package domain

import (
	"strings"
	"time"
)

type ParkingSpotStatus string

const (
	SpotAvailable ParkingSpotStatus = "AVAILABLE"
	SpotOccupied  ParkingSpotStatus = "OCCUPIED"
	SpotReserved  ParkingSpotStatus = "RESERVED"
)

// ParseSpotStatus aceita o status sem diferenciar maiúsculas
func ParseSpotStatus(s string) (ParkingSpotStatus, bool) {
	status := ParkingSpotStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case SpotAvailable, SpotOccupied, SpotReserved:
		return status, true
	default:
		return "", false
	}
}

// ParkingSpot é uma vaga registrada do parking. O ID é o mesmo usado em parkingSpotId das reservas.
type ParkingSpot struct {
	ID          string            `json:"id"`
	ParkingID   int64             `json:"parkingId"`
	RowIndex    int               `json:"rowIndex"`
	ColumnIndex int               `json:"columnIndex"`
	Label       string            `json:"label"`
	Status      ParkingSpotStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type AddParkingSpotRequest struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Label  string `json:"label"`
}

type UpdateParkingSpotRequest struct {
	Status string `json:"status"`
}
