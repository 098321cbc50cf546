package domain

import (
	"strings"
	"time"
)

const (
	ParkingStatusActive      = "active"
	ParkingStatusMaintenance = "maintenance"
	ParkingStatusInactive    = "inactive"
)

// ParkingRecord é o registro de parking como persistido, com campos anuláveis
type ParkingRecord struct {
	ID             int64
	OwnerID        *int64
	Name           *string
	Address        *string
	Status         *string
	TotalSpots     *int
	AvailableSpots *int
	RatePerHour    *float64
	RatingSum      *float64
	RatingCount    *float64
	CreatedAt      *time.Time
	UpdatedAt      *time.Time
}

// Parking é o parking normalizado, sem campos nulos
type Parking struct {
	ID             int64     `json:"id"`
	OwnerID        int64     `json:"ownerId"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Status         string    `json:"status"`
	TotalSpots     int       `json:"totalSpots"`
	AvailableSpots int       `json:"availableSpots"`
	RatePerHour    float64   `json:"ratePerHour"`
	RatingSum      float64   `json:"ratingSum"`
	RatingCount    float64   `json:"ratingCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AverageRating é a média das avaliações, zero quando não há nenhuma
func (p Parking) AverageRating() float64 {
	if p.RatingCount <= 0 {
		return 0
	}
	return p.RatingSum / p.RatingCount
}

// OccupiedSpots nunca é negativo, mesmo com vagas disponíveis acima do total
func (p Parking) OccupiedSpots() int {
	return max(0, p.TotalSpots-p.AvailableSpots)
}

func (p Parking) HasCreatedAt() bool {
	return !p.CreatedAt.IsZero()
}

func NormalizeParking(rec *ParkingRecord) Parking {
	if rec == nil {
		return Parking{}
	}

	p := Parking{
		ID:             rec.ID,
		OwnerID:        deref(rec.OwnerID),
		Name:           deref(rec.Name),
		Address:        deref(rec.Address),
		Status:         deref(rec.Status),
		TotalSpots:     deref(rec.TotalSpots),
		AvailableSpots: deref(rec.AvailableSpots),
		RatePerHour:    deref(rec.RatePerHour),
		RatingSum:      deref(rec.RatingSum),
		RatingCount:    deref(rec.RatingCount),
	}
	if rec.CreatedAt != nil {
		p.CreatedAt = *rec.CreatedAt
	}

	return p
}

func NormalizeParkings(records []*ParkingRecord) []Parking {
	parkings := make([]Parking, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		parkings = append(parkings, NormalizeParking(rec))
	}
	return parkings
}

// NormalizeParkingStatus mapeia o status livre para active, maintenance ou inactive
func NormalizeParkingStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "activo", "active":
		return ParkingStatusActive
	case "mantenimiento", "maintenance":
		return ParkingStatusMaintenance
	case "inactivo", "inactive":
		return ParkingStatusInactive
	default:
		return ParkingStatusActive
	}
}

type CreateParkingRequest struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots *int    `json:"availableSpots"`
	RatePerHour    float64 `json:"ratePerHour"`
	Status         string  `json:"status"`
}

type UpdateParkingRequest struct {
	Status         *string `json:"status"`
	AvailableSpots *int    `json:"availableSpots"`
}

type AddReviewRequest struct {
	Rating float64 `json:"rating"`
}

// ParkingScope seleciona o conjunto de parkings visível em uma consulta
type ParkingScope struct {
	OwnerID   *int64
	ParkingID *int64
	All       bool
}

func ScopeAll() ParkingScope {
	return ParkingScope{All: true}
}

func ScopeOwner(ownerID int64) ParkingScope {
	return ParkingScope{OwnerID: &ownerID}
}

// ScopeParking restringe a um único parking; ownerID nil não filtra por dono
func ScopeParking(ownerID *int64, parkingID int64) ParkingScope {
	return ParkingScope{OwnerID: ownerID, ParkingID: &parkingID}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
