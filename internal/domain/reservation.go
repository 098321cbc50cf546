package domain

import (
	"strconv"
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationPaid      ReservationStatus = "PAID"
	ReservationCanceled  ReservationStatus = "CANCELED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

var validReservationStatus = map[ReservationStatus]struct{}{
	ReservationPending:   {},
	ReservationConfirmed: {},
	ReservationPaid:      {},
	ReservationCanceled:  {},
	ReservationCancelled: {},
	ReservationCompleted: {},
}

// ParseReservationStatus aceita o status sem diferenciar maiúsculas
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := validReservationStatus[status]
	return status, ok
}

// ReservationRecord é a reserva como persistida. StartTime e EndTime usam HH:MM[:SS].
type ReservationRecord struct {
	ID            int64
	ParkingID     *int64
	ParkingSpotID *string
	SpotLabel     *string
	DriverID      *int64
	DriverName    *string
	VehiclePlate  *string
	Date          *time.Time
	StartTime     *string
	EndTime       *string
	TotalPrice    *float64
	Status        *string
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// TimeOfDay é um horário civil sem data
type TimeOfDay struct {
	Hour   int
	Minute int
	Valid  bool
}

// ParseTimeOfDay interpreta HH:MM ou HH:MM:SS; valores inválidos ficam com Valid false
func ParseTimeOfDay(s string) TimeOfDay {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}
	}

	return TimeOfDay{Hour: hour, Minute: minute, Valid: true}
}

func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("15:04")
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + t.String() + `"`), nil
}

// Reservation é a reserva normalizada. DriverID zero significa motorista ausente
// e Date zero significa data ausente.
type Reservation struct {
	ID            int64     `json:"id"`
	ParkingID     int64     `json:"parkingId"`
	ParkingSpotID string    `json:"parkingSpotId"`
	SpotLabel     string    `json:"spotLabel"`
	DriverID      int64     `json:"driverId"`
	DriverName    string    `json:"driverName"`
	VehiclePlate  string    `json:"vehiclePlate"`
	Date          time.Time `json:"date"`
	StartTime     TimeOfDay `json:"startTime"`
	EndTime       TimeOfDay `json:"endTime"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r Reservation) HasDriver() bool {
	return r.DriverID > 0
}

func (r Reservation) HasCreatedAt() bool {
	return !r.CreatedAt.IsZero()
}

// Occupies diz se a reserva ocupa a hora h, com início inclusivo e fim exclusivo
func (r Reservation) Occupies(hour int) bool {
	if !r.StartTime.Valid || !r.EndTime.Valid {
		return false
	}
	return r.StartTime.Hour <= hour && hour < r.EndTime.Hour
}

// NormalizeReservation aplica os valores padrão e fixa a data civil em loc
func NormalizeReservation(rec *ReservationRecord, loc *time.Location) Reservation {
	if rec == nil {
		return Reservation{}
	}
	if loc == nil {
		loc = time.UTC
	}

	r := Reservation{
		ID:            rec.ID,
		ParkingID:     deref(rec.ParkingID),
		ParkingSpotID: deref(rec.ParkingSpotID),
		SpotLabel:     deref(rec.SpotLabel),
		DriverID:      deref(rec.DriverID),
		DriverName:    deref(rec.DriverName),
		VehiclePlate:  deref(rec.VehiclePlate),
		StartTime:     ParseTimeOfDay(deref(rec.StartTime)),
		EndTime:       ParseTimeOfDay(deref(rec.EndTime)),
		TotalPrice:    deref(rec.TotalPrice),
		Status:        deref(rec.Status),
	}
	if rec.Date != nil {
		// a coluna date não tem fuso, vale o dia civil gravado
		y, m, d := rec.Date.Date()
		r.Date = time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	if rec.CreatedAt != nil {
		r.CreatedAt = *rec.CreatedAt
	}
	if rec.UpdatedAt != nil {
		r.UpdatedAt = *rec.UpdatedAt
	}

	return r
}

func NormalizeReservations(records []*ReservationRecord, loc *time.Location) []Reservation {
	reservations := make([]Reservation, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		reservations = append(reservations, NormalizeReservation(rec, loc))
	}
	return reservations
}

type CreateReservationRequest struct {
	ParkingID     int64    `json:"parkingId"`
	ParkingSpotID string   `json:"parkingSpotId"`
	SpotLabel     string   `json:"spotLabel"`
	DriverName    string   `json:"driverName"`
	VehiclePlate  string   `json:"vehiclePlate"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	TotalPrice    *float64 `json:"totalPrice"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}
