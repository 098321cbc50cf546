package reserving

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

type Reserver interface {
	CreateReservation(ctx context.Context, principal domain.Principal, req *domain.CreateReservationRequest) (*domain.Reservation, error)
	ListReservations(ctx context.Context, principal domain.Principal, parkingID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, principal domain.Principal, id int64, req *domain.UpdateReservationStatusRequest) (*domain.Reservation, error)
}

type Service struct {
	reservationRepo repository.ReservationRepository
	parkingRepo     repository.ParkingRepository
	spotRepo        repository.ParkingSpotRepository
	invalidator     analyzing.Invalidator
	location        *time.Location
}

func NewService(
	reservationRepo repository.ReservationRepository,
	parkingRepo repository.ParkingRepository,
	spotRepo repository.ParkingSpotRepository,
	invalidator analyzing.Invalidator,
	location *time.Location,
) Reserver {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		reservationRepo: reservationRepo,
		parkingRepo:     parkingRepo,
		spotRepo:        spotRepo,
		invalidator:     invalidator,
		location:        location,
	}
}

// CreateReservation registra a reserva como PENDING. Sem preço informado, cobra
// a tarifa do parking pelos minutos reservados. A vaga informada precisa estar
// registrada no mesmo parking.
func (s *Service) CreateReservation(ctx context.Context, principal domain.Principal, req *domain.CreateReservationRequest) (*domain.Reservation, error) {
	if req == nil || req.ParkingID <= 0 || strings.TrimSpace(req.Date) == "" {
		return nil, NewReservationError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "Parking e data são obrigatórios")
	}

	date, err := utils.ParseDateIn(strings.TrimSpace(req.Date), s.location)
	if err != nil {
		return nil, NewReservationError(ErrInvalidSchedule, apiErrors.ErrInvalidFormat, "Data deve usar o formato YYYY-MM-DD")
	}

	start := domain.ParseTimeOfDay(req.StartTime)
	end := domain.ParseTimeOfDay(req.EndTime)
	if !start.Valid || !end.Valid || minutesOf(end) <= minutesOf(start) {
		return nil, NewReservationError(ErrInvalidSchedule, apiErrors.ErrInvalidSchedule, "O término deve ser posterior ao início")
	}

	parking, err := s.parking(ctx, req.ParkingID)
	if err != nil {
		return nil, err
	}

	spotID := strings.TrimSpace(req.ParkingSpotID)
	spotLabel := req.SpotLabel
	if spotID != "" {
		spot, err := s.spot(ctx, parking.ID, spotID)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(spotLabel) == "" {
			spotLabel = spot.Label
		}
	}

	price := utils.RoundWithTwoDecimalPlace(float64(minutesOf(end)-minutesOf(start)) / 60 * parking.RatePerHour)
	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return nil, NewReservationError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Preço não pode ser negativo")
		}
		price = *req.TotalPrice
	}

	status := string(domain.ReservationPending)
	startText, endText := start.String(), end.String()
	rec := &domain.ReservationRecord{
		ParkingID:     &parking.ID,
		ParkingSpotID: optional(spotID),
		SpotLabel:     optional(spotLabel),
		DriverName:    optional(req.DriverName),
		VehiclePlate:  optional(strings.ToUpper(req.VehiclePlate)),
		Date:          &date,
		StartTime:     &startText,
		EndTime:       &endText,
		TotalPrice:    &price,
		Status:        &status,
	}
	if principal.UserID > 0 {
		rec.DriverID = &principal.UserID
	}

	created, err := s.reservationRepo.CreateReservation(ctx, rec)
	if err != nil {
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar reserva")
	}

	s.invalidate(ctx, parking.OwnerID)

	reservation := domain.NormalizeReservation(created, s.location)
	return &reservation, nil
}

// ListReservations lista as reservas de um parking do principal
func (s *Service) ListReservations(ctx context.Context, principal domain.Principal, parkingID int64) ([]domain.Reservation, error) {
	parking, err := s.parking(ctx, parkingID)
	if err != nil {
		return nil, err
	}

	if !principal.IsAdmin() && parking.OwnerID != principal.UserID {
		return nil, NewReservationError(ErrNotAllowed, apiErrors.ErrParkingNotOwned, "")
	}

	records, err := s.reservationRepo.ListReservationsByParkingID(ctx, parkingID)
	if err != nil {
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar reservas")
	}

	return domain.NormalizeReservations(records, s.location), nil
}

// UpdateStatus pode ser feito pelo dono do parking, pelo motorista da reserva ou por administradores
func (s *Service) UpdateStatus(ctx context.Context, principal domain.Principal, id int64, req *domain.UpdateReservationStatusRequest) (*domain.Reservation, error) {
	if req == nil {
		return nil, NewReservationError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, "")
	}

	status, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		return nil, NewReservationError(ErrInvalidStatus, apiErrors.ErrInvalidStatus, req.Status)
	}

	reservation, err := s.reservation(ctx, id)
	if err != nil {
		return nil, err
	}

	parking, err := s.parking(ctx, reservation.ParkingID)
	if err != nil {
		return nil, err
	}

	allowed := principal.IsAdmin() || parking.OwnerID == principal.UserID ||
		(reservation.HasDriver() && reservation.DriverID == principal.UserID)
	if !allowed {
		return nil, NewReservationError(ErrNotAllowed, apiErrors.ErrInsufficientPrivilege, "")
	}

	if err := s.reservationRepo.UpdateReservationStatus(ctx, id, string(status)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewReservationError(ErrReservationNotFound, apiErrors.ErrReservationNotFound, "")
		}
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar reserva")
	}

	s.invalidate(ctx, parking.OwnerID)

	return s.reservation(ctx, id)
}

func (s *Service) parking(ctx context.Context, id int64) (*domain.Parking, error) {
	rec, err := s.parkingRepo.GetParkingByID(ctx, id)
	if err != nil {
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar parking")
	}
	if rec == nil {
		return nil, NewReservationError(ErrParkingNotFound, apiErrors.ErrParkingNotFound, "")
	}

	parking := domain.NormalizeParking(rec)
	return &parking, nil
}

func (s *Service) spot(ctx context.Context, parkingID int64, spotID string) (*domain.ParkingSpot, error) {
	spot, err := s.spotRepo.GetSpot(ctx, parkingID, spotID)
	if err != nil {
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vaga")
	}
	if spot == nil {
		return nil, NewReservationError(ErrSpotNotFound, apiErrors.ErrSpotNotFound, spotID)
	}

	return spot, nil
}

func (s *Service) reservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	rec, err := s.reservationRepo.GetReservationByID(ctx, id)
	if err != nil {
		return nil, NewReservationError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar reserva")
	}
	if rec == nil {
		return nil, NewReservationError(ErrReservationNotFound, apiErrors.ErrReservationNotFound, "")
	}

	reservation := domain.NormalizeReservation(rec, s.location)
	return &reservation, nil
}

func (s *Service) invalidate(ctx context.Context, ownerID int64) {
	if s.invalidator == nil || ownerID <= 0 {
		return
	}

	if err := s.invalidator.Invalidate(ctx, analyzing.OwnerPrincipal(ownerID)); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID}).WithError(err).Warn("Falha ao invalidar cache de analytics")
	}
}

func minutesOf(t domain.TimeOfDay) int {
	return t.Hour*60 + t.Minute
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
