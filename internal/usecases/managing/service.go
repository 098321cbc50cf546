package managing

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

const (
	minRating = 1
	maxRating = 5
)

type ParkingManager interface {
	CreateParking(ctx context.Context, principal domain.Principal, req *domain.CreateParkingRequest) (*domain.Parking, error)
	ListParkings(ctx context.Context, principal domain.Principal) ([]domain.Parking, error)
	GetParking(ctx context.Context, id int64) (*domain.Parking, error)
	UpdateParking(ctx context.Context, principal domain.Principal, id int64, req *domain.UpdateParkingRequest) (*domain.Parking, error)
	DeleteParking(ctx context.Context, principal domain.Principal, id int64) error
	AddReview(ctx context.Context, id int64, req *domain.AddReviewRequest) (*domain.Parking, error)
	AddSpot(ctx context.Context, principal domain.Principal, parkingID int64, req *domain.AddParkingSpotRequest) (*domain.ParkingSpot, error)
	ListSpots(ctx context.Context, parkingID int64) ([]domain.ParkingSpot, error)
	UpdateSpotStatus(ctx context.Context, principal domain.Principal, parkingID int64, spotID string, req *domain.UpdateParkingSpotRequest) (*domain.ParkingSpot, error)
}

type Service struct {
	parkingRepo repository.ParkingRepository
	spotRepo    repository.ParkingSpotRepository
	invalidator analyzing.Invalidator
	newSpotID   func() string
}

func NewService(
	parkingRepo repository.ParkingRepository,
	spotRepo repository.ParkingSpotRepository,
	invalidator analyzing.Invalidator,
) ParkingManager {
	return &Service{
		parkingRepo: parkingRepo,
		spotRepo:    spotRepo,
		invalidator: invalidator,
		newSpotID:   uuid.NewString,
	}
}

func (s *Service) CreateParking(ctx context.Context, principal domain.Principal, req *domain.CreateParkingRequest) (*domain.Parking, error) {
	if principal.UserID <= 0 {
		return nil, NewParkingError(ErrUnknownOwner, apiErrors.ErrInvalidToken, "Token sem identificação do proprietário")
	}
	if req == nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "Nome e endereço são obrigatórios")
	}
	if req.TotalSpots < 0 || req.RatePerHour < 0 {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Vagas e tarifa não podem ser negativas")
	}

	available := req.TotalSpots
	if req.AvailableSpots != nil {
		available = *req.AvailableSpots
	}
	if available < 0 || available > req.TotalSpots {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Vagas disponíveis fora do intervalo")
	}

	ownerID := principal.UserID
	name := strings.TrimSpace(req.Name)
	address := strings.TrimSpace(req.Address)
	status := domain.NormalizeParkingStatus(req.Status)
	total := req.TotalSpots
	rate := req.RatePerHour

	rec, err := s.parkingRepo.CreateParking(ctx, &domain.ParkingRecord{
		OwnerID:        &ownerID,
		Name:           &name,
		Address:        &address,
		Status:         &status,
		TotalSpots:     &total,
		AvailableSpots: &available,
		RatePerHour:    &rate,
	})
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar parking")
	}

	s.invalidate(ctx, ownerID)

	parking := domain.NormalizeParking(rec)
	return &parking, nil
}

// ListParkings devolve todos os parkings para administradores e os próprios para os demais
func (s *Service) ListParkings(ctx context.Context, principal domain.Principal) ([]domain.Parking, error) {
	scope := domain.ScopeOwner(principal.UserID)
	if principal.IsAdmin() {
		scope = domain.ScopeAll()
	}

	records, err := s.parkingRepo.ListParkings(ctx, scope)
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar parkings")
	}

	return domain.NormalizeParkings(records), nil
}

// GetParking é público: motoristas consultam o parking antes de reservar
func (s *Service) GetParking(ctx context.Context, id int64) (*domain.Parking, error) {
	return s.reload(ctx, id)
}

func (s *Service) UpdateParking(ctx context.Context, principal domain.Principal, id int64, req *domain.UpdateParkingRequest) (*domain.Parking, error) {
	if req == nil || (req.Status == nil && req.AvailableSpots == nil) {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "Informe status ou vagas disponíveis")
	}

	parking, err := s.ownedParking(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	var status *string
	if req.Status != nil {
		normalized := domain.NormalizeParkingStatus(*req.Status)
		status = &normalized
	}
	if req.AvailableSpots != nil && (*req.AvailableSpots < 0 || *req.AvailableSpots > parking.TotalSpots) {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Vagas disponíveis fora do intervalo")
	}

	if err := s.parkingRepo.UpdateParking(ctx, id, status, req.AvailableSpots); err != nil {
		return nil, s.repositoryError(err, "Erro ao atualizar parking")
	}

	s.invalidate(ctx, parking.OwnerID)

	return s.reload(ctx, id)
}

// DeleteParking remove o parking e suas vagas. As reservas continuam gravadas sem parking.
func (s *Service) DeleteParking(ctx context.Context, principal domain.Principal, id int64) error {
	parking, err := s.ownedParking(ctx, principal, id)
	if err != nil {
		return err
	}

	if err := s.parkingRepo.DeleteParking(ctx, id); err != nil {
		return s.repositoryError(err, "Erro ao remover parking")
	}

	s.invalidate(ctx, parking.OwnerID)

	return nil
}

// AddSpot registra uma vaga AVAILABLE no parking do principal
func (s *Service) AddSpot(ctx context.Context, principal domain.Principal, parkingID int64, req *domain.AddParkingSpotRequest) (*domain.ParkingSpot, error) {
	if req == nil || strings.TrimSpace(req.Label) == "" {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "O rótulo da vaga é obrigatório")
	}
	if req.Row < 0 || req.Column < 0 {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Linha e coluna não podem ser negativas")
	}

	if _, err := s.ownedParking(ctx, principal, parkingID); err != nil {
		return nil, err
	}

	spot, err := s.spotRepo.CreateSpot(ctx, &domain.ParkingSpot{
		ID:          s.newSpotID(),
		ParkingID:   parkingID,
		RowIndex:    req.Row,
		ColumnIndex: req.Column,
		Label:       strings.TrimSpace(req.Label),
		Status:      domain.SpotAvailable,
	})
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar vaga")
	}

	return spot, nil
}

func (s *Service) ListSpots(ctx context.Context, parkingID int64) ([]domain.ParkingSpot, error) {
	if _, err := s.reload(ctx, parkingID); err != nil {
		return nil, err
	}

	records, err := s.spotRepo.ListSpotsByParkingID(ctx, parkingID)
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar vagas")
	}

	spots := make([]domain.ParkingSpot, 0, len(records))
	for _, spot := range records {
		if spot != nil {
			spots = append(spots, *spot)
		}
	}

	return spots, nil
}

// UpdateSpotStatus troca o status da vaga entre AVAILABLE, OCCUPIED e RESERVED
func (s *Service) UpdateSpotStatus(ctx context.Context, principal domain.Principal, parkingID int64, spotID string, req *domain.UpdateParkingSpotRequest) (*domain.ParkingSpot, error) {
	if req == nil {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, "O status da vaga é obrigatório")
	}

	status, ok := domain.ParseSpotStatus(req.Status)
	if !ok {
		return nil, NewParkingError(ErrInvalidRequest, apiErrors.ErrInvalidStatus, "Valores permitidos: AVAILABLE, OCCUPIED, RESERVED")
	}

	if _, err := s.ownedParking(ctx, principal, parkingID); err != nil {
		return nil, err
	}

	spotID = strings.TrimSpace(spotID)
	if err := s.spotRepo.UpdateSpotStatus(ctx, parkingID, spotID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewParkingError(ErrSpotNotFound, apiErrors.ErrSpotNotFound, "")
		}
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar vaga")
	}

	spot, err := s.spotRepo.GetSpot(ctx, parkingID, spotID)
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vaga")
	}
	if spot == nil {
		return nil, NewParkingError(ErrSpotNotFound, apiErrors.ErrSpotNotFound, "")
	}

	return spot, nil
}

// AddReview soma uma avaliação de 1 a 5 ao parking
func (s *Service) AddReview(ctx context.Context, id int64, req *domain.AddReviewRequest) (*domain.Parking, error) {
	if req == nil || req.Rating < minRating || req.Rating > maxRating {
		return nil, NewParkingError(ErrInvalidRating, apiErrors.ErrInvalidRating, "A avaliação deve estar entre 1 e 5")
	}

	parking, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.parkingRepo.AddRating(ctx, id, req.Rating); err != nil {
		return nil, s.repositoryError(err, "Erro ao registrar avaliação")
	}

	s.invalidate(ctx, parking.OwnerID)

	return s.reload(ctx, id)
}

// ownedParking carrega o parking e confere se o principal pode alterá-lo
func (s *Service) ownedParking(ctx context.Context, principal domain.Principal, id int64) (*domain.Parking, error) {
	parking, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.IsAdmin() && parking.OwnerID != principal.UserID {
		return nil, NewParkingError(ErrParkingNotOwned, apiErrors.ErrParkingNotOwned, "")
	}

	return parking, nil
}

func (s *Service) reload(ctx context.Context, id int64) (*domain.Parking, error) {
	rec, err := s.parkingRepo.GetParkingByID(ctx, id)
	if err != nil {
		return nil, NewParkingError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar parking")
	}
	if rec == nil {
		return nil, NewParkingError(ErrParkingNotFound, apiErrors.ErrParkingNotFound, "")
	}

	parking := domain.NormalizeParking(rec)
	return &parking, nil
}

func (s *Service) repositoryError(err error, details string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewParkingError(ErrParkingNotFound, apiErrors.ErrParkingNotFound, "")
	}
	return NewParkingError(err, apiErrors.ErrDatabaseOperation, details)
}

func (s *Service) invalidate(ctx context.Context, ownerID int64) {
	if s.invalidator == nil || ownerID <= 0 {
		return
	}

	if err := s.invalidator.Invalidate(ctx, analyzing.OwnerPrincipal(ownerID)); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{"owner_id": ownerID}).WithError(err).Warn("Falha ao invalidar cache de analytics")
	}
}
