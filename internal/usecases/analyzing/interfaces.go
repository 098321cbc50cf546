package analyzing

import (
	"context"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
)

// ParkingProvider lista parkings já filtrados pelo escopo
type ParkingProvider interface {
	ListParkings(ctx context.Context, scope domain.ParkingScope) ([]*domain.ParkingRecord, error)
}

// ReservationProvider lista todas as reservas sem filtro
type ReservationProvider interface {
	ListAllReservations(ctx context.Context) ([]*domain.ReservationRecord, error)
}

// OwnerResolver converte o principal autenticado no id do proprietário
type OwnerResolver interface {
	ResolveOwnerID(ctx context.Context, principal domain.Principal) (int64, error)
}

// Analyzer expõe as visões de analytics. Nenhuma operação retorna erro:
// falhas viram o resultado vazio canônico de cada visão.
type Analyzer interface {
	// GetTotals calcula os quatro KPIs da janela de um mês
	GetTotals(ctx context.Context, principal domain.Principal, parkingID *int64) domain.TotalsKpi

	// GetRevenueByMonth agrupa a receita por mês de criação da reserva
	GetRevenueByMonth(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.RevenueByMonth

	// GetOccupancyByHour retorna sempre 24 linhas para o dia atual
	GetOccupancyByHour(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.OccupancyByHour

	// GetActivity mescla os parkings e reservas mais recentes
	GetActivity(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.ActivityItem

	// GetTopParkings ranqueia os parkings do proprietário pela receita de 30 dias
	GetTopParkings(ctx context.Context, principal domain.Principal) []domain.TopParking

	// GetSummary monta o resumo do painel; profileID não numérico resulta em lista vazia
	GetSummary(ctx context.Context, principal domain.Principal, profileID string) []domain.AnalyticsSummary
}

// Invalidator descarta as visões memorizadas de um principal após escritas
type Invalidator interface {
	Invalidate(ctx context.Context, principal domain.Principal) error
}

// OwnerPrincipal é o principal cujo cache deve ser descartado quando um parking do dono muda
func OwnerPrincipal(ownerID int64) domain.Principal {
	return domain.Principal{UserID: ownerID, RoleID: domain.RoleOwner}
}
