package analyzing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

// ScopeResolver devolve os parkings que o principal pode ver
type ScopeResolver struct {
	parkings ParkingProvider
	owners   OwnerResolver
}

func NewScopeResolver(parkings ParkingProvider, owners OwnerResolver) *ScopeResolver {
	return &ScopeResolver{
		parkings: parkings,
		owners:   owners,
	}
}

// Resolve aplica o escopo opcional de parking. Administradores enxergam todos os parkings.
// Qualquer falha resulta em lista vazia.
func (r *ScopeResolver) Resolve(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.Parking {
	scope, err := r.scopeFor(ctx, principal, parkingID, false)
	if err != nil {
		r.logFailure(ctx, err, "analytics: escopo não resolvido")
		return []domain.Parking{}
	}

	return r.list(ctx, scope, parkingID)
}

// ResolveOwned ignora o papel de administrador e sempre filtra pelo proprietário
func (r *ScopeResolver) ResolveOwned(ctx context.Context, principal domain.Principal) []domain.Parking {
	scope, err := r.scopeFor(ctx, principal, nil, true)
	if err != nil {
		r.logFailure(ctx, err, "analytics: proprietário não resolvido")
		return []domain.Parking{}
	}

	return r.list(ctx, scope, nil)
}

func (r *ScopeResolver) scopeFor(ctx context.Context, principal domain.Principal, parkingID *int64, ownedOnly bool) (domain.ParkingScope, error) {
	if principal.IsAdmin() && !ownedOnly {
		if parkingID != nil {
			return domain.ScopeParking(nil, *parkingID), nil
		}
		return domain.ScopeAll(), nil
	}

	if r.owners == nil {
		return domain.ParkingScope{}, ErrUnknownOwner
	}

	ownerID, err := r.owners.ResolveOwnerID(ctx, principal)
	if err != nil {
		return domain.ParkingScope{}, errors.Wrap(err, "erro ao resolver proprietário")
	}
	if ownerID <= 0 {
		return domain.ParkingScope{}, ErrUnknownOwner
	}

	if parkingID != nil {
		return domain.ScopeParking(&ownerID, *parkingID), nil
	}
	return domain.ScopeOwner(ownerID), nil
}

func (r *ScopeResolver) list(ctx context.Context, scope domain.ParkingScope, parkingID *int64) []domain.Parking {
	if r.parkings == nil {
		return []domain.Parking{}
	}

	records, err := r.parkings.ListParkings(ctx, scope)
	if err != nil {
		r.logFailure(ctx, err, "analytics: falha ao listar parkings, usando lista vazia")
		return []domain.Parking{}
	}

	parkings := domain.NormalizeParkings(records)
	if parkingID == nil {
		return parkings
	}

	// no máximo o parking pedido
	for _, p := range parkings {
		if p.ID == *parkingID {
			return []domain.Parking{p}
		}
	}
	return []domain.Parking{}
}

func (r *ScopeResolver) logFailure(ctx context.Context, err error, msg string) {
	logger := log.ForContext(ctx).WithError(err)
	if errors.Is(err, ErrUnknownOwner) {
		logger.Debug(msg)
		return
	}
	markDegraded(ctx)
	logger.Warn(msg)
}
