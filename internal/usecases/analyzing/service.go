package analyzing

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/metrics"
	"github.com/spotfinder/parking-analytics-api/pkg/clock"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

const (
	viewTotals      = "totals"
	viewRevenue     = "revenue"
	viewOccupancy   = "occupancy"
	viewActivity    = "activity"
	viewTopParkings = "top_parkings"
	viewSummary     = "summary"
)

// Service calcula as visões de analytics a partir dos provedores
type Service struct {
	reservations ReservationProvider
	scope        *ScopeResolver
	clock        clock.Clock
	location     *time.Location
	texts        texts
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLocation define o fuso usado para datas civis e rótulos de mês
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithLocale define o idioma dos textos dos KPIs (ex.: "es", "en")
func WithLocale(locale string) Option {
	return func(s *Service) {
		s.texts = newTexts(locale)
	}
}

func NewService(
	parkings ParkingProvider,
	reservations ReservationProvider,
	owners OwnerResolver,
	opts ...Option,
) Analyzer {
	return newService(parkings, reservations, owners, opts...)
}

func newService(
	parkings ParkingProvider,
	reservations ReservationProvider,
	owners OwnerResolver,
	opts ...Option,
) *Service {
	s := &Service{
		reservations: reservations,
		scope:        NewScopeResolver(parkings, owners),
		clock:        clock.NewRealClock(),
		location:     time.UTC,
		texts:        newTexts(defaultLocale),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.location)
}

// dataset é o conjunto escopado de uma chamada
type dataset struct {
	parkings     []domain.Parking
	reservations []domain.Reservation
}

func (d dataset) parkingIDs() map[int64]struct{} {
	ids := make(map[int64]struct{}, len(d.parkings))
	for _, p := range d.parkings {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// load busca parkings e reservas em paralelo e filtra as reservas pelo escopo.
// Falhas dos provedores viram coleções vazias; panics viram erro.
func (s *Service) load(ctx context.Context, principal domain.Principal, parkingID *int64, ownedOnly bool) (dataset, error) {
	var (
		data     dataset
		records  []*domain.ReservationRecord
		resErr   error
		panicErr error
		mu       sync.Mutex
	)

	capturePanic := func(source string) {
		if r := recover(); r != nil {
			mu.Lock()
			panicErr = errors.Errorf("panic ao listar %s: %v", source, r)
			mu.Unlock()
		}
	}

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer capturePanic("parkings")
		if ownedOnly {
			data.parkings = s.scope.ResolveOwned(ctx, principal)
			return
		}
		data.parkings = s.scope.Resolve(ctx, principal, parkingID)
	}()

	go func() {
		defer wg.Done()
		defer capturePanic("reservas")
		records, resErr = s.reservations.ListAllReservations(ctx)
	}()

	wg.Wait()

	if panicErr != nil {
		return dataset{}, panicErr
	}

	if err := ctx.Err(); err != nil {
		return dataset{}, errors.Wrap(err, "contexto encerrado durante a leitura")
	}

	if resErr != nil {
		markDegraded(ctx)
		log.ForContext(ctx).WithError(resErr).Warn("analytics: falha ao listar reservas, usando lista vazia")
		records = nil
	}

	ids := data.parkingIDs()
	data.reservations = make([]domain.Reservation, 0, len(records))
	for _, r := range domain.NormalizeReservations(records, s.location) {
		if _, ok := ids[r.ParkingID]; ok {
			data.reservations = append(data.reservations, r)
		}
	}

	return data, nil
}

// failSoft executa o cálculo e converte erro ou panic no valor vazio da visão
func failSoft[T any](ctx context.Context, view string, empty func() T, compute func() (T, error)) (result T) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			reportFailure(ctx, &AggregationError{View: view, Err: errors.Errorf("panic: %v", r)})
			result = empty()
		}
		metrics.AggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}()

	out, err := compute()
	if err != nil {
		reportFailure(ctx, &AggregationError{View: view, Err: err})
		return empty()
	}

	return out
}

func reportFailure(ctx context.Context, err *AggregationError) {
	markDegraded(ctx)
	metrics.FailSoftTotal.WithLabelValues(err.View).Inc()
	log.ForContext(ctx).WithFields(log.Fields{
		"view":  err.View,
		"error": err.Error(),
	}).Error("analytics: cálculo convertido em resultado vazio")
}
