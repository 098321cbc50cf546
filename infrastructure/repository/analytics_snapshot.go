package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/spotfinder/parking-analytics-api/infrastructure/database/postgres"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AnalyticsSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error
}

type analyticsSnapshotRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsSnapshotRepository(conn postgres.Queryer) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

func (r *analyticsSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error {
	payload, err := json.Marshal(snapshot.Totals)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot: %w", err)
	}

	totals := snapshot.Totals
	query, args, err := squirrel.
		Insert("analytics_snapshots").
		Columns(
			"id",
			"owner_id",
			"total_revenue",
			"currency",
			"occupied_spaces",
			"total_spaces",
			"active_users",
			"registered_parkings",
			"payload",
			"captured_at",
		).
		Values(
			snapshot.ID,
			snapshot.OwnerID,
			totals.TotalRevenue.Value,
			totals.TotalRevenue.Currency,
			totals.OccupiedSpaces.Occupied,
			totals.OccupiedSpaces.Total,
			totals.ActiveUsers.Total,
			totals.RegisteredParkings.Total,
			string(payload),
			snapshot.CapturedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	return nil
}
