package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/spotfinder/parking-analytics-api/infrastructure/database/postgres"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
)

const (
	parkingSpotsTable = "parking_spots s"
)

var parkingSpotColumns = []string{
	"s.id",
	"s.parking_id",
	"s.row_index",
	"s.column_index",
	"s.label",
	"s.status",
	"s.created_at",
}

type ParkingSpotRepository interface {
	CreateSpot(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	ListSpotsByParkingID(ctx context.Context, parkingID int64) ([]*domain.ParkingSpot, error)
	GetSpot(ctx context.Context, parkingID int64, spotID string) (*domain.ParkingSpot, error)
	UpdateSpotStatus(ctx context.Context, parkingID int64, spotID string, status domain.ParkingSpotStatus) error
}

type parkingSpotRepository struct {
	conn postgres.Queryer
}

func NewParkingSpotRepository(conn postgres.Queryer) ParkingSpotRepository {
	return &parkingSpotRepository{
		conn: conn,
	}
}

func (r *parkingSpotRepository) CreateSpot(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	query, args, err := squirrel.
		Insert("parking_spots").
		Columns("id", "parking_id", "row_index", "column_index", "label", "status").
		Values(spot.ID, spot.ParkingID, spot.RowIndex, spot.ColumnIndex, spot.Label, string(spot.Status)).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&spot.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir vaga: %w", err)
	}

	return spot, nil
}

func (r *parkingSpotRepository) ListSpotsByParkingID(ctx context.Context, parkingID int64) ([]*domain.ParkingSpot, error) {
	query, args, err := squirrel.
		Select(parkingSpotColumns...).
		From(parkingSpotsTable).
		Where(squirrel.Eq{"s.parking_id": parkingID}).
		OrderBy("s.row_index ASC", "s.column_index ASC", "s.label ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	spots := make([]*domain.ParkingSpot, 0)
	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vaga: %w", err)
		}
		spots = append(spots, spot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spots, nil
}

// GetSpot devolve nil quando a vaga não existe naquele parking
func (r *parkingSpotRepository) GetSpot(ctx context.Context, parkingID int64, spotID string) (*domain.ParkingSpot, error) {
	query, args, err := squirrel.
		Select(parkingSpotColumns...).
		From(parkingSpotsTable).
		Where(squirrel.Eq{"s.id": spotID, "s.parking_id": parkingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	spot, err := scanParkingSpot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vaga: %w", err)
	}

	return spot, nil
}

func (r *parkingSpotRepository) UpdateSpotStatus(ctx context.Context, parkingID int64, spotID string, status domain.ParkingSpotStatus) error {
	query, args, err := squirrel.
		Update("parking_spots").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": spotID, "parking_id": parkingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func scanParkingSpot(row rowScanner) (*domain.ParkingSpot, error) {
	spot := &domain.ParkingSpot{}
	var status string

	err := row.Scan(
		&spot.ID,
		&spot.ParkingID,
		&spot.RowIndex,
		&spot.ColumnIndex,
		&spot.Label,
		&status,
		&spot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	spot.Status = domain.ParkingSpotStatus(status)
	return spot, nil
}
