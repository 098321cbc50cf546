// Package repository contém as implementações dos repositórios para acesso aos dados
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
	parkingsTable = "parkings p"
)

var parkingColumns = []string{
	"p.id",
	"p.owner_id",
	"p.name",
	"p.address",
	"p.status",
	"p.total_spots",
	"p.available_spots",
	"p.rate_per_hour",
	"p.rating_sum",
	"p.rating_count",
	"p.created_at",
	"p.updated_at",
}

type ParkingRepository interface {
	ListParkings(ctx context.Context, scope domain.ParkingScope) ([]*domain.ParkingRecord, error)
	GetParkingByID(ctx context.Context, id int64) (*domain.ParkingRecord, error)
	CreateParking(ctx context.Context, parking *domain.ParkingRecord) (*domain.ParkingRecord, error)
	UpdateParking(ctx context.Context, id int64, status *string, availableSpots *int) error
	AddRating(ctx context.Context, id int64, rating float64) error
	DeleteParking(ctx context.Context, id int64) error
	ListOwnerIDs(ctx context.Context) ([]int64, error)
}

type parkingRepository struct {
	conn postgres.Queryer
}

func NewParkingRepository(conn postgres.Queryer) ParkingRepository {
	return &parkingRepository{
		conn: conn,
	}
}

func (r *parkingRepository) ListParkings(ctx context.Context, scope domain.ParkingScope) ([]*domain.ParkingRecord, error) {
	queryBuilder := squirrel.
		Select(parkingColumns...).
		From(parkingsTable).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !scope.All && scope.OwnerID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.owner_id": *scope.OwnerID})
	}
	if scope.ParkingID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.id": *scope.ParkingID})
	}
	if !scope.All && scope.OwnerID == nil && scope.ParkingID == nil {
		// escopo vazio não enxerga nada
		return []*domain.ParkingRecord{}, nil
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	parkings := make([]*domain.ParkingRecord, 0)
	for rows.Next() {
		parking, err := scanParking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear parking: %w", err)
		}
		parkings = append(parkings, parking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return parkings, nil
}

func (r *parkingRepository) GetParkingByID(ctx context.Context, id int64) (*domain.ParkingRecord, error) {
	query, args, err := squirrel.
		Select(parkingColumns...).
		From(parkingsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	parking, err := scanParking(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear parking: %w", err)
	}

	return parking, nil
}

func (r *parkingRepository) CreateParking(ctx context.Context, parking *domain.ParkingRecord) (*domain.ParkingRecord, error) {
	query, args, err := squirrel.
		Insert("parkings").
		Columns("owner_id", "name", "address", "status", "total_spots", "available_spots", "rate_per_hour", "rating_sum", "rating_count").
		Values(parking.OwnerID, parking.Name, parking.Address, parking.Status, parking.TotalSpots, parking.AvailableSpots, parking.RatePerHour, 0, 0).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&parking.ID, &parking.CreatedAt, &parking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir parking: %w", err)
	}

	zero := 0.0
	parking.RatingSum = &zero
	parking.RatingCount = &zero

	return parking, nil
}

func (r *parkingRepository) UpdateParking(ctx context.Context, id int64, status *string, availableSpots *int) error {
	queryBuilder := squirrel.
		Update("parkings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status != nil {
		queryBuilder = queryBuilder.Set("status", *status)
	}

	if availableSpots != nil {
		queryBuilder = queryBuilder.Set("available_spots", *availableSpots)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func (r *parkingRepository) AddRating(ctx context.Context, id int64, rating float64) error {
	query, args, err := squirrel.
		Update("parkings").
		Set("rating_sum", squirrel.Expr("COALESCE(rating_sum, 0) + ?", rating)).
		Set("rating_count", squirrel.Expr("COALESCE(rating_count, 0) + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de avaliação: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

// DeleteParking remove o parking e suas vagas; reservas ficam sem parking_id
func (r *parkingRepository) DeleteParking(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete("parkings").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func (r *parkingRepository) ListOwnerIDs(ctx context.Context) ([]int64, error) {
	query, args, err := squirrel.
		Select("DISTINCT p.owner_id").
		From(parkingsTable).
		Where(squirrel.NotEq{"p.owner_id": nil}).
		OrderBy("p.owner_id ASC").
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

	ownerIDs := make([]int64, 0)
	for rows.Next() {
		var ownerID int64
		if err := rows.Scan(&ownerID); err != nil {
			return nil, fmt.Errorf("erro ao escanear owner_id: %w", err)
		}
		ownerIDs = append(ownerIDs, ownerID)
	}

	return ownerIDs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParking(row rowScanner) (*domain.ParkingRecord, error) {
	parking := &domain.ParkingRecord{}

	err := row.Scan(
		&parking.ID,
		&parking.OwnerID,
		&parking.Name,
		&parking.Address,
		&parking.Status,
		&parking.TotalSpots,
		&parking.AvailableSpots,
		&parking.RatePerHour,
		&parking.RatingSum,
		&parking.RatingCount,
		&parking.CreatedAt,
		&parking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return parking, nil
}

func execAffectingOne(ctx context.Context, conn postgres.Queryer, query string, args ...interface{}) error {
	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
