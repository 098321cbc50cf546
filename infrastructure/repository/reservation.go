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
	reservationsTable = "reservations r"
)

// horários saem como texto para não virarem time.Time no driver
var reservationColumns = []string{
	"r.id",
	"r.parking_id",
	"r.parking_spot_id",
	"r.spot_label",
	"r.driver_id",
	"r.driver_name",
	"r.vehicle_plate",
	"r.date",
	"r.start_time::text",
	"r.end_time::text",
	"r.total_price",
	"r.status",
	"r.created_at",
	"r.updated_at",
}

type ReservationRepository interface {
	ListAllReservations(ctx context.Context) ([]*domain.ReservationRecord, error)
	ListReservationsByParkingID(ctx context.Context, parkingID int64) ([]*domain.ReservationRecord, error)
	GetReservationByID(ctx context.Context, id int64) (*domain.ReservationRecord, error)
	CreateReservation(ctx context.Context, reservation *domain.ReservationRecord) (*domain.ReservationRecord, error)
	UpdateReservationStatus(ctx context.Context, id int64, status string) error
}

type reservationRepository struct {
	conn postgres.Queryer
}

func NewReservationRepository(conn postgres.Queryer) ReservationRepository {
	return &reservationRepository{
		conn: conn,
	}
}

func (r *reservationRepository) ListAllReservations(ctx context.Context) ([]*domain.ReservationRecord, error) {
	return r.list(ctx, nil)
}

func (r *reservationRepository) ListReservationsByParkingID(ctx context.Context, parkingID int64) ([]*domain.ReservationRecord, error) {
	return r.list(ctx, squirrel.Eq{"r.parking_id": parkingID})
}

func (r *reservationRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.ReservationRecord, error) {
	queryBuilder := squirrel.
		Select(reservationColumns...).
		From(reservationsTable).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
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

	reservations := make([]*domain.ReservationRecord, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear reserva: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id int64) (*domain.ReservationRecord, error) {
	query, args, err := squirrel.
		Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	reservation, err := scanReservation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear reserva: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *domain.ReservationRecord) (*domain.ReservationRecord, error) {
	var date interface{}
	if reservation.Date != nil {
		date = reservation.Date.Format("2006-01-02")
	}

	query, args, err := squirrel.
		Insert("reservations").
		Columns(
			"parking_id",
			"parking_spot_id",
			"spot_label",
			"driver_id",
			"driver_name",
			"vehicle_plate",
			"date",
			"start_time",
			"end_time",
			"total_price",
			"status",
		).
		Values(
			reservation.ParkingID,
			reservation.ParkingSpotID,
			reservation.SpotLabel,
			reservation.DriverID,
			reservation.DriverName,
			reservation.VehiclePlate,
			date,
			reservation.StartTime,
			reservation.EndTime,
			reservation.TotalPrice,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir reserva: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) UpdateReservationStatus(ctx context.Context, id int64, status string) error {
	query, args, err := squirrel.
		Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func scanReservation(row rowScanner) (*domain.ReservationRecord, error) {
	reservation := &domain.ReservationRecord{}

	err := row.Scan(
		&reservation.ID,
		&reservation.ParkingID,
		&reservation.ParkingSpotID,
		&reservation.SpotLabel,
		&reservation.DriverID,
		&reservation.DriverName,
		&reservation.VehiclePlate,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return reservation, nil
}
