package repository

import (
	"context"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id,
	o.id, o.city, o.code, o.airport,
	d.id, d.city, d.code, d.airport,
	f.departure_time, f.arrival_time, f.total_seats, f.available_seats, f.price_cents, f.created_at, f.updated_at`

const flightJoins = `FROM flights f
	JOIN locations o ON o.id = f.origin_id
	JOIN locations d ON d.id = f.destination_id`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` `+flightJoins+` ORDER BY f.departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows.Scan, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` `+flightJoins+` WHERE f.id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row.Scan, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func scanFlight(scan func(...any) error, f *domain.Flight) error {
	return scan(
		&f.ID,
		&f.Origin.ID, &f.Origin.City, &f.Origin.Code, &f.Origin.Airport,
		&f.Destination.ID, &f.Destination.City, &f.Destination.Code, &f.Destination.Airport,
		&f.DepartureTime, &f.ArrivalTime, &f.TotalSeats, &f.AvailableSeats, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt,
	)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
