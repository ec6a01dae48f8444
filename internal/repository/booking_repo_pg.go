package repository

import (
	"context"
	"errors"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, declineReason string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `b.id, b.flight_id, b.customer_email, b.status, b.travel_class, b.booking_date, b.decline_reason, b.created_at, b.updated_at,
	f.id,
	o.id, o.city, o.code, o.airport,
	d.id, d.city, d.code, d.airport,
	f.departure_time, f.arrival_time, f.total_seats, f.available_seats, f.price_cents, f.created_at, f.updated_at`

const bookingJoins = `FROM bookings b
	JOIN flights f ON f.id = b.flight_id
	JOIN locations o ON o.id = f.origin_id
	JOIN locations d ON d.id = f.destination_id`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.TravelClass == "" {
		booking.TravelClass = domain.TravelClassEconomy
	}
	return r.db.QueryRow(ctx, `INSERT INTO bookings (flight_id, customer_email, status, travel_class, booking_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		booking.FlightID, booking.CustomerEmail, booking.Status.String(), string(booking.TravelClass), booking.BookingDate).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` `+bookingJoins+` WHERE b.id=$1`, id)
	var b domain.Booking
	if err := scanBooking(row.Scan, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByCustomer(ctx context.Context, email string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` `+bookingJoins+` WHERE b.customer_email=$1 ORDER BY b.booking_date DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` `+bookingJoins+` ORDER BY b.booking_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, declineReason string) (*domain.Booking, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE bookings SET status=$1, decline_reason=NULLIF($2, ''), updated_at=now() WHERE id=$3`, status.String(), declineReason, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, errors.New("booking not found")
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Next() bool
	Scan(...any) error
	Err() error
}

func collectBookings(rows rowScanner) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows.Scan, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBooking(scan func(...any) error, b *domain.Booking) error {
	var status, travelClass string
	var declineReason *string
	err := scan(
		&b.ID, &b.FlightID, &b.CustomerEmail, &status, &travelClass, &b.BookingDate, &declineReason, &b.CreatedAt, &b.UpdatedAt,
		&b.Flight.ID,
		&b.Flight.Origin.ID, &b.Flight.Origin.City, &b.Flight.Origin.Code, &b.Flight.Origin.Airport,
		&b.Flight.Destination.ID, &b.Flight.Destination.City, &b.Flight.Destination.Code, &b.Flight.Destination.Airport,
		&b.Flight.DepartureTime, &b.Flight.ArrivalTime, &b.Flight.TotalSeats, &b.Flight.AvailableSeats, &b.Flight.PriceCents, &b.Flight.CreatedAt, &b.Flight.UpdatedAt,
	)
	if err != nil {
		return err
	}
	b.Status = domain.ParseStatus(status)
	b.TravelClass = domain.ParseTravelClass(travelClass)
	if declineReason != nil {
		b.DeclineReason = *declineReason
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
