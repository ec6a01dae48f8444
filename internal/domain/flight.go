package domain

import "time"

type Location struct {
	ID      int64
	City    string
	Code    string
	Airport string
}

type Flight struct {
	ID             int64
	Origin         Location
	Destination    Location
	DepartureTime  time.Time
	ArrivalTime    time.Time
	TotalSeats     int
	AvailableSeats int
	PriceCents     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
