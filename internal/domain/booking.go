package domain

import (
	"fmt"
	"time"
)

type TravelClass string

const (
	TravelClassEconomy  TravelClass = "Economy"
	TravelClassBusiness TravelClass = "Business"
	TravelClassFirst    TravelClass = "First Class"
)

// ParseTravelClass falls back to Economy for empty or unrecognized values.
func ParseTravelClass(raw string) TravelClass {
	switch TravelClass(raw) {
	case TravelClassBusiness:
		return TravelClassBusiness
	case TravelClassFirst:
		return TravelClassFirst
	default:
		return TravelClassEconomy
	}
}

type Booking struct {
	ID            int64
	FlightID      int64
	Flight        Flight
	CustomerEmail string
	Status        BookingStatus
	TravelClass   TravelClass
	BookingDate   time.Time
	DeclineReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reference is the customer-facing booking number shown in lists and emails.
func (b Booking) Reference() string {
	return fmt.Sprintf("#BK-%d", b.ID)
}
