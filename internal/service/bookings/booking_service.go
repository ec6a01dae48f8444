package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	corebooking "github.com/Phecobaba/Skybooker-sub001/internal/booking"
	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/kafka"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListForCustomer(ctx context.Context, email string, query corebooking.Query) (corebooking.Result, error)
	ApproveBooking(ctx context.Context, id int64) (*domain.Booking, error)
	DeclineBooking(ctx context.Context, id int64, reason string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	now                func() time.Time
}

type CreateBookingInput struct {
	FlightID      int64  `json:"flight_id"`
	CustomerEmail string `json:"customer_email"`
	TravelClass   string `json:"travel_class"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the time source used for booking dates and bucket
// classification.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		flights:     flights,
		producer:    producer,
		eventsTopic: eventsTopic,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.FlightID <= 0 {
		return nil, errors.New("flight id is required")
	}
	if input.CustomerEmail == "" {
		return nil, errors.New("customer email is required")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if !flight.DepartureTime.After(s.now()) {
		return nil, errors.New("flight has already departed")
	}

	booking := &domain.Booking{
		FlightID:      flight.ID,
		Flight:        *flight,
		CustomerEmail: input.CustomerEmail,
		Status:        domain.ParseStatus("Pending Payment"),
		TravelClass:   domain.ParseTravelClass(input.TravelClass),
		BookingDate:   s.now(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_created event for booking %d: %v\n", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListForCustomer(ctx context.Context, email string, query corebooking.Query) (corebooking.Result, error) {
	if email == "" {
		return corebooking.Result{}, errors.New("customer email is required")
	}
	list, err := s.bookings.ListByCustomer(ctx, email)
	if err != nil {
		return corebooking.Result{}, err
	}
	return corebooking.Find(list, query, s.now()), nil
}

// ApproveBooking confirms a booking whose payment proof passed admin review.
func (s *BookingService) ApproveBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.IsPending() && current.Status.Code != domain.StatusPaid {
		return nil, errors.New("booking is not awaiting review")
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.ParseStatus("Confirmed"), "")
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_confirmed", updated); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_confirmed event for booking %d: %v\n", updated.ID, err)
	}
	return updated, nil
}

func (s *BookingService) DeclineBooking(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status.Code == domain.StatusDeclined {
		return current, nil
	}
	if !current.Status.IsPending() && current.Status.Code != domain.StatusPaid {
		return nil, errors.New("booking is not awaiting review")
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, domain.ParseStatus("Declined"), reason)
	if err != nil {
		return nil, err
	}
	if err := s.publish(ctx, "booking_declined", updated); err != nil {
		fmt.Printf("WARNING: Failed to publish booking_declined event for booking %d: %v\n", updated.ID, err)
	}
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		CustomerEmail:   booking.CustomerEmail,
		Status:          booking.Status.String(),
		DeclineReason:   booking.DeclineReason,
		DestinationCity: booking.Flight.Destination.City,
		DepartureTime:   booking.Flight.DepartureTime,
		OccurredAt:      s.now(),
	}
	key := fmt.Sprintf("%d", booking.ID)
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
