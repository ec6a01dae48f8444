package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/config"
	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/email"
	"github.com/Phecobaba/Skybooker-sub001/internal/kafka"
	"github.com/Phecobaba/Skybooker-sub001/internal/notification"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	store := notification.NewStore()
	emailSender := email.NewSender()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.BookingEvent) error {
			booking := bookingFromEvent(event)
			n, ok := notification.Derive(booking)
			if !ok {
				return nil
			}

			before := len(store.Snapshot())
			store.Refresh([]domain.Booking{booking})
			if len(store.Snapshot()) == before {
				// Already derived for this booking and status, nothing to send.
				return nil
			}
			return emailSender.Send(ctx, event.CustomerEmail, n)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	resweepTicker := time.NewTicker(time.Duration(cfg.Worker.ResweepMinutes) * time.Minute)
	defer resweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-resweepTicker.C:
			bookings, err := bookingRepo.ListAll(ctx)
			if err != nil {
				log.Printf("resweep bookings error: %v", err)
				continue
			}
			store.Refresh(bookings)
			log.Printf("resweep complete, %d unread notifications", store.UnreadCount())
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}

// bookingFromEvent rebuilds the minimal booking view the deriver needs out of
// a consumed event.
func bookingFromEvent(event kafka.BookingEvent) domain.Booking {
	return domain.Booking{
		ID:            event.BookingID,
		CustomerEmail: event.CustomerEmail,
		Status:        domain.ParseStatus(event.Status),
		DeclineReason: event.DeclineReason,
		BookingDate:   event.OccurredAt,
		Flight: domain.Flight{
			Destination:   domain.Location{City: event.DestinationCity},
			DepartureTime: event.DepartureTime,
		},
	}
}
