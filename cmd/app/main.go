package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/config"
	"github.com/Phecobaba/Skybooker-sub001/internal/bootstrap"
	"github.com/Phecobaba/Skybooker-sub001/internal/cache"
	"github.com/Phecobaba/Skybooker-sub001/internal/kafka"
	"github.com/Phecobaba/Skybooker-sub001/internal/notification"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/bookings"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/flights"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/notifications"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/pricing"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Pricing.FlightsCacheTTL)*time.Second,
		time.Duration(cfg.Pricing.RatesCacheTTL)*time.Second,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)

	pricingService := pricing.NewPricingService(settingsRepo, redisCache)
	flightService := flights.NewFlightService(flightRepo, redisCache, pricingService, time.Duration(cfg.Pricing.FlightsCacheTTL)*time.Second)
	bookingService := bookings.NewBookingService(
		bookingRepo,
		flightRepo,
		producer,
		cfg.Kafka.BookingEventsTopic,
		bookings.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	notificationService := notifications.NewNotificationService(notification.NewStore(), bookingRepo)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, notificationService, pricingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
