package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/api"
	"github.com/Phecobaba/Skybooker-sub001/config"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/bookings"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/flights"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/notifications"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/pricing"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	flightSvc flights.FlightUseCase,
	bookingSvc bookings.BookingUseCase,
	notificationSvc notifications.NotificationUseCase,
	pricingSvc pricing.PricingUseCase,
) error {
	router := gin.Default()

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
	api.NewNotificationHandler(notificationSvc).Register(router.Group("/notifications"))
	api.NewSettingsHandler(pricingSvc).Register(router.Group("/settings"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
