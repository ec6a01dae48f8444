package notifications

import (
	"context"
	"errors"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/notification"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
)

type NotificationUseCase interface {
	List(ctx context.Context, email string) ([]domain.Notification, int, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	UnreadCount(ctx context.Context) int
}

// NotificationService refreshes the session store from the booking source on
// every list, then serves the merged snapshot. Refreshing is idempotent, so
// polling UIs can call List as often as they like.
type NotificationService struct {
	store    *notification.Store
	bookings repository.BookingRepository
}

func NewNotificationService(store *notification.Store, bookings repository.BookingRepository) *NotificationService {
	return &NotificationService{store: store, bookings: bookings}
}

func (s *NotificationService) List(ctx context.Context, email string) ([]domain.Notification, int, error) {
	if email == "" {
		return nil, 0, errors.New("customer email is required")
	}
	list, err := s.bookings.ListByCustomer(ctx, email)
	if err != nil {
		return nil, 0, err
	}
	s.store.Refresh(list)
	return s.store.Snapshot(), s.store.UnreadCount(), nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("notification id is required")
	}
	s.store.MarkAsRead(id)
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	s.store.MarkAllAsRead()
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) int {
	return s.store.UnreadCount()
}

var _ NotificationUseCase = (*NotificationService)(nil)
