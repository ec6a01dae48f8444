package notification

import (
	"fmt"
	"sort"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/google/uuid"
)

// Derive builds the notification a booking's current status calls for, if
// any. Ids are deterministic per booking and category so re-derivation is
// idempotent.
func Derive(b domain.Booking) (domain.Notification, bool) {
	switch b.Status.Code {
	case domain.StatusPendingPayment:
		return domain.Notification{
			ID:        fmt.Sprintf("booking-payment-%d", b.ID),
			Title:     "Payment Required",
			Message:   fmt.Sprintf("Your booking %s to %s is awaiting payment.", b.Reference(), destinationName(b)),
			Type:      domain.NotificationTypePayment,
			Timestamp: b.BookingDate,
			BookingID: b.ID,
		}, true
	case domain.StatusConfirmed:
		return domain.Notification{
			ID:        fmt.Sprintf("booking-confirmed-%d", b.ID),
			Title:     "Booking Confirmed",
			Message:   fmt.Sprintf("Your booking %s to %s has been confirmed.", b.Reference(), destinationName(b)),
			Type:      domain.NotificationTypeBooking,
			Timestamp: b.BookingDate,
			BookingID: b.ID,
		}, true
	case domain.StatusDeclined:
		msg := fmt.Sprintf("Your booking %s to %s was declined.", b.Reference(), destinationName(b))
		if b.DeclineReason != "" {
			msg = fmt.Sprintf("%s Reason: %s", msg, b.DeclineReason)
		}
		return domain.Notification{
			ID:        fmt.Sprintf("booking-declined-%d", b.ID),
			Title:     "Booking Declined",
			Message:   msg,
			Type:      domain.NotificationTypeBooking,
			Timestamp: b.BookingDate,
			BookingID: b.ID,
		}, true
	}
	return domain.Notification{}, false
}

func destinationName(b domain.Booking) string {
	if b.Flight.Destination.City == "" {
		return "your destination"
	}
	return b.Flight.Destination.City
}

// DeriveAndMerge appends notifications for bookings not yet represented in
// existing, then re-sorts the whole set most recent first. Existing entries
// keep their read flags; candidates whose id is already present are dropped.
func DeriveAndMerge(existing []domain.Notification, bookings []domain.Booking) []domain.Notification {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]domain.Notification, len(existing))
	copy(merged, existing)
	for _, n := range existing {
		seen[n.ID] = struct{}{}
	}

	for _, b := range bookings {
		n, ok := Derive(b)
		if !ok {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		merged = append(merged, n)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged
}

// New creates an ad hoc notification with a random id, e.g. for system
// announcements not tied to a booking.
func New(title, message string, typ domain.NotificationType) domain.Notification {
	return domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now(),
	}
}

// MarkAsRead returns a copy with the matching notification marked read.
// Unknown ids are a no-op.
func MarkAsRead(notifications []domain.Notification, id string) []domain.Notification {
	out := make([]domain.Notification, len(notifications))
	copy(out, notifications)
	for i := range out {
		if out[i].ID == id {
			out[i].Read = true
		}
	}
	return out
}

// MarkAllAsRead returns a copy with every notification marked read.
func MarkAllAsRead(notifications []domain.Notification) []domain.Notification {
	out := make([]domain.Notification, len(notifications))
	copy(out, notifications)
	for i := range out {
		out[i].Read = true
	}
	return out
}

func UnreadCount(notifications []domain.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}
