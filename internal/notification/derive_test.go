package notification

import (
	"testing"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func bookingWithStatus(id int64, status string, date time.Time) domain.Booking {
	return domain.Booking{
		ID:          id,
		Status:      domain.ParseStatus(status),
		BookingDate: date,
		Flight: domain.Flight{
			Destination: domain.Location{City: "Tokyo", Code: "TYO"},
		},
	}
}

func TestDerive_PendingPayment(t *testing.T) {
	n, ok := Derive(bookingWithStatus(7, "Pending Payment", time.Now()))

	assert.True(t, ok)
	assert.Equal(t, "booking-payment-7", n.ID)
	assert.Equal(t, domain.NotificationTypePayment, n.Type)
	assert.False(t, n.Read)
	assert.Equal(t, int64(7), n.BookingID)
}

func TestDerive_Confirmed(t *testing.T) {
	n, ok := Derive(bookingWithStatus(3, "Confirmed", time.Now()))

	assert.True(t, ok)
	assert.Equal(t, "booking-confirmed-3", n.ID)
	assert.Equal(t, domain.NotificationTypeBooking, n.Type)
	assert.Contains(t, n.Message, "Tokyo")
}

func TestDerive_DeclinedIncludesReason(t *testing.T) {
	b := bookingWithStatus(5, "Declined", time.Now())
	b.DeclineReason = "proof of payment unreadable"

	n, ok := Derive(b)

	assert.True(t, ok)
	assert.Equal(t, "booking-declined-5", n.ID)
	assert.Contains(t, n.Message, "proof of payment unreadable")
}

func TestDerive_DeclinedWithoutReason(t *testing.T) {
	n, ok := Derive(bookingWithStatus(5, "Declined", time.Now()))

	assert.True(t, ok)
	assert.NotContains(t, n.Message, "Reason:")
}

func TestDerive_MissingDestinationUsesPlaceholder(t *testing.T) {
	b := domain.Booking{ID: 9, Status: domain.ParseStatus("Confirmed"), BookingDate: time.Now()}

	n, ok := Derive(b)

	assert.True(t, ok)
	assert.Contains(t, n.Message, "your destination")
}

func TestDerive_NoCandidateForOtherStatuses(t *testing.T) {
	for _, status := range []string{"Paid", "Completed", "Cancelled", ""} {
		_, ok := Derive(bookingWithStatus(1, status, time.Now()))
		assert.False(t, ok, "status %q", status)
	}
}

func TestDeriveAndMerge_Idempotent(t *testing.T) {
	bookings := []domain.Booking{
		bookingWithStatus(1, "Pending Payment", time.Now()),
		bookingWithStatus(2, "Confirmed", time.Now()),
		bookingWithStatus(3, "Declined", time.Now()),
	}

	once := DeriveAndMerge(nil, bookings)
	twice := DeriveAndMerge(once, bookings)

	assert.Len(t, once, 3)
	assert.Len(t, twice, 3)

	ids := func(ns []domain.Notification) map[string]bool {
		out := map[string]bool{}
		for _, n := range ns {
			out[n.ID] = true
		}
		return out
	}
	assert.Equal(t, ids(once), ids(twice))
}

func TestDeriveAndMerge_OrderedMostRecentFirst(t *testing.T) {
	base := time.Now()
	bookings := []domain.Booking{
		bookingWithStatus(1, "Confirmed", base.Add(-2*time.Hour)),
		bookingWithStatus(2, "Confirmed", base),
		bookingWithStatus(3, "Confirmed", base.Add(-time.Hour)),
	}

	merged := DeriveAndMerge(nil, bookings)

	assert.Equal(t, "booking-confirmed-2", merged[0].ID)
	assert.Equal(t, "booking-confirmed-3", merged[1].ID)
	assert.Equal(t, "booking-confirmed-1", merged[2].ID)
}

func TestDeriveAndMerge_PreservesReadFlag(t *testing.T) {
	bookings := []domain.Booking{bookingWithStatus(1, "Confirmed", time.Now())}

	merged := DeriveAndMerge(nil, bookings)
	merged = MarkAsRead(merged, "booking-confirmed-1")
	merged = DeriveAndMerge(merged, bookings)

	assert.Len(t, merged, 1)
	assert.True(t, merged[0].Read)
}

func TestMarkAsRead_UnknownIDIsNoop(t *testing.T) {
	merged := DeriveAndMerge(nil, []domain.Booking{bookingWithStatus(1, "Confirmed", time.Now())})

	out := MarkAsRead(merged, "does-not-exist")

	assert.Equal(t, 1, UnreadCount(out))
}

func TestMarkAllAsRead(t *testing.T) {
	bookings := []domain.Booking{
		bookingWithStatus(1, "Confirmed", time.Now()),
		bookingWithStatus(2, "Pending Payment", time.Now()),
	}
	merged := DeriveAndMerge(nil, bookings)
	assert.Equal(t, 2, UnreadCount(merged))

	out := MarkAllAsRead(merged)

	assert.Equal(t, 0, UnreadCount(out))
	// The input snapshot is untouched.
	assert.Equal(t, 2, UnreadCount(merged))
}

func TestNew_AdHocNotification(t *testing.T) {
	a := New("Maintenance", "Scheduled downtime tonight.", domain.NotificationTypeSystem)
	b := New("Maintenance", "Scheduled downtime tonight.", domain.NotificationTypeSystem)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Read)
}
