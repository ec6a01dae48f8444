package domain

import "time"

type NotificationType string

const (
	NotificationTypeBooking NotificationType = "booking"
	NotificationTypePayment NotificationType = "payment"
	NotificationTypeSystem  NotificationType = "system"
)

type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	Timestamp time.Time
	BookingID int64
}
