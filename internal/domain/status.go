package domain

import "strings"

type StatusCode int

const (
	StatusUnknown StatusCode = iota
	StatusPendingPayment
	StatusConfirmed
	StatusDeclined
	StatusPaid
	StatusCompleted
)

// BookingStatus is parsed once at the storage/API boundary. Raw keeps the
// original string so unknown values survive a round trip unchanged.
type BookingStatus struct {
	Code StatusCode
	Raw  string
}

func ParseStatus(raw string) BookingStatus {
	s := BookingStatus{Raw: raw}
	switch raw {
	case "Pending Payment":
		s.Code = StatusPendingPayment
	case "Confirmed":
		s.Code = StatusConfirmed
	case "Declined":
		s.Code = StatusDeclined
	case "Paid":
		s.Code = StatusPaid
	case "Completed":
		s.Code = StatusCompleted
	}
	return s
}

func (s BookingStatus) String() string {
	return s.Raw
}

// IsPending covers the whole pending family: the known Pending Payment status
// plus any unknown status whose raw value contains "Pending" (case-sensitive),
// e.g. "Pending Review".
func (s BookingStatus) IsPending() bool {
	if s.Code == StatusPendingPayment {
		return true
	}
	return s.Code == StatusUnknown && strings.Contains(s.Raw, "Pending")
}

func (s BookingStatus) IsConfirmed() bool {
	return s.Code == StatusConfirmed
}

type BadgeColor string

const (
	BadgeGreen  BadgeColor = "green"
	BadgeYellow BadgeColor = "yellow"
	BadgeRed    BadgeColor = "red"
	BadgeBlue   BadgeColor = "blue"
	BadgeGray   BadgeColor = "gray"
)

// Badge maps a status to its list-view badge color. Rules are evaluated in
// order, first match wins.
func (s BookingStatus) Badge() BadgeColor {
	switch {
	case s.Code == StatusConfirmed:
		return BadgeGreen
	case s.IsPending():
		return BadgeYellow
	case s.Code == StatusDeclined:
		return BadgeRed
	case s.Code == StatusPaid:
		return BadgeBlue
	default:
		return BadgeGray
	}
}
