package booking

import (
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
)

type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketUpcoming  Bucket = "upcoming"
	BucketPast      Bucket = "past"
	BucketPending   Bucket = "pending"
	BucketConfirmed Bucket = "confirmed"
)

// ParseBucket falls back to BucketAll for unrecognized filter values.
func ParseBucket(raw string) Bucket {
	switch Bucket(raw) {
	case BucketUpcoming, BucketPast, BucketPending, BucketConfirmed:
		return Bucket(raw)
	default:
		return BucketAll
	}
}

type BucketSet map[Bucket]struct{}

func (s BucketSet) Contains(b Bucket) bool {
	_, ok := s[b]
	return ok
}

// Classify returns the filter buckets a booking belongs to at the given
// instant. Both departure comparisons are strict, so a booking departing
// exactly at now is neither upcoming nor past.
func Classify(b domain.Booking, now time.Time) BucketSet {
	set := BucketSet{}
	if b.Flight.DepartureTime.After(now) && (b.Status.IsConfirmed() || b.Status.IsPending()) {
		set[BucketUpcoming] = struct{}{}
	}
	if b.Flight.DepartureTime.Before(now) {
		set[BucketPast] = struct{}{}
	}
	if b.Status.IsPending() {
		set[BucketPending] = struct{}{}
	}
	if b.Status.IsConfirmed() {
		set[BucketConfirmed] = struct{}{}
	}
	return set
}

// Matches reports whether a booking passes the given bucket filter.
func Matches(b domain.Booking, bucket Bucket, now time.Time) bool {
	if bucket == BucketAll {
		return true
	}
	return Classify(b, now).Contains(bucket)
}
