package booking

import (
	"testing"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func bookingWith(status string, departure time.Time) domain.Booking {
	return domain.Booking{
		ID:     1,
		Status: domain.ParseStatus(status),
		Flight: domain.Flight{DepartureTime: departure},
	}
}

func TestClassify_ConfirmedFutureFlight(t *testing.T) {
	now := time.Now()
	set := Classify(bookingWith("Confirmed", now.Add(24*time.Hour)), now)

	assert.True(t, set.Contains(BucketUpcoming))
	assert.True(t, set.Contains(BucketConfirmed))
	assert.False(t, set.Contains(BucketPast))
	assert.False(t, set.Contains(BucketPending))
}

func TestClassify_PendingPaymentFutureFlight(t *testing.T) {
	now := time.Now()
	set := Classify(bookingWith("Pending Payment", now.Add(time.Hour)), now)

	assert.True(t, set.Contains(BucketUpcoming))
	assert.True(t, set.Contains(BucketPending))
	assert.False(t, set.Contains(BucketConfirmed))
}

func TestClassify_PastIsIndependentOfStatus(t *testing.T) {
	now := time.Now()
	for _, status := range []string{"Confirmed", "Declined", "Pending Payment", "Completed", "Whatever"} {
		set := Classify(bookingWith(status, now.Add(-time.Hour)), now)
		assert.True(t, set.Contains(BucketPast), "status %q", status)
		assert.False(t, set.Contains(BucketUpcoming), "status %q", status)
	}
}

func TestClassify_DepartureExactlyNowIsNeitherUpcomingNorPast(t *testing.T) {
	now := time.Now()
	set := Classify(bookingWith("Confirmed", now), now)

	assert.False(t, set.Contains(BucketUpcoming))
	assert.False(t, set.Contains(BucketPast))
	assert.True(t, set.Contains(BucketConfirmed))
}

func TestClassify_DeclinedFutureFlightIsNotUpcoming(t *testing.T) {
	now := time.Now()
	set := Classify(bookingWith("Declined", now.Add(time.Hour)), now)

	assert.Empty(t, set)
}

func TestClassify_UnknownPendingVariant(t *testing.T) {
	now := time.Now()
	set := Classify(bookingWith("Pending Review", now.Add(time.Hour)), now)

	assert.True(t, set.Contains(BucketPending))
	assert.True(t, set.Contains(BucketUpcoming))
}

func TestParseBucket(t *testing.T) {
	assert.Equal(t, BucketUpcoming, ParseBucket("upcoming"))
	assert.Equal(t, BucketAll, ParseBucket(""))
	assert.Equal(t, BucketAll, ParseBucket("nonsense"))
}
