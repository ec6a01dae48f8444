package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleBooking(id int64, status string, departure time.Time) domain.Booking {
	return domain.Booking{
		ID:     id,
		Status: domain.ParseStatus(status),
		Flight: domain.Flight{
			Origin:        domain.Location{City: "Paris", Code: "PAR"},
			Destination:   domain.Location{City: "Tokyo", Code: "TYO"},
			DepartureTime: departure,
		},
	}
}

func TestFind_SearchByOriginCity(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{sampleBooking(7, "Confirmed", now.Add(time.Hour))}

	result := Find(list, Query{Bucket: BucketAll, Search: "par", Page: 1, PageSize: 5}, now)

	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, int64(7), result.Bookings[0].ID)
}

func TestFind_SearchByReference(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{sampleBooking(7, "Confirmed", now.Add(time.Hour))}

	result := Find(list, Query{Bucket: BucketAll, Search: "#bk-7", Page: 1, PageSize: 5}, now)

	assert.Equal(t, 1, result.TotalCount)
}

func TestFind_SearchNoMatch(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{sampleBooking(7, "Confirmed", now.Add(time.Hour))}

	result := Find(list, Query{Bucket: BucketAll, Search: "london", Page: 1, PageSize: 5}, now)

	assert.Equal(t, 0, result.TotalCount)
	assert.Empty(t, result.Bookings)
}

func TestFind_FilterAndSearchBothApply(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{
		sampleBooking(1, "Confirmed", now.Add(time.Hour)),
		sampleBooking(2, "Declined", now.Add(time.Hour)),
	}

	// Both match the search, only one matches the bucket.
	result := Find(list, Query{Bucket: BucketConfirmed, Search: "paris", Page: 1, PageSize: 10}, now)

	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, int64(1), result.Bookings[0].ID)
}

func TestFind_EmptySearchMatchesEverything(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{
		sampleBooking(1, "Confirmed", now.Add(time.Hour)),
		sampleBooking(2, "Paid", now.Add(time.Hour)),
	}

	result := Find(list, Query{Bucket: BucketAll, Page: 1, PageSize: 10}, now)

	assert.Equal(t, 2, result.TotalCount)
}

func TestFind_PaginationReproducesFullSet(t *testing.T) {
	now := time.Now()
	list := make([]domain.Booking, 0, 23)
	for i := int64(1); i <= 23; i++ {
		list = append(list, sampleBooking(i, "Confirmed", now.Add(time.Hour)))
	}

	const pageSize = 5
	first := Find(list, Query{Bucket: BucketAll, Page: 1, PageSize: pageSize}, now)
	assert.Equal(t, 5, first.TotalPages)
	assert.Equal(t, 23, first.TotalCount)

	var collected []int64
	for page := 1; page <= first.TotalPages; page++ {
		result := Find(list, Query{Bucket: BucketAll, Page: page, PageSize: pageSize}, now)
		for _, b := range result.Bookings {
			collected = append(collected, b.ID)
		}
	}

	assert.Len(t, collected, 23)
	for i, id := range collected {
		assert.Equal(t, int64(i+1), id, fmt.Sprintf("position %d", i))
	}
}

func TestFind_PageBeyondLastIsEmpty(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{sampleBooking(1, "Confirmed", now.Add(time.Hour))}

	result := Find(list, Query{Bucket: BucketAll, Page: 3, PageSize: 10}, now)

	assert.Empty(t, result.Bookings)
	assert.Equal(t, 1, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
}

func TestFind_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	list := []domain.Booking{
		sampleBooking(1, "Confirmed", now.Add(time.Hour)),
		sampleBooking(2, "Declined", now.Add(-time.Hour)),
	}

	_ = Find(list, Query{Bucket: BucketPast, Search: "tokyo", Page: 1, PageSize: 1}, now)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
}
