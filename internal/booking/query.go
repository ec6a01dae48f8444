package booking

import (
	"strings"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
)

type Query struct {
	Bucket   Bucket
	Search   string
	Page     int
	PageSize int
}

type Result struct {
	Bookings   []domain.Booking
	TotalCount int
	TotalPages int
}

// Find filters bookings by bucket and free-text search, then slices out the
// requested page. The input is never mutated and its order is preserved.
// A page past the last one yields an empty slice, not an error.
func Find(bookings []domain.Booking, q Query, now time.Time) Result {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !Matches(b, q.Bucket, now) {
			continue
		}
		if needle != "" && !matchesSearch(b, needle) {
			continue
		}
		matched = append(matched, b)
	}

	totalPages := (len(matched) + q.PageSize - 1) / q.PageSize
	start := (q.Page - 1) * q.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return Result{
		Bookings:   matched[start:end],
		TotalCount: len(matched),
		TotalPages: totalPages,
	}
}

func matchesSearch(b domain.Booking, needle string) bool {
	fields := []string{
		b.Flight.Origin.City + " " + b.Flight.Origin.Code,
		b.Flight.Destination.City + " " + b.Flight.Destination.Code,
		b.Status.String(),
		b.Reference(),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
