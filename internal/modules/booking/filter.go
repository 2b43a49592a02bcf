package booking

import (
	"sort"
	"time"

	"barberbook/internal/domain"
)

// DateBucket is a named relative time window used as a filter predicate.
type DateBucket string

const (
	BucketUpcoming  DateBucket = "upcoming"
	BucketPast      DateBucket = "past"
	BucketToday     DateBucket = "today"
	BucketThisWeek  DateBucket = "this-week"
	BucketThisMonth DateBucket = "this-month"
)

// dateBucketPredicates keeps the bucket set closed: an unknown bucket simply
// matches nothing instead of silently passing everything.
var dateBucketPredicates = map[DateBucket]func(appt, now time.Time) bool{
	BucketUpcoming: func(appt, now time.Time) bool { return appt.After(now) },
	BucketPast:     func(appt, now time.Time) bool { return appt.Before(now) },
	BucketToday: func(appt, now time.Time) bool {
		y1, m1, d1 := appt.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	},
	BucketThisWeek: func(appt, now time.Time) bool {
		return !appt.Before(now.Add(-7 * 24 * time.Hour))
	},
	BucketThisMonth: func(appt, now time.Time) bool {
		return !appt.Before(now.AddDate(0, -1, 0))
	},
}

// FilterCriteria are AND-combined across dimensions. A zero value on a
// dimension means "no constraint", never "exclude all". Buckets are
// OR-combined within their dimension.
type FilterCriteria struct {
	Status   domain.BookingStatus
	BarberID int64
	Buckets  []DateBucket
}

// Filter returns the bookings matching the criteria, in original order.
// The input slice is never mutated.
func Filter(records []domain.Booking, criteria FilterCriteria, now time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(records))
	for _, b := range records {
		if criteria.Status != "" && b.Status != criteria.Status {
			continue
		}
		if criteria.BarberID != 0 && b.BarberID != criteria.BarberID {
			continue
		}
		if len(criteria.Buckets) > 0 && !matchesAnyBucket(&b, criteria.Buckets, now) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesAnyBucket(b *domain.Booking, buckets []DateBucket, now time.Time) bool {
	appt, ok := AppointmentAt(b)
	if !ok {
		// Malformed date fails every relative window.
		return false
	}
	for _, bucket := range buckets {
		if pred, known := dateBucketPredicates[bucket]; known && pred(appt, now) {
			return true
		}
	}
	return false
}

// SortKey selects a comparator for Sort.
type SortKey string

const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortPriceDesc SortKey = "price-desc"
	SortPriceAsc  SortKey = "price-asc"
)

var bookingComparators = map[SortKey]func(a, b *domain.Booking) bool{
	SortDateDesc:  func(a, b *domain.Booking) bool { return apptOrZero(a).After(apptOrZero(b)) },
	SortDateAsc:   func(a, b *domain.Booking) bool { return apptOrZero(a).Before(apptOrZero(b)) },
	SortPriceDesc: func(a, b *domain.Booking) bool { return a.Price > b.Price },
	SortPriceAsc:  func(a, b *domain.Booking) bool { return a.Price < b.Price },
}

// Sort returns a new slice ordered by key, ties kept in original relative
// order. An unknown key falls back to date-desc.
func Sort(records []domain.Booking, key SortKey) []domain.Booking {
	less, ok := bookingComparators[key]
	if !ok {
		less = bookingComparators[SortDateDesc]
	}

	out := make([]domain.Booking, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

func apptOrZero(b *domain.Booking) time.Time {
	appt, _ := AppointmentAt(b)
	return appt
}
