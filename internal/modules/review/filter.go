package review

import (
	"sort"
	"time"

	"barberbook/internal/domain"
)

// DateBucket is a trailing window measured back from now over the review's
// creation timestamp.
type DateBucket string

const (
	BucketLastWeek    DateBucket = "last-week"
	BucketLastMonth   DateBucket = "last-month"
	BucketLast3Months DateBucket = "last-3-months"
	BucketLastYear    DateBucket = "last-year"
)

var dateBucketPredicates = map[DateBucket]func(created, now time.Time) bool{
	BucketLastWeek:    func(created, now time.Time) bool { return created.After(now.Add(-7 * 24 * time.Hour)) },
	BucketLastMonth:   func(created, now time.Time) bool { return created.After(now.AddDate(0, -1, 0)) },
	BucketLast3Months: func(created, now time.Time) bool { return created.After(now.AddDate(0, -3, 0)) },
	BucketLastYear:    func(created, now time.Time) bool { return created.After(now.AddDate(-1, 0, 0)) },
}

// HasPhotos is a tri-state filter dimension.
type HasPhotos string

const (
	PhotosAny     HasPhotos = ""
	PhotosWith    HasPhotos = "yes"
	PhotosWithout HasPhotos = "no"
)

// FilterCriteria dimensions are AND-combined; the rating and bucket sets are
// OR-combined internally. Zero values mean "no constraint".
type FilterCriteria struct {
	Ratings   []int
	HasPhotos HasPhotos
	Buckets   []DateBucket
}

// Filter returns the reviews matching the criteria, in original order,
// without mutating the input.
func Filter(records []domain.Review, criteria FilterCriteria, now time.Time) []domain.Review {
	out := make([]domain.Review, 0, len(records))
	for _, r := range records {
		if len(criteria.Ratings) > 0 && !containsInt(criteria.Ratings, r.Rating) {
			continue
		}
		if criteria.HasPhotos == PhotosWith && len(r.Photos) == 0 {
			continue
		}
		if criteria.HasPhotos == PhotosWithout && len(r.Photos) > 0 {
			continue
		}
		if len(criteria.Buckets) > 0 && !matchesAnyBucket(&r, criteria.Buckets, now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesAnyBucket(r *domain.Review, buckets []DateBucket, now time.Time) bool {
	for _, bucket := range buckets {
		if pred, known := dateBucketPredicates[bucket]; known && pred(r.CreatedAt, now) {
			return true
		}
	}
	return false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortRatingDesc SortKey = "rating-desc"
	SortRatingAsc  SortKey = "rating-asc"
	SortLikesDesc  SortKey = "likes-desc"
)

var reviewComparators = map[SortKey]func(a, b *domain.Review) bool{
	SortDateDesc:   func(a, b *domain.Review) bool { return a.CreatedAt.After(b.CreatedAt) },
	SortDateAsc:    func(a, b *domain.Review) bool { return a.CreatedAt.Before(b.CreatedAt) },
	SortRatingDesc: func(a, b *domain.Review) bool { return a.Rating > b.Rating },
	SortRatingAsc:  func(a, b *domain.Review) bool { return a.Rating < b.Rating },
	SortLikesDesc:  func(a, b *domain.Review) bool { return a.LikesCount > b.LikesCount },
}

// Sort returns a new slice ordered by key; ties keep original relative
// order. An unknown key falls back to date-desc.
func Sort(records []domain.Review, key SortKey) []domain.Review {
	less, ok := reviewComparators[key]
	if !ok {
		less = reviewComparators[SortDateDesc]
	}

	out := make([]domain.Review, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}
